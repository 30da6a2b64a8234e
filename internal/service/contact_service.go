package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rahat-dev/ramadan-times-api/internal/dto"
	"github.com/rahat-dev/ramadan-times-api/internal/models"
	appErrors "github.com/rahat-dev/ramadan-times-api/pkg/errors"
)

type leadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
}

// ContactService validates and stores contact-form submissions.
type ContactService struct {
	repo      leadRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContactService constructs the service.
func NewContactService(repo leadRepository, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{repo: repo, validator: validate, logger: logger}
}

// Create validates the payload and persists a new lead.
func (s *ContactService) Create(ctx context.Context, req dto.CreateLeadRequest) (*models.Lead, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	lead := &models.Lead{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		lead.Phone = &phone
	}
	if websiteType := strings.TrimSpace(req.WebsiteType); websiteType != "" {
		lead.WebsiteType = &websiteType
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store lead")
	}

	s.logger.Info("lead created", zap.String("lead_id", lead.ID))
	return lead, nil
}
