package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahat-dev/ramadan-times-api/internal/dto"
	"github.com/rahat-dev/ramadan-times-api/internal/models"
	appErrors "github.com/rahat-dev/ramadan-times-api/pkg/errors"
	"github.com/rahat-dev/ramadan-times-api/pkg/response"
)

type contactService interface {
	Create(ctx context.Context, req dto.CreateLeadRequest) (*models.Lead, error)
}

type websiteTypeSource interface {
	WebsiteTypes() []string
}

// ContactHandler exposes the lead-intake endpoints.
type ContactHandler struct {
	service contactService
	types   websiteTypeSource
}

// NewContactHandler constructs the handler.
func NewContactHandler(service contactService, types websiteTypeSource) *ContactHandler {
	return &ContactHandler{service: service, types: types}
}

// Create godoc
// @Summary Submit a contact-form lead
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body dto.CreateLeadRequest true "Lead payload"
// @Success 201 {object} response.Envelope
// @Router /contact [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid JSON payload"))
		return
	}

	lead, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lead)
}

// WebsiteTypes godoc
// @Summary Website type options for the contact form
// @Tags Contact
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /contact/types [get]
func (h *ContactHandler) WebsiteTypes(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.types.WebsiteTypes())
}
