package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rahat-dev/ramadan-times-api/internal/models"
	appErrors "github.com/rahat-dev/ramadan-times-api/pkg/errors"
)

//go:embed ramadan_2026_bd.json
var embeddedDataset []byte

// ScheduleRepository holds the Ramadan schedule dataset. The dataset is
// parsed and validated once at construction and never mutated afterwards,
// so all accessors are safe for concurrent readers.
type ScheduleRepository struct {
	dataset models.ScheduleDataset
	logger  *zap.Logger
}

// ScheduleRepositoryOptions controls dataset loading.
type ScheduleRepositoryOptions struct {
	// Path overrides the embedded dataset when non-empty.
	Path string
	// Strict enables full integrity validation beyond structural checks.
	Strict bool
}

// NewScheduleRepository loads the dataset and fails hard on structural
// problems. An empty dataset is a build-time data fault, not a runtime
// condition to recover from.
func NewScheduleRepository(opts ScheduleRepositoryOptions, validate *validator.Validate, logger *zap.Logger) (*ScheduleRepository, error) {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	raw := embeddedDataset
	if opts.Path != "" {
		fileRaw, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", opts.Path, err)
		}
		raw = fileRaw
	}

	var dataset models.ScheduleDataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return nil, fmt.Errorf("parse schedule dataset: %w", err)
	}

	if len(dataset.Divisions) == 0 {
		return nil, appErrors.ErrEmptyDataset
	}

	if err := validate.Struct(dataset); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "schedule dataset failed structural validation")
	}

	if opts.Strict {
		if err := checkIntegrity(dataset); err != nil {
			return nil, err
		}
	}

	repo := &ScheduleRepository{dataset: dataset, logger: logger}
	logger.Info("schedule dataset loaded",
		zap.Int("divisions", len(dataset.Divisions)),
		zap.Bool("strict", opts.Strict),
	)
	return repo, nil
}

// Divisions returns every division in dataset order.
func (r *ScheduleRepository) Divisions() []models.Division {
	return r.dataset.Divisions
}

// Division returns the division with the given name.
func (r *ScheduleRepository) Division(name string) (*models.Division, bool) {
	for i := range r.dataset.Divisions {
		if r.dataset.Divisions[i].Name == name {
			return &r.dataset.Divisions[i], true
		}
	}
	return nil, false
}

// DistrictNames lists district names for the named division. The second
// return reports whether the division exists.
func (r *ScheduleRepository) DistrictNames(division string) ([]string, bool) {
	div, ok := r.Division(division)
	if !ok {
		return nil, false
	}
	names := make([]string, 0, len(div.Districts))
	for _, z := range div.Districts {
		names = append(names, z.Name)
	}
	return names, true
}

// checkIntegrity enforces the stronger invariants the source data is
// expected to satisfy: one record per calendar day with no gaps, ramadan
// days 1..n in step, and sehri strictly before iftar.
func checkIntegrity(dataset models.ScheduleDataset) error {
	for _, div := range dataset.Divisions {
		for _, zone := range div.Districts {
			records := make([]models.DayRecord, len(zone.Times))
			copy(records, zone.Times)
			sort.Slice(records, func(i, j int) bool {
				return records[i].RamadanDay < records[j].RamadanDay
			})

			var prevDate time.Time
			for i, rec := range records {
				if rec.RamadanDay != i+1 {
					return integrityError(div.Name, zone.Name, fmt.Sprintf("ramadan days not contiguous at index %d (got day %d)", i, rec.RamadanDay))
				}

				date, err := time.Parse("2006-01-02", rec.Date)
				if err != nil {
					return integrityError(div.Name, zone.Name, fmt.Sprintf("invalid date %q", rec.Date))
				}
				if i > 0 && !date.Equal(prevDate.AddDate(0, 0, 1)) {
					return integrityError(div.Name, zone.Name, fmt.Sprintf("date gap before %s", rec.Date))
				}
				prevDate = date

				sehri, err := time.Parse("15:04", rec.SehriEnd)
				if err != nil {
					return integrityError(div.Name, zone.Name, fmt.Sprintf("invalid sehri time %q", rec.SehriEnd))
				}
				iftar, err := time.Parse("15:04", rec.Iftar)
				if err != nil {
					return integrityError(div.Name, zone.Name, fmt.Sprintf("invalid iftar time %q", rec.Iftar))
				}
				if !sehri.Before(iftar) {
					return integrityError(div.Name, zone.Name, fmt.Sprintf("sehri %s is not before iftar %s on %s", rec.SehriEnd, rec.Iftar, rec.Date))
				}
			}
		}
	}
	return nil
}

func integrityError(division, district, detail string) error {
	return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("dataset integrity: %s/%s: %s", division, district, detail))
}
