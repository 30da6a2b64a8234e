package service

import (
	"sort"

	"go.uber.org/zap"

	"github.com/rahat-dev/ramadan-times-api/internal/dto"
	"github.com/rahat-dev/ramadan-times-api/internal/models"
	appErrors "github.com/rahat-dev/ramadan-times-api/pkg/errors"
)

type scheduleSource interface {
	Divisions() []models.Division
	DistrictNames(division string) ([]string, bool)
}

// ResolverService maps a (division, district) selection to the concrete
// day records for that district, with deterministic fallback to the first
// available entry when the selection is empty or stale.
type ResolverService struct {
	repo   scheduleSource
	logger *zap.Logger
}

// NewResolverService constructs the service.
func NewResolverService(repo scheduleSource, logger *zap.Logger) *ResolverService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResolverService{repo: repo, logger: logger}
}

// Resolution is the outcome of a selection lookup. Division and District
// are the effective names after fallback; a district carried over from a
// previous division is never retained.
type Resolution struct {
	Division string
	District string
	Records  []models.DayRecord
}

// Resolve applies the fallback rules: an unknown or empty division name
// selects the first division, an unknown or empty district name selects
// the first district of the resolved division. The returned records are a
// sorted copy (ascending ramadan day); the caller may not rely on the
// dataset being pre-sorted. An empty record list means "no data", not an
// error.
func (s *ResolverService) Resolve(divisionName, districtName string) (Resolution, error) {
	divisions := s.repo.Divisions()
	if len(divisions) == 0 {
		return Resolution{}, appErrors.ErrEmptyDataset
	}

	division := divisions[0]
	matched := false
	for i := range divisions {
		if divisions[i].Name == divisionName {
			division = divisions[i]
			matched = true
			break
		}
	}
	if !matched && divisionName != "" {
		s.logger.Debug("unknown division, falling back to first",
			zap.String("requested", divisionName),
			zap.String("effective", division.Name),
		)
	}

	res := Resolution{Division: division.Name}
	if len(division.Districts) == 0 {
		return res, nil
	}

	district := division.Districts[0]
	for i := range division.Districts {
		if division.Districts[i].Name == districtName {
			district = division.Districts[i]
			break
		}
	}

	res.District = district.Name
	res.Records = make([]models.DayRecord, len(district.Times))
	copy(res.Records, district.Times)
	sort.Slice(res.Records, func(i, j int) bool {
		return res.Records[i].RamadanDay < res.Records[j].RamadanDay
	})
	return res, nil
}

// Divisions lists every division with its district names, in dataset order.
func (s *ResolverService) Divisions() []dto.DivisionInfo {
	divisions := s.repo.Divisions()
	infos := make([]dto.DivisionInfo, 0, len(divisions))
	for _, div := range divisions {
		names := make([]string, 0, len(div.Districts))
		for _, z := range div.Districts {
			names = append(names, z.Name)
		}
		infos = append(infos, dto.DivisionInfo{Name: div.Name, Districts: names})
	}
	return infos
}

// Districts lists the district names of one named division. Unlike
// Resolve, this is a strict lookup: an unknown division is a not-found
// error so selector UIs can distinguish typos from fallback.
func (s *ResolverService) Districts(divisionName string) ([]string, error) {
	names, ok := s.repo.DistrictNames(divisionName)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "division not found")
	}
	return names, nil
}
