package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahat-dev/ramadan-times-api/internal/models"
	appErrors "github.com/rahat-dev/ramadan-times-api/pkg/errors"
)

type scheduleStub struct {
	divisions []models.Division
}

func (s scheduleStub) Divisions() []models.Division {
	return s.divisions
}

func (s scheduleStub) DistrictNames(division string) ([]string, bool) {
	for _, div := range s.divisions {
		if div.Name == division {
			names := make([]string, 0, len(div.Districts))
			for _, z := range div.Districts {
				names = append(names, z.Name)
			}
			return names, true
		}
	}
	return nil, false
}

func twoDivisionFixture() []models.Division {
	return []models.Division{
		{
			Name: "Dhaka",
			Districts: []models.District{
				{Name: "Dhaka", Times: []models.DayRecord{
					{Date: "2026-02-19", RamadanDay: 2, SehriEnd: "04:49", Iftar: "18:11"},
					{Date: "2026-02-18", RamadanDay: 1, SehriEnd: "04:50", Iftar: "18:10"},
				}},
				{Name: "Gazipur", Times: []models.DayRecord{
					{Date: "2026-02-18", RamadanDay: 1, SehriEnd: "04:49", Iftar: "18:09"},
				}},
			},
		},
		{
			Name: "Sylhet",
			Districts: []models.District{
				{Name: "Sylhet", Times: []models.DayRecord{
					{Date: "2026-02-18", RamadanDay: 1, SehriEnd: "04:44", Iftar: "18:04"},
				}},
			},
		},
	}
}

func TestResolveEmptySelectionFallsBackToFirst(t *testing.T) {
	svc := NewResolverService(scheduleStub{divisions: twoDivisionFixture()}, nil)

	res, err := svc.Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, "Dhaka", res.Division)
	assert.Equal(t, "Dhaka", res.District)
	require.Len(t, res.Records, 2)
}

func TestResolveUnknownNamesFallBack(t *testing.T) {
	svc := NewResolverService(scheduleStub{divisions: twoDivisionFixture()}, nil)

	res, err := svc.Resolve("Atlantis", "Nowhere")
	require.NoError(t, err)
	assert.Equal(t, "Dhaka", res.Division)
	assert.Equal(t, "Dhaka", res.District)
}

func TestResolveStaleDistrictResetsToFirst(t *testing.T) {
	svc := NewResolverService(scheduleStub{divisions: twoDivisionFixture()}, nil)

	// Gazipur belongs to Dhaka; switching division to Sylhet must not
	// carry it over.
	res, err := svc.Resolve("Sylhet", "Gazipur")
	require.NoError(t, err)
	assert.Equal(t, "Sylhet", res.Division)
	assert.Equal(t, "Sylhet", res.District)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "04:44", res.Records[0].SehriEnd)
}

func TestResolveSortsCopyOfRecords(t *testing.T) {
	divisions := twoDivisionFixture()
	svc := NewResolverService(scheduleStub{divisions: divisions}, nil)

	res, err := svc.Resolve("Dhaka", "Dhaka")
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, 1, res.Records[0].RamadanDay)
	assert.Equal(t, 2, res.Records[1].RamadanDay)

	// Source slice keeps its original order.
	assert.Equal(t, 2, divisions[0].Districts[0].Times[0].RamadanDay)
}

func TestResolveEmptyDataset(t *testing.T) {
	svc := NewResolverService(scheduleStub{}, nil)
	_, err := svc.Resolve("", "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrEmptyDataset.Code, appErrors.FromError(err).Code)
}

func TestResolveDivisionWithoutDistricts(t *testing.T) {
	svc := NewResolverService(scheduleStub{divisions: []models.Division{{Name: "Empty"}}}, nil)

	res, err := svc.Resolve("Empty", "")
	require.NoError(t, err)
	assert.Equal(t, "Empty", res.Division)
	assert.Empty(t, res.District)
	assert.Empty(t, res.Records)
}

func TestResolverDivisions(t *testing.T) {
	svc := NewResolverService(scheduleStub{divisions: twoDivisionFixture()}, nil)

	infos := svc.Divisions()
	require.Len(t, infos, 2)
	assert.Equal(t, "Dhaka", infos[0].Name)
	assert.Equal(t, []string{"Dhaka", "Gazipur"}, infos[0].Districts)
	assert.Equal(t, []string{"Sylhet"}, infos[1].Districts)
}

func TestResolverDistrictsStrictLookup(t *testing.T) {
	svc := NewResolverService(scheduleStub{divisions: twoDivisionFixture()}, nil)

	names, err := svc.Districts("Dhaka")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dhaka", "Gazipur"}, names)

	_, err = svc.Districts("Atlantis")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
