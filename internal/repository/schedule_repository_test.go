package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/rahat-dev/ramadan-times-api/pkg/errors"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScheduleRepositoryEmbeddedDataset(t *testing.T) {
	repo, err := NewScheduleRepository(ScheduleRepositoryOptions{}, nil, nil)
	require.NoError(t, err)

	divisions := repo.Divisions()
	require.Len(t, divisions, 8)
	assert.Equal(t, "Dhaka", divisions[0].Name)

	names, ok := repo.DistrictNames("Dhaka")
	require.True(t, ok)
	assert.Contains(t, names, "Gazipur")

	div, ok := repo.Division("Sylhet")
	require.True(t, ok)
	assert.NotEmpty(t, div.Districts)
	require.NotEmpty(t, div.Districts[0].Times)
	assert.Equal(t, 1, div.Districts[0].Times[0].RamadanDay)

	_, ok = repo.Division("Atlantis")
	assert.False(t, ok)
	_, ok = repo.DistrictNames("Atlantis")
	assert.False(t, ok)
}

func TestScheduleRepositoryEmbeddedDatasetStrict(t *testing.T) {
	_, err := NewScheduleRepository(ScheduleRepositoryOptions{Strict: true}, nil, nil)
	require.NoError(t, err)
}

func TestScheduleRepositoryPathOverride(t *testing.T) {
	path := writeDataset(t, `{"divisions":[{"name":"Dhaka","districts":[{"name":"Dhaka","times":[
		{"date":"2026-02-18","ramadanDay":1,"sehriEnd":"05:14","iftar":"18:01"}
	]}]}]}`)

	repo, err := NewScheduleRepository(ScheduleRepositoryOptions{Path: path}, nil, nil)
	require.NoError(t, err)
	require.Len(t, repo.Divisions(), 1)
	assert.Equal(t, "Dhaka", repo.Divisions()[0].Name)
}

func TestScheduleRepositoryMissingFile(t *testing.T) {
	_, err := NewScheduleRepository(ScheduleRepositoryOptions{Path: filepath.Join(t.TempDir(), "absent.json")}, nil, nil)
	require.Error(t, err)
}

func TestScheduleRepositoryInvalidJSON(t *testing.T) {
	path := writeDataset(t, `{"divisions": [`)
	_, err := NewScheduleRepository(ScheduleRepositoryOptions{Path: path}, nil, nil)
	require.Error(t, err)
}

func TestScheduleRepositoryEmptyDataset(t *testing.T) {
	path := writeDataset(t, `{"divisions":[]}`)
	_, err := NewScheduleRepository(ScheduleRepositoryOptions{Path: path}, nil, nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrEmptyDataset.Code, appErrors.FromError(err).Code)
}

func TestScheduleRepositoryStructuralValidation(t *testing.T) {
	// ramadanDay 0 violates min=1 regardless of strict mode.
	path := writeDataset(t, `{"divisions":[{"name":"Dhaka","districts":[{"name":"Dhaka","times":[
		{"date":"2026-02-18","ramadanDay":0,"sehriEnd":"05:14","iftar":"18:01"}
	]}]}]}`)
	_, err := NewScheduleRepository(ScheduleRepositoryOptions{Path: path}, nil, nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestScheduleRepositoryStrictRejectsDateGap(t *testing.T) {
	content := `{"divisions":[{"name":"Dhaka","districts":[{"name":"Dhaka","times":[
		{"date":"2026-02-18","ramadanDay":1,"sehriEnd":"05:14","iftar":"18:01"},
		{"date":"2026-02-21","ramadanDay":2,"sehriEnd":"05:13","iftar":"18:02"}
	]}]}]}`
	path := writeDataset(t, content)

	_, err := NewScheduleRepository(ScheduleRepositoryOptions{Path: path, Strict: true}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date gap")

	// Lenient mode tolerates the same data.
	_, err = NewScheduleRepository(ScheduleRepositoryOptions{Path: path}, nil, nil)
	require.NoError(t, err)
}

func TestScheduleRepositoryStrictRejectsNonContiguousDays(t *testing.T) {
	path := writeDataset(t, `{"divisions":[{"name":"Dhaka","districts":[{"name":"Dhaka","times":[
		{"date":"2026-02-18","ramadanDay":1,"sehriEnd":"05:14","iftar":"18:01"},
		{"date":"2026-02-19","ramadanDay":3,"sehriEnd":"05:13","iftar":"18:02"}
	]}]}]}`)
	_, err := NewScheduleRepository(ScheduleRepositoryOptions{Path: path, Strict: true}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not contiguous")
}

func TestScheduleRepositoryStrictRejectsSehriAfterIftar(t *testing.T) {
	path := writeDataset(t, `{"divisions":[{"name":"Dhaka","districts":[{"name":"Dhaka","times":[
		{"date":"2026-02-18","ramadanDay":1,"sehriEnd":"19:00","iftar":"18:01"}
	]}]}]}`)
	_, err := NewScheduleRepository(ScheduleRepositoryOptions{Path: path, Strict: true}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not before iftar")
}
