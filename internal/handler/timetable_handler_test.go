package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahat-dev/ramadan-times-api/internal/dto"
	"github.com/rahat-dev/ramadan-times-api/internal/models"
	"github.com/rahat-dev/ramadan-times-api/internal/service"
	appErrors "github.com/rahat-dev/ramadan-times-api/pkg/errors"
	"github.com/rahat-dev/ramadan-times-api/pkg/response"
)

type timetableServiceMock struct {
	lastSel  models.Selection
	lastDate time.Time
	view     *dto.TimetableResponse
	today    *dto.TodayResponse
	share    *dto.ShareResponse
	cacheHit bool
	err      error
}

func (m *timetableServiceMock) Timetable(ctx context.Context, sel models.Selection, date time.Time) (*dto.TimetableResponse, bool, error) {
	m.lastSel, m.lastDate = sel, date
	if m.err != nil {
		return nil, false, m.err
	}
	return m.view, m.cacheHit, nil
}

func (m *timetableServiceMock) Today(ctx context.Context, sel models.Selection, date time.Time) (*dto.TodayResponse, error) {
	m.lastSel, m.lastDate = sel, date
	if m.err != nil {
		return nil, m.err
	}
	return m.today, nil
}

func (m *timetableServiceMock) Share(ctx context.Context, sel models.Selection, date time.Time) (*dto.ShareResponse, error) {
	m.lastSel, m.lastDate = sel, date
	if m.err != nil {
		return nil, m.err
	}
	return m.share, nil
}

type exporterMock struct {
	result *service.ExportResult
	err    error
}

func (m *exporterMock) Calendar(ctx context.Context, sel models.Selection, date time.Time, format string) (*service.ExportResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func newTestContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Request = req
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestTimetableHandlerTimetable(t *testing.T) {
	mock := &timetableServiceMock{view: &dto.TimetableResponse{Division: "Dhaka", District: "Gazipur", Date: "2026-02-18"}}
	handler := NewTimetableHandler(mock, nil)

	c, w := newTestContext(t, "/timetable?division=Dhaka&district=Gazipur&date=2026-02-18")
	handler.Timetable(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.Selection{Division: "Dhaka", District: "Gazipur"}, mock.lastSel)
	assert.Equal(t, "2026-02-18", mock.lastDate.Format("2006-01-02"))

	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Meta)
	assert.Contains(t, envelope.Meta, "processing_time_ms")
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestTimetableHandlerTimetableInvalidDate(t *testing.T) {
	mock := &timetableServiceMock{}
	handler := NewTimetableHandler(mock, nil)

	c, w := newTestContext(t, "/timetable?date=18-02-2026")
	handler.Timetable(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, envelope.Error.Code)
}

func TestTimetableHandlerTimetableServiceError(t *testing.T) {
	mock := &timetableServiceMock{err: appErrors.ErrEmptyDataset}
	handler := NewTimetableHandler(mock, nil)

	c, w := newTestContext(t, "/timetable")
	handler.Timetable(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrEmptyDataset.Code, envelope.Error.Code)
}

func TestTimetableHandlerToday(t *testing.T) {
	mock := &timetableServiceMock{today: &dto.TodayResponse{
		Division:  "Dhaka",
		District:  "Dhaka",
		Date:      "2026-02-18",
		ShareText: "🕌 রমজান ১",
	}}
	handler := NewTimetableHandler(mock, nil)

	c, w := newTestContext(t, "/timetable/today")
	handler.Today(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mock.lastDate.IsZero(), "empty date query passes through as zero time")

	var payload struct {
		Data dto.TodayResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "🕌 রমজান ১", payload.Data.ShareText)
}

func TestTimetableHandlerShare(t *testing.T) {
	mock := &timetableServiceMock{share: &dto.ShareResponse{Division: "Sylhet", District: "Sylhet", Text: "রমজান মোবারক"}}
	handler := NewTimetableHandler(mock, nil)

	c, w := newTestContext(t, "/timetable/share?division=Sylhet")
	handler.Share(c)

	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Data dto.ShareResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "রমজান মোবারক", payload.Data.Text)
}

func TestTimetableHandlerExport(t *testing.T) {
	handler := NewTimetableHandler(&timetableServiceMock{}, &exporterMock{result: &service.ExportResult{
		Content:     []byte("Day,Date\n1,2026-02-18\n"),
		ContentType: "text/csv",
		Filename:    "ramadan-calendar-dhaka-dhaka.csv",
	}})

	c, w := newTestContext(t, "/timetable/export?format=csv")
	handler.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ramadan-calendar-dhaka-dhaka.csv"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "2026-02-18")
}

func TestTimetableHandlerExportDisabled(t *testing.T) {
	handler := NewTimetableHandler(&timetableServiceMock{}, nil)

	c, w := newTestContext(t, "/timetable/export")
	handler.Export(c)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrUnavailable.Code, envelope.Error.Code)
}

func TestTimetableHandlerExportInvalidFormat(t *testing.T) {
	handler := NewTimetableHandler(&timetableServiceMock{}, &exporterMock{err: appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")})

	c, w := newTestContext(t, "/timetable/export?format=xlsx")
	handler.Export(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
