package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rahat-dev/ramadan-times-api/internal/dto"
	"github.com/rahat-dev/ramadan-times-api/internal/middleware"
	"github.com/rahat-dev/ramadan-times-api/internal/models"
	"github.com/rahat-dev/ramadan-times-api/internal/service"
	appErrors "github.com/rahat-dev/ramadan-times-api/pkg/errors"
	"github.com/rahat-dev/ramadan-times-api/pkg/response"
)

type timetableService interface {
	Timetable(ctx context.Context, sel models.Selection, date time.Time) (*dto.TimetableResponse, bool, error)
	Today(ctx context.Context, sel models.Selection, date time.Time) (*dto.TodayResponse, error)
	Share(ctx context.Context, sel models.Selection, date time.Time) (*dto.ShareResponse, error)
}

type calendarExportService interface {
	Calendar(ctx context.Context, sel models.Selection, date time.Time, format string) (*service.ExportResult, error)
}

// TimetableHandler exposes the resolved Sehri/Iftar timetable endpoints.
type TimetableHandler struct {
	service  timetableService
	exporter calendarExportService
}

// NewTimetableHandler constructs the handler. exporter may be nil when
// exports are disabled.
func NewTimetableHandler(service timetableService, exporter calendarExportService) *TimetableHandler {
	return &TimetableHandler{service: service, exporter: exporter}
}

// Timetable godoc
// @Summary Resolved timetable with today card and 30-day calendar
// @Tags Timetable
// @Produce json
// @Param division query string false "Division name (falls back to first)"
// @Param district query string false "District name (falls back to first)"
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Success 200 {object} response.Envelope
// @Router /timetable [get]
func (h *TimetableHandler) Timetable(c *gin.Context) {
	sel := selectionFromQuery(c)
	date, err := parseDateQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	start := time.Now()
	view, cacheHit, err := h.service.Timetable(c.Request.Context(), sel, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, view, meta)
}

// Today godoc
// @Summary Today card with share text
// @Tags Timetable
// @Produce json
// @Param division query string false "Division name"
// @Param district query string false "District name"
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Success 200 {object} response.Envelope
// @Router /timetable/today [get]
func (h *TimetableHandler) Today(c *gin.Context) {
	sel := selectionFromQuery(c)
	date, err := parseDateQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.service.Today(c.Request.Context(), sel, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Share godoc
// @Summary Share text for today's timetable
// @Tags Timetable
// @Produce json
// @Param division query string false "Division name"
// @Param district query string false "District name"
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Success 200 {object} response.Envelope
// @Router /timetable/share [get]
func (h *TimetableHandler) Share(c *gin.Context) {
	sel := selectionFromQuery(c)
	date, err := parseDateQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.service.Share(c.Request.Context(), sel, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Export godoc
// @Summary Download the calendar as CSV or PDF
// @Tags Timetable
// @Produce text/csv
// @Produce application/pdf
// @Param division query string false "Division name"
// @Param district query string false "District name"
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} binary
// @Router /timetable/export [get]
func (h *TimetableHandler) Export(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.ErrUnavailable)
		return
	}
	sel := selectionFromQuery(c)
	date, err := parseDateQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format := strings.ToLower(strings.TrimSpace(c.Query("format")))

	result, err := h.exporter.Calendar(c.Request.Context(), sel, date, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func selectionFromQuery(c *gin.Context) models.Selection {
	return models.Selection{
		Division: strings.TrimSpace(c.Query("division")),
		District: strings.TrimSpace(c.Query("district")),
	}
}

func parseDateQuery(c *gin.Context) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "invalid date, expected YYYY-MM-DD")
	}
	return parsed, nil
}
