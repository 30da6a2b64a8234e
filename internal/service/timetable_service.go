package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rahat-dev/ramadan-times-api/internal/dto"
	"github.com/rahat-dev/ramadan-times-api/internal/models"
)

const dateLayout = "2006-01-02"

// shareUnavailable is the sentinel share text when no record exists for
// the requested date.
const shareUnavailable = "আজকের সময়সূচি পাওয়া যায়নি।"

type resolverSource interface {
	Resolve(divisionName, districtName string) (Resolution, error)
}

// TimetableService renders resolved day records into the today card, the
// 30-row calendar and the share text. Rendering is a pure function of
// (records, date); the wall clock is injected and only consulted when the
// caller omits a date.
type TimetableService struct {
	resolver resolverSource
	cache    *CacheService
	cacheTTL time.Duration
	loc      *time.Location
	logger   *zap.Logger

	now func() time.Time
}

// NewTimetableService constructs the service. timezone anchors "today"
// for requests without an explicit date; it falls back to UTC when the
// zone cannot be loaded.
func NewTimetableService(resolver resolverSource, cache *CacheService, cacheTTL time.Duration, timezone string, logger *zap.Logger) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logger.Warn("invalid dataset timezone, using UTC", zap.String("timezone", timezone))
		loc = time.UTC
	}
	return &TimetableService{
		resolver: resolver,
		cache:    cache,
		cacheTTL: cacheTTL,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// FindToday returns a copy of the record whose date matches the given
// day, or nil when the date falls outside the loaded window. Absence is
// not an error; callers render a placeholder.
func FindToday(records []models.DayRecord, date time.Time) *models.DayRecord {
	iso := date.Format(dateLayout)
	for i := range records {
		if records[i].Date == iso {
			rec := records[i]
			return &rec
		}
	}
	return nil
}

// FormatClockTime converts a 24-hour "HH:MM" value into a 12-hour display
// string with an AM/PM suffix. Hours 0 and 12 both display as 12. The
// function is total: input that does not parse is returned unchanged.
func FormatClockTime(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return hhmm
	}

	ampm := "AM"
	if hh >= 12 {
		ampm = "PM"
	}
	h12 := hh % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, mm, ampm)
}

// BuildCalendarRows maps every record into a display row, preserving the
// input order. Exactly the row matching the given date is flagged as
// today; zero rows are flagged when the date is outside the window.
func BuildCalendarRows(records []models.DayRecord, date time.Time) []models.CalendarRow {
	iso := date.Format(dateLayout)
	rows := make([]models.CalendarRow, 0, len(records))
	for _, rec := range records {
		row := models.CalendarRow{
			RamadanDay:   rec.RamadanDay,
			Date:         rec.Date,
			SehriDisplay: FormatClockTime(rec.SehriEnd),
			IftarDisplay: FormatClockTime(rec.Iftar),
			IsToday:      rec.Date == iso,
		}
		if day, err := time.Parse(dateLayout, rec.Date); err == nil {
			row.Weekday = BanglaWeekday(day)
			row.DateLabel = BanglaDateLabel(day)
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildShareText composes the clipboard summary for today's record. A nil
// record yields the "no data" sentinel message rather than an error.
func BuildShareText(today *models.DayRecord, districtName, divisionName string, date time.Time) string {
	if today == nil {
		return shareUnavailable
	}
	return fmt.Sprintf(
		"🕌 রমজান %s\n📍 %s, %s\n📅 %s, %s\n🌙 সেহরি শেষ: %s\n☀️ ইফতার: %s\n\nরমজান মোবারক! 🌙✨",
		BanglaDigits(today.RamadanDay),
		districtName,
		divisionName,
		BanglaWeekday(date),
		BanglaDateLabel(date),
		FormatClockTime(today.SehriEnd),
		FormatClockTime(today.Iftar),
	)
}

// Timetable resolves the selection and renders the full calendar view for
// the given date. A zero date means "now" in the configured timezone.
// The rendered payload is cached per (division, district, date) using the
// effective names after fallback.
func (s *TimetableService) Timetable(ctx context.Context, sel models.Selection, date time.Time) (*dto.TimetableResponse, bool, error) {
	date = s.effectiveDate(date)
	res, err := s.resolver.Resolve(sel.Division, sel.District)
	if err != nil {
		return nil, false, err
	}

	iso := date.Format(dateLayout)
	key := fmt.Sprintf("timetable:%s:%s:%s", res.Division, res.District, iso)
	var cached dto.TimetableResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, true, nil
	}

	resp := &dto.TimetableResponse{
		Division: res.Division,
		District: res.District,
		Date:     iso,
		Today:    todayCard(FindToday(res.Records, date)),
		Rows:     BuildCalendarRows(res.Records, date),
	}
	s.cache.Set(ctx, key, resp, s.cacheTTL)
	return resp, false, nil
}

// Today resolves the selection and renders just the today card together
// with the share text.
func (s *TimetableService) Today(ctx context.Context, sel models.Selection, date time.Time) (*dto.TodayResponse, error) {
	date = s.effectiveDate(date)
	res, err := s.resolver.Resolve(sel.Division, sel.District)
	if err != nil {
		return nil, err
	}

	today := FindToday(res.Records, date)
	return &dto.TodayResponse{
		Division:  res.Division,
		District:  res.District,
		Date:      date.Format(dateLayout),
		Today:     todayCard(today),
		ShareText: BuildShareText(today, res.District, res.Division, date),
	}, nil
}

// Share renders only the share text payload.
func (s *TimetableService) Share(ctx context.Context, sel models.Selection, date time.Time) (*dto.ShareResponse, error) {
	date = s.effectiveDate(date)
	res, err := s.resolver.Resolve(sel.Division, sel.District)
	if err != nil {
		return nil, err
	}

	return &dto.ShareResponse{
		Division: res.Division,
		District: res.District,
		Date:     date.Format(dateLayout),
		Text:     BuildShareText(FindToday(res.Records, date), res.District, res.Division, date),
	}, nil
}

func (s *TimetableService) effectiveDate(date time.Time) time.Time {
	if date.IsZero() {
		return s.now().In(s.loc)
	}
	return date
}

func todayCard(rec *models.DayRecord) *dto.TodayCard {
	if rec == nil {
		return nil
	}
	card := &dto.TodayCard{
		RamadanDay:   rec.RamadanDay,
		Date:         rec.Date,
		SehriEnd:     rec.SehriEnd,
		Iftar:        rec.Iftar,
		SehriDisplay: FormatClockTime(rec.SehriEnd),
		IftarDisplay: FormatClockTime(rec.Iftar),
	}
	if day, err := time.Parse(dateLayout, rec.Date); err == nil {
		card.Weekday = BanglaWeekday(day)
		card.DateLabel = BanglaDateLabel(day)
	}
	return card
}
