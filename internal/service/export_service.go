package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rahat-dev/ramadan-times-api/internal/dto"
	"github.com/rahat-dev/ramadan-times-api/internal/models"
	appErrors "github.com/rahat-dev/ramadan-times-api/pkg/errors"
	"github.com/rahat-dev/ramadan-times-api/pkg/export"
)

// Export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type timetableSource interface {
	Timetable(ctx context.Context, sel models.Selection, date time.Time) (*dto.TimetableResponse, bool, error)
}

// ExportService renders the resolved 30-day calendar as a downloadable
// file. Labels are English because the PDF core fonts cannot render
// Bengali script.
type ExportService struct {
	timetable timetableSource
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(timetable timetableSource, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		timetable: timetable,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
	}
}

// ExportResult carries the rendered file and its HTTP metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// Calendar exports the calendar for the given selection and date.
func (s *ExportService) Calendar(ctx context.Context, sel models.Selection, date time.Time, format string) (*ExportResult, error) {
	view, _, err := s.timetable.Timetable(ctx, sel, date)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Headers: []string{"Day", "Date", "Weekday", "Sehri Ends", "Iftar"},
		Rows:    make([]map[string]string, 0, len(view.Rows)),
	}
	highlights := make(map[int]bool)
	for i, row := range view.Rows {
		weekday := ""
		if day, parseErr := time.Parse(dateLayout, row.Date); parseErr == nil {
			weekday = day.Weekday().String()
		}
		data.Rows = append(data.Rows, map[string]string{
			"Day":        strconv.Itoa(row.RamadanDay),
			"Date":       row.Date,
			"Weekday":    weekday,
			"Sehri Ends": row.SehriDisplay,
			"Iftar":      row.IftarDisplay,
		})
		if row.IsToday {
			highlights[i] = true
		}
	}

	base := fmt.Sprintf("ramadan-calendar-%s-%s", slugify(view.Division), slugify(view.District))
	switch format {
	case ExportFormatCSV, "":
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: base + ".csv"}, nil
	case ExportFormatPDF:
		title := "Ramadan Calendar 2026"
		subtitle := fmt.Sprintf("%s, %s", view.District, view.Division)
		content, err := s.pdf.Render(data, title, subtitle, highlights)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: base + ".pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func slugify(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ', r == '-', r == '\'':
			out = append(out, '-')
		}
	}
	return string(out)
}
