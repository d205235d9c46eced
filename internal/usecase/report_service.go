package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
	"github.com/tiagoh/esoccer-tracker/internal/platform/logging"
	"github.com/xuri/excelize/v2"
)

const (
	reportSheetMatches = "matches"
	reportSheetSummary = "summary"
)

// ReportService builds the daily Excel workbook and mails it out.
type ReportService struct {
	matches  match.Repository
	notifier Notifier
	dir      string
	loc      *time.Location
	logger   *logging.Logger
	now      func() time.Time
}

func NewReportService(matches match.Repository, notifier Notifier, dir string, loc *time.Location, logger *logging.Logger) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ReportService{
		matches:  matches,
		notifier: notifier,
		dir:      dir,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// Today returns the current day in the tracker's timezone.
func (s *ReportService) Today() time.Time {
	return s.now().In(s.loc)
}

// GenerateDaily writes the workbook for the given day and returns its path.
// The workbook has one row per match record and a per-player summary sheet.
func (s *ReportService) GenerateDaily(ctx context.Context, day time.Time) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.GenerateDaily")
	defer span.End()

	records, err := s.matches.ListByDate(ctx, day)
	if err != nil {
		return "", crerr.Mark(crerr.Wrapf(err, "list matches for report day=%s", day.Format("2006-01-02")), ErrPersistence)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("report_%s.xlsx", day.Format("2006-01-02")))
	if err := writeWorkbook(path, records); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}

	s.logger.InfoContext(ctx, "daily report generated", "path", path, "records", len(records))
	return path, nil
}

// EmailDaily generates today's workbook and mails it to the recipient.
func (s *ReportService) EmailDaily(ctx context.Context, to string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.EmailDaily")
	defer span.End()

	if to == "" {
		return "", fmt.Errorf("%w: report recipient is required", ErrInvalidInput)
	}

	day := s.now().In(s.loc)
	path, err := s.GenerateDaily(ctx, day)
	if err != nil {
		return "", err
	}

	subject := fmt.Sprintf("match report %s", day.Format("2006-01-02"))
	body := "attached is the daily match report"
	if err := s.notifier.Send(ctx, to, path, subject, body); err != nil {
		return "", crerr.Mark(crerr.Wrap(err, "send report email"), ErrDependencyUnavailable)
	}

	return path, nil
}

func writeWorkbook(path string, records []match.Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName(f.GetSheetName(0), reportSheetMatches)
	header := []any{"date", "time", "player", "team", "opponent", "goals", "goals against", "result", "status", "league", "stadium"}
	if err := f.SetSheetRow(reportSheetMatches, "A1", &header); err != nil {
		return err
	}

	for i, r := range records {
		row := []any{
			r.Date.Format("2006-01-02"),
			r.TimeOfDay,
			r.Player,
			r.Team,
			r.Opponent,
			goalsCell(r.Goals),
			goalsCell(r.GoalsAgainst),
			resultCell(r.Win),
			r.Status,
			r.League,
			r.Stadium,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(reportSheetMatches, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(reportSheetSummary); err != nil {
		return err
	}
	summaryHeader := []any{"player", "matches", "wins", "goals", "goals against", "winrate"}
	if err := f.SetSheetRow(reportSheetSummary, "A1", &summaryHeader); err != nil {
		return err
	}
	for i, stats := range DailyStats(records) {
		row := []any{stats.Player, stats.Matches, stats.Wins, stats.Goals, stats.GoalsAgainst, stats.Winrate}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(reportSheetSummary, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func goalsCell(goals *int) any {
	if goals == nil {
		return ""
	}
	return *goals
}

func resultCell(win *bool) string {
	switch {
	case win == nil:
		return ""
	case *win:
		return "W"
	default:
		return "L"
	}
}
