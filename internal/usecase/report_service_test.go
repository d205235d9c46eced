package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
	"github.com/tiagoh/esoccer-tracker/internal/platform/logging"
)

type recordingRepo struct {
	stubMatchRepo
	records []match.Record
}

func (r *recordingRepo) ListByDate(context.Context, time.Time) ([]match.Record, error) {
	return r.records, nil
}

func TestGenerateDaily_WritesWorkbook(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	repo := &recordingRepo{records: []match.Record{
		{
			MatchID:      "esb-1001",
			Player:       "alice",
			Team:         "Manchester United",
			Opponent:     "Real Madrid",
			Goals:        intPtr(2),
			GoalsAgainst: intPtr(1),
			Win:          boolPtr(true),
			League:       "Champions Cup",
			Date:         day,
			TimeOfDay:    "18:30",
			Status:       "Finished",
		},
	}}

	service := NewReportService(repo, &stubNotifier{}, t.TempDir(), time.UTC, logging.NewNop())

	path, err := service.GenerateDaily(context.Background(), day)
	if err != nil {
		t.Fatalf("GenerateDaily error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("matches")
	if err != nil {
		t.Fatalf("read matches sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(rows))
	}
	if rows[1][2] != "alice" || rows[1][7] != "W" {
		t.Fatalf("unexpected match row %v", rows[1])
	}

	summary, err := f.GetRows("summary")
	if err != nil {
		t.Fatalf("read summary sheet: %v", err)
	}
	if len(summary) != 2 || summary[1][0] != "alice" {
		t.Fatalf("unexpected summary rows %v", summary)
	}
}

func TestEmailDaily_RequiresRecipient(t *testing.T) {
	t.Parallel()

	service := NewReportService(&recordingRepo{}, &stubNotifier{}, t.TempDir(), time.UTC, logging.NewNop())

	if _, err := service.EmailDaily(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEmailDaily_SendsAttachment(t *testing.T) {
	t.Parallel()

	notifier := &stubNotifier{}
	service := NewReportService(&recordingRepo{}, notifier, t.TempDir(), time.UTC, logging.NewNop())

	path, err := service.EmailDaily(context.Background(), "boss@example.com")
	if err != nil {
		t.Fatalf("EmailDaily error: %v", err)
	}
	if path == "" {
		t.Fatalf("expected report path")
	}
	if notifier.count() != 1 {
		t.Fatalf("expected one email, got %d", notifier.count())
	}
}
