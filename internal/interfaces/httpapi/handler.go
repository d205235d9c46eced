package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
	"github.com/tiagoh/esoccer-tracker/internal/usecase"
)

type Handler struct {
	dashboardService *usecase.DashboardService
	registryService  *usecase.RegistryService
	reportService    *usecase.ReportService
	scheduler        *usecase.PollScheduler
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	dashboardService *usecase.DashboardService,
	registryService *usecase.RegistryService,
	reportService *usecase.ReportService,
	scheduler *usecase.PollScheduler,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		dashboardService: dashboardService,
		registryService:  registryService,
		reportService:    reportService,
		scheduler:        scheduler,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type matchDTO struct {
	ID           int64  `json:"id"`
	MatchID      string `json:"matchId"`
	Player       string `json:"player"`
	Team         string `json:"team"`
	Opponent     string `json:"opponent"`
	Goals        *int   `json:"goals"`
	GoalsAgainst *int   `json:"goalsAgainst"`
	Win          *bool  `json:"win"`
	League       string `json:"league"`
	Stadium      string `json:"stadium"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
}

func matchToDTO(v match.Record) matchDTO {
	return matchDTO{
		ID:           v.ID,
		MatchID:      v.MatchID,
		Player:       v.Player,
		Team:         v.Team,
		Opponent:     v.Opponent,
		Goals:        v.Goals,
		GoalsAgainst: v.GoalsAgainst,
		Win:          v.Win,
		League:       v.League,
		Stadium:      v.Stadium,
		Date:         v.Date.Format("2006-01-02"),
		Time:         v.TimeOfDay,
		Status:       v.Status,
	}
}

func matchesToDTOs(records []match.Record) []matchDTO {
	items := make([]matchDTO, 0, len(records))
	for _, r := range records {
		items = append(items, matchToDTO(r))
	}
	return items
}

func formatLastScan(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
