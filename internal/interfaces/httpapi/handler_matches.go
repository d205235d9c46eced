package httpapi

import (
	"net/http"
	"strconv"
	"strings"
)

type matchesPageDTO struct {
	Matches  []matchDTO `json:"matches"`
	LastScan *string    `json:"lastScan"`
}

func (h *Handler) ListTodayMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTodayMatches")
	defer span.End()

	records, err := h.dashboardService.TodayMatches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list today matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesPageDTO{
		Matches:  matchesToDTOs(records),
		LastScan: formatLastScan(h.dashboardService.LastScan()),
	})
}

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	records, err := h.dashboardService.LiveMatches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list live matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesPageDTO{
		Matches:  matchesToDTOs(records),
		LastScan: formatLastScan(h.dashboardService.LastScan()),
	})
}

func (h *Handler) ListRecentMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentMatches")
	defer span.End()

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	records, err := h.dashboardService.RecentMatches(ctx, limit, offset)
	if err != nil {
		h.logger.ErrorContext(ctx, "list recent matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesPageDTO{
		Matches:  matchesToDTOs(records),
		LastScan: formatLastScan(h.dashboardService.LastScan()),
	})
}

func (h *Handler) GetTodayStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTodayStats")
	defer span.End()

	stats, err := h.dashboardService.TodayStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get today stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
