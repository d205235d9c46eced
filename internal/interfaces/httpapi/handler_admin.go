package httpapi

import "net/http"

// Shutdown stops the poll scheduler. The HTTP server keeps serving; a stopped
// scheduler stays stopped until the process restarts.
func (h *Handler) Shutdown(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Shutdown")
	defer span.End()

	h.scheduler.Stop()
	h.logger.InfoContext(ctx, "scheduler stop requested")

	writeSuccess(ctx, w, http.StatusAccepted, map[string]string{
		"scheduler": h.scheduler.State().String(),
	})
}

// GetSchedulerStatus reports the poll loop state and the last scan time.
func (h *Handler) GetSchedulerStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedulerStatus")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"scheduler": h.scheduler.State().String(),
		"lastScan":  formatLastScan(h.dashboardService.LastScan()),
	})
}
