package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/tiagoh/esoccer-tracker/internal/usecase"
)

type emailReportRequest struct {
	To string `json:"to" validate:"required,email"`
}

func (h *Handler) GenerateDailyReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateDailyReport")
	defer span.End()

	day := h.reportService.Today()
	path, err := h.reportService.GenerateDaily(ctx, day)
	if err != nil {
		h.logger.ErrorContext(ctx, "generate report failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"path": path})
}

func (h *Handler) EmailDailyReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EmailDailyReport")
	defer span.End()

	var req emailReportRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	path, err := h.reportService.EmailDaily(ctx, req.To)
	if err != nil {
		h.logger.ErrorContext(ctx, "email report failed", "to", req.To, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"path": path, "to": req.To})
}
