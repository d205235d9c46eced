package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches/today", handler.ListTodayMatches)
	mux.HandleFunc("GET /v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/matches", handler.ListRecentMatches)
	mux.HandleFunc("GET /v1/stats/today", handler.GetTodayStats)
}

func registerRegistryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.AddPlayer)
	mux.HandleFunc("DELETE /v1/players/{username}", handler.RemovePlayer)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/teams", handler.AddTeam)
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/reports/daily", handler.GenerateDailyReport)
	mux.HandleFunc("POST /v1/reports/daily/email", handler.EmailDailyReport)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/admin/scheduler", handler.GetSchedulerStatus)
	mux.HandleFunc("POST /v1/admin/shutdown", handler.Shutdown)
}
