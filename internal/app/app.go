package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/tiagoh/esoccer-tracker/external/esportsbattle"
	"github.com/tiagoh/esoccer-tracker/internal/config"
	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
	"github.com/tiagoh/esoccer-tracker/internal/domain/player"
	"github.com/tiagoh/esoccer-tracker/internal/domain/team"
	"github.com/tiagoh/esoccer-tracker/internal/infrastructure/repository/memory"
	"github.com/tiagoh/esoccer-tracker/internal/infrastructure/repository/postgres"
	"github.com/tiagoh/esoccer-tracker/internal/interfaces/httpapi"
	"github.com/tiagoh/esoccer-tracker/internal/notify"
	"github.com/tiagoh/esoccer-tracker/internal/platform/logging"
	"github.com/tiagoh/esoccer-tracker/internal/usecase"
)

// Application bundles the two long-running pieces: the HTTP server and the
// poll scheduler. Wiring happens once here; main only runs and stops them.
type Application struct {
	Server    *http.Server
	Scheduler *usecase.PollScheduler

	db *sqlx.DB
}

func New(cfg config.Config, slogger *slog.Logger) (*Application, error) {
	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)

	var (
		db         *sqlx.DB
		matchRepo  match.Repository
		playerRepo player.Repository
		teamRepo   team.Repository
	)
	if cfg.DBURL != "" {
		conn, err := sqlx.Connect("postgres", normalizeDBURL(cfg.DBURL))
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		db = conn
		matchRepo = postgres.NewMatchRepository(db)
		playerRepo = postgres.NewPlayerRepository(db)
		teamRepo = postgres.NewTeamRepository(db)
	} else {
		slogger.Warn("DB_URL is empty, using in-memory repositories")
		matchRepo = memory.NewMatchRepository()
		playerRepo = memory.NewPlayerRepository()
		teamRepo = memory.NewTeamRepository()
	}

	loc := cfg.Location()
	source := esportsbattle.NewClient(esportsbattle.ClientConfig{
		BaseURL:  cfg.ScrapeBaseURL,
		Timeout:  cfg.ScrapeTimeout,
		Location: loc,
		Logger:   logger,
	})

	mailer := notify.NewMailer(notify.MailerConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
	})

	state := usecase.NewScanState()
	reconcile := usecase.NewReconcileService(matchRepo, logger)
	scan := usecase.NewScanService(source, playerRepo, reconcile, state, mailer, cfg.AlertTo, loc, logger)
	scheduler := usecase.NewPollScheduler(scan, cfg.ScanInterval, mailer, cfg.AlertTo, logger)

	dashboard := usecase.NewDashboardService(matchRepo, state, loc, logger)
	registry := usecase.NewRegistryService(playerRepo, teamRepo, logger)
	report := usecase.NewReportService(matchRepo, mailer, cfg.ReportDir, loc, logger)

	handler := httpapi.NewHandler(dashboard, registry, report, scheduler, slogger)
	router := httpapi.NewRouter(handler, slogger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &Application{
		Server:    server,
		Scheduler: scheduler,
		db:        db,
	}, nil
}

// Close releases resources held outside the HTTP server.
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
