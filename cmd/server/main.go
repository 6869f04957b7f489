package main

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Simplici0/savings/internal/assumptions"
	"github.com/Simplici0/savings/internal/config"
	"github.com/Simplici0/savings/internal/db"
	"github.com/Simplici0/savings/internal/logging"
	"github.com/Simplici0/savings/internal/metrics"
	"github.com/Simplici0/savings/internal/migrations"
	"github.com/Simplici0/savings/internal/report"
	"github.com/Simplici0/savings/internal/savings"
	"github.com/Simplici0/savings/internal/seed"
	"github.com/Simplici0/savings/web"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	logger      *zap.Logger
	assumptions savings.Assumptions
	formatter   report.Formatter
	provider    string
	contact     string
	now         func() time.Time
}

type baseViewData struct {
	ErrorMessage string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := loadAssumptions(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to load assumptions", zap.Error(err))
	}

	formatter, err := report.NewFormatter(cfg.ReportLocale, cfg.CurrencySymbol)
	if err != nil {
		logger.Fatal("failed to build report formatter", zap.Error(err))
	}

	srv := &server{
		logger:      logger,
		assumptions: table,
		formatter:   formatter,
		provider:    cfg.ProviderName,
		contact:     cfg.ReportContact,
		now:         time.Now,
	}

	metricsMiddleware, err := metrics.NewMiddleware("savings", prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("failed to register http metrics", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(metricsMiddleware.Handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// loadAssumptions resolves the assumptions table once. In dev the store is
// migrated and seeded with the compiled-in defaults first.
func loadAssumptions(ctx context.Context, cfg config.Config, logger *zap.Logger) (savings.Assumptions, error) {
	src := assumptions.Source{File: cfg.AssumptionsFile}

	if cfg.DBPath != "" && cfg.AssumptionsFile == "" {
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return savings.Assumptions{}, err
		}
		defer database.Close()

		if cfg.IsDev() {
			if _, err := migrations.UpContext(ctx, database); err != nil {
				return savings.Assumptions{}, err
			}
			stats, err := seed.Run(ctx, database, seed.Config{Assumptions: savings.DefaultAssumptions()})
			if err != nil {
				return savings.Assumptions{}, err
			}
			logger.Info("seeded assumptions store", zap.Int("inserts", stats.Inserts))
		}
		src.DB = database
	}

	table, origin, err := assumptions.Resolve(ctx, src)
	if err != nil {
		return savings.Assumptions{}, err
	}
	logger.Info("assumptions loaded", zap.String("origin", string(origin)))
	return table, nil
}

// middlewares orders the stack so logging and extra (metrics) middleware see
// the 500 written by Recoverer when a handler panics.
func (s *server) middlewares(extra ...func(http.Handler) http.Handler) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		middleware.RequestID,
		logging.RequestLogger(s.logger),
	}
	stack = append(stack, extra...)
	return append(stack, middleware.Recoverer)
}

func (s *server) routes(extra ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(s.middlewares(extra...)...)

	r.Handle("/static/*", http.FileServer(http.FS(web.Static)))
	r.Get("/", s.handleCalculator)
	r.Get("/report.{format}", s.handleReport)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Post("/savings", s.handleAPISavings)
		r.Get("/packages", s.handleAPIPackages)
		r.Get("/assumptions", s.handleAPIAssumptions)
	})

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *server) renderTemplate(w http.ResponseWriter, page string, data any) {
	templates, err := template.ParseFS(web.Templates, "templates/layout.html", "templates/"+page)
	if err != nil {
		s.logger.Error("failed to parse template", zap.String("page", page), zap.Error(err))
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.logger.Error("failed to render template", zap.String("page", page), zap.Error(err))
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
}
