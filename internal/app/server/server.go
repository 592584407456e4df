package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/loan"
	"hrpay/internal/domain/organization"
	"hrpay/internal/domain/payroll"
	"hrpay/internal/platform/config"
	"hrpay/internal/platform/db"
	"hrpay/internal/platform/metrics"
	authhandler "hrpay/internal/transport/http/handlers/auth"
	loanhandler "hrpay/internal/transport/http/handlers/loan"
	organizationhandler "hrpay/internal/transport/http/handlers/organization"
	payrollhandler "hrpay/internal/transport/http/handlers/payroll"
	"hrpay/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	collector := metrics.New()

	auditService := audit.New(pool)
	orgService := organization.NewService(organization.NewStore(pool))
	payrollService := payroll.NewService(payroll.NewStore(pool), orgService, cfg.PayrollWorkers, cfg.PayslipDir)
	loanService := loan.NewService(loan.NewStore(pool))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/internal/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(collector.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		payrollHandler := payrollhandler.NewHandler(payrollService, auditService, collector)
		loanHandler := loanhandler.NewHandler(loanService, auditService)

		authhandler.NewHandler(pool, cfg.JWTSecret).RegisterRoutes(r)
		organizationhandler.NewHandler(orgService, auditService).RegisterRoutes(r)
		payrollHandler.RegisterRoutes(r)
		loanHandler.RegisterRoutes(r)

		r.Route("/employees/{employeeID}", func(r chi.Router) {
			r.Use(middleware.RequireUser)
			payrollHandler.RegisterEmployeeRoutes(r)
			loanHandler.RegisterEmployeeRoutes(r)
		})
	})

	log.Printf("server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
