package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/nordlys/outreach-admin/internal/api/handler"
	mw "github.com/nordlys/outreach-admin/internal/api/middleware"
	"github.com/nordlys/outreach-admin/internal/config"
	"github.com/nordlys/outreach-admin/internal/core"
	"github.com/nordlys/outreach-admin/internal/scaledmail"
)

type Server struct {
	router        chi.Router
	logger        zerolog.Logger
	services      *core.Services
	customersPool *pgxpool.Pool
	authPool      *pgxpool.Pool
	cfg           *config.Config
}

func NewServer(logger zerolog.Logger, customersPool, authPool *pgxpool.Pool, vendor *scaledmail.Client, cfg *config.Config) *Server {
	services := core.NewServices(customersPool, authPool, vendor, cfg.DefaultDailyLimit)

	s := &Server{
		router:        chi.NewRouter(),
		logger:        logger,
		services:      services,
		customersPool: customersPool,
		authPool:      authPool,
		cfg:           cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
}

func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint
	s.router.Handle("/metrics", promhttp.Handler())

	// Health check endpoints
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.Auth(s.customersPool))

		// Dashboard
		dashboard := handler.NewDashboard(s.services.Dashboard)
		r.Get("/dashboard/stats", dashboard.Stats)

		// Organizations
		org := handler.NewOrganization(s.services.Organization, s.services.EmailAccount)
		r.Get("/organizations", org.List)
		r.Get("/organizations/{id}", org.Get)
		r.Get("/organizations/{id}/email-accounts", org.ListEmailAccounts)

		// ScaledMail provisioning
		prov := handler.NewProvisioning(s.services.Provisioning)
		r.Get("/admin/scaledmail/pre-warm-inboxes", prov.Inventory)
		r.Get("/admin/scaledmail/mailboxes/{domainId}", prov.DomainMailboxes)
		r.Post("/admin/scaledmail/purchase", prov.Purchase)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if err := s.customersPool.Ping(ctx); err != nil {
		checks["customers_db"] = err.Error()
		healthy = false
	} else {
		checks["customers_db"] = "ok"
	}

	if err := s.authPool.Ping(ctx); err != nil {
		checks["auth_db"] = err.Error()
		healthy = false
	} else {
		checks["auth_db"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(checks)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
