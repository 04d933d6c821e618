package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a router with all routes configured.
func NewRouter(h *Handler, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/engagements", func(r chi.Router) {
		r.Post("/", h.CreateEngagement)
		r.Get("/", h.ListEngagements)
		r.Patch("/{id}", h.UpdateEngagement)
		r.Delete("/{id}", h.DeleteEngagement)
		r.Post("/{id}/periods/generate", h.GeneratePeriods)
		r.Get("/{id}/export/csv", h.ExportWorkDaysCSV)
	})

	r.Route("/workdays", func(r chi.Router) {
		r.Post("/", h.CreateWorkDay)
		r.Get("/", h.ListWorkDays)
	})

	r.Route("/activities", func(r chi.Router) {
		r.Post("/", h.CreateActivity)
		r.Get("/", h.ListActivities)
	})

	r.Route("/periods", func(r chi.Router) {
		r.Post("/", h.CreatePeriod)
		r.Get("/", h.ListPeriods)
		r.Post("/{id}/status", h.TransitionPeriod)
	})

	r.Route("/invoices", func(r chi.Router) {
		r.Post("/", h.CreateInvoice)
		r.Get("/", h.ListInvoices)
	})

	r.Get("/audit-logs", h.ListAuditLogs)
	r.Get("/holidays", h.ListHolidays)

	return r
}
