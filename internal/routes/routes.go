package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/emogo-app/emogo-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handler) {
	r.Get("/", h.Index)
	r.Post("/records", h.SubmitRecords)
	r.Get("/export", h.ExportHTML)
	r.Get("/export/csv", h.ExportCSV)
}
