package handler

import (
	"encoding/json"
	"net/http"

	"cinerec/internal/service"

	"github.com/go-chi/chi/v5"
)

// MaintenanceHandler expone endpoints de mantenimiento (solo admin).
type MaintenanceHandler struct {
	svc *service.MaintenanceService
}

func NewMaintenanceHandler(svc *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

// @Summary Resumen del catálogo cargado vs lo persistido en Mongo
// @Description Tamaño del catálogo y la matriz en memoria, y conteos de las colecciones movies/similarities.
// @Tags admin-maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.CatalogSummary
// @Failure 500 {string} string "error interno"
// @Router /admin/maintenance/summary [get]
// GET /admin/maintenance/summary
func (h *MaintenanceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetSummary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// @Summary Vaciar los caches de Redis (TMDB y recomendaciones)
// @Tags admin-maintenance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.FlushCacheResult
// @Failure 500 {string} string "error interno"
// @Router /admin/maintenance/cache/flush [post]
// POST /admin/maintenance/cache/flush
func (h *MaintenanceHandler) PostFlushCache(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.FlushCaches(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Utilidad pequeña para respuestas JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Helper para montar rutas en main.go
func MountMaintenanceRoutes(r chi.Router, h *MaintenanceHandler) {
	r.Route("/admin/maintenance", func(r chi.Router) {
		r.Get("/summary", h.GetSummary)
		r.Post("/cache/flush", h.PostFlushCache)
	})
}
