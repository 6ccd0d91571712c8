package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"cinerec/internal/catalog"
	"cinerec/internal/models"
	"cinerec/internal/report"
	"cinerec/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
	pdf *report.Builder
}

func NewRecommendHandler(s *service.RecommendService, pdf *report.Builder) *RecommendHandler {
	return &RecommendHandler{svc: s, pdf: pdf}
}

func parseRecQuery(r *http.Request) (string, int) {
	title := r.URL.Query().Get("title")
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	return title, k
}

// @Summary Películas similares a un título del catálogo
// @Tags recommend
// @Produce json
// @Param title query string true "título exacto del catálogo"
// @Param k query int false "cantidad de resultados (1-20, default 10)"
// @Success 200 {array} models.MovieCard
// @Failure 400 {string} string "title requerido"
// @Failure 404 {string} string "título no encontrado"
// @Router /recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	title, k := parseRecQuery(r)
	if title == "" {
		http.Error(w, "title es requerido", http.StatusBadRequest)
		return
	}

	items, err := h.svc.Recommend(r.Context(), title, k)
	if err != nil {
		if errors.Is(err, catalog.ErrTitleNotFound) {
			http.Error(w, "no such title: "+title, http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Recomendaciones como PDF descargable
// @Tags recommend
// @Produce application/pdf
// @Param title query string true "título exacto del catálogo"
// @Param k query int false "cantidad de resultados (1-20, default 10)"
// @Success 200 {file} binary
// @Failure 404 {string} string "título no encontrado"
// @Router /recommendations/pdf [get]
func (h *RecommendHandler) GetRecommendationsPDF(w http.ResponseWriter, r *http.Request) {
	title, k := parseRecQuery(r)
	if title == "" {
		http.Error(w, "title es requerido", http.StatusBadRequest)
		return
	}

	items, err := h.svc.Recommend(r.Context(), title, k)
	if err != nil {
		if errors.Is(err, catalog.ErrTitleNotFound) {
			http.Error(w, "no such title: "+title, http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	servePDF(r.Context(), w, h.pdf, items, "movie_recommendations.pdf")
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones con progreso en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param title query string true "título exacto del catálogo"
// @Param k query int false "cantidad de resultados (1-20, default 10)"
// @Success 200 {object} map[string]interface{}
// @Router /ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	title, k := parseRecQuery(r)

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, buscando similares…",
	})

	// Un mensaje de progreso por cada resultado enriquecido
	items, err := h.svc.RecommendStream(r.Context(), title, k, func(i, total int, card models.MovieCard) {
		conn.WriteJSON(map[string]any{
			"type":  "progress",
			"index": i + 1,
			"total": total,
			"title": card.Title,
		})
	})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final con resultados
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"title":       title,
		"items":       items,
		"generatedAt": time.Now(),
	})
}

// servePDF renderiza y sirve el documento como descarga.
func servePDF(ctx context.Context, w http.ResponseWriter, pdf *report.Builder, items []models.MovieCard, filename string) {
	data, err := pdf.BuildPDF(ctx, items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(data)
}
