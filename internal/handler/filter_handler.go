package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cinerec/internal/models"
	"cinerec/internal/report"
	"cinerec/internal/service"
)

type FilterHandler struct {
	svc *service.FilterService
	pdf *report.Builder
}

func NewFilterHandler(s *service.FilterService, pdf *report.Builder) *FilterHandler {
	return &FilterHandler{svc: s, pdf: pdf}
}

type filterResponse struct {
	Items   []models.MovieCard `json:"items"`
	Message string             `json:"message,omitempty"`
}

func parseFilterQuery(r *http.Request) (genre, cast string, minRating float64, k int) {
	genre = r.URL.Query().Get("genre")
	cast = r.URL.Query().Get("cast")
	minRating, _ = strconv.ParseFloat(r.URL.Query().Get("min_rating"), 64)
	k, _ = strconv.Atoi(r.URL.Query().Get("k"))
	return genre, cast, minRating, k
}

// @Summary Filtrar el catálogo por género / cast / rating mínimo
// @Tags filter
// @Produce json
// @Param genre query string false "substring de géneros (case-insensitive)"
// @Param cast query string false "substring del cast (case-insensitive)"
// @Param min_rating query number false "rating mínimo [0,10]"
// @Param k query int false "máximo de resultados (1-20, default 10)"
// @Success 200 {object} filterResponse
// @Router /movies/filter [get]
func (h *FilterHandler) FilterMovies(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	genre, cast, minRating, k := parseFilterQuery(r)
	items := h.svc.FilterByCriteria(r.Context(), genre, cast, minRating, k)

	resp := filterResponse{Items: items}
	if len(items) == 0 {
		// cero matches no es un error, se reporta explícito
		resp.Message = "No movies matched your filters."
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Resultados filtrados como PDF descargable
// @Tags filter
// @Produce application/pdf
// @Param genre query string false "substring de géneros (case-insensitive)"
// @Param cast query string false "substring del cast (case-insensitive)"
// @Param min_rating query number false "rating mínimo [0,10]"
// @Param k query int false "máximo de resultados (1-20, default 10)"
// @Success 200 {file} binary
// @Router /movies/filter/pdf [get]
func (h *FilterHandler) FilterMoviesPDF(w http.ResponseWriter, r *http.Request) {
	genre, cast, minRating, k := parseFilterQuery(r)
	items := h.svc.FilterByCriteria(r.Context(), genre, cast, minRating, k)

	servePDF(r.Context(), w, h.pdf, items, "filtered_recommendations.pdf")
}
