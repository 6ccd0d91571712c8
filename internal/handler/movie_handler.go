package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cinerec/internal/catalog"
	"cinerec/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	cat      *catalog.Catalog
	enricher service.Enricher
}

func NewMovieHandler(cat *catalog.Catalog, enricher service.Enricher) *MovieHandler {
	return &MovieHandler{cat: cat, enricher: enricher}
}

// @Summary Lista de títulos del catálogo (para el select de la UI)
// @Tags movies
// @Produce json
// @Success 200 {array} string
// @Router /movies/titles [get]
func (h *MovieHandler) Titles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.cat.Titles())
}

type movieResponse struct {
	MovieID int    `json:"movieId"`
	Pos     int    `json:"pos"`
	Title   string `json:"title"`
	Poster  string `json:"poster"`
	Genres  string `json:"genres"`
	Rating  string `json:"rating"`
	Cast    string `json:"cast"`
	Trailer string `json:"trailer"`
}

// @Summary Detalle de una película del catálogo, enriquecido con TMDB
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} movieResponse
// @Failure 404 {string} string "not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	m, ok := h.cat.FindByID(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	det := h.enricher.FetchDetails(r.Context(), m.ID)
	trailer := h.enricher.FetchTrailer(r.Context(), m.ID)

	_ = json.NewEncoder(w).Encode(movieResponse{
		MovieID: m.ID,
		Pos:     m.Pos,
		Title:   m.Title,
		Poster:  det.Poster,
		Genres:  det.Genres,
		Rating:  det.Rating,
		Cast:    det.Cast,
		Trailer: trailer,
	})
}
