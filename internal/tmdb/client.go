// Package tmdb habla con The Movie Database para enriquecer los
// resultados (poster, géneros, rating, cast, trailer). Cualquier falla
// (red, timeout, respuesta malformada) se absorbe acá y se devuelven
// valores fallback: los servicios de arriba nunca ven un error de TMDB.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cinerec/internal/cache"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/w500"

	// Sentinel para campos que no se pudieron resolver. El filtro por
	// rating depende de poder distinguirlo de un valor numérico real.
	Unknown = "unknown"

	posterPlaceholder = "https://via.placeholder.com/500x750?text=No+Image"
	posterError       = "https://via.placeholder.com/500x750?text=Error"
	trailerFallback   = "https://youtube.com"

	detailsTTLSeconds = 24 * 60 * 60
)

// Details son los campos de display de una película.
type Details struct {
	Poster string `json:"poster"`
	Genres string `json:"genres"`
	Rating string `json:"rating"`
	Cast   string `json:"cast"`
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientWithBaseURL permite apuntar a otro endpoint (tests).
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// ====== respuestas de la API ======

type movieResponse struct {
	PosterPath  string   `json:"poster_path"`
	VoteAverage *float64 `json:"vote_average"`
	Genres      []struct {
		Name string `json:"name"`
	} `json:"genres"`
	Credits struct {
		Cast []struct {
			Name string `json:"name"`
		} `json:"cast"`
	} `json:"credits"`
}

type videosResponse struct {
	Results []struct {
		Key  string `json:"key"`
		Site string `json:"site"`
		Type string `json:"type"`
	} `json:"results"`
}

// FetchDetails resuelve los datos de display de una película.
// Nunca devuelve error: si algo falla se loguea y se devuelve la
// tupla fallback.
func (c *Client) FetchDetails(ctx context.Context, movieID int) Details {
	cacheKey := fmt.Sprintf("tmdb:details:%d", movieID)

	var cached Details
	if ok, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
		return cached
	}

	var resp movieResponse
	reqURL := fmt.Sprintf("%s/movie/%d?api_key=%s&language=en-US&append_to_response=credits",
		c.baseURL, movieID, url.QueryEscape(c.apiKey))

	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		log.Printf("[tmdb] error fetching details movieId=%d: %v", movieID, err)
		return Details{
			Poster: posterError,
			Genres: Unknown,
			Rating: Unknown,
			Cast:   Unknown,
		}
	}

	poster := posterPlaceholder
	if resp.PosterPath != "" {
		poster = imageBaseURL + resp.PosterPath
	}

	genreNames := make([]string, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		genreNames = append(genreNames, g.Name)
	}

	rating := Unknown
	if resp.VoteAverage != nil {
		rating = strconv.FormatFloat(*resp.VoteAverage, 'f', 1, 64)
	}

	// top 5 del cast, como en la UI
	castNames := make([]string, 0, 5)
	for _, m := range resp.Credits.Cast {
		castNames = append(castNames, m.Name)
		if len(castNames) == 5 {
			break
		}
	}

	det := Details{
		Poster: poster,
		Genres: strings.Join(genreNames, ", "),
		Rating: rating,
		Cast:   strings.Join(castNames, ", "),
	}

	if err := cache.SetJSON(ctx, cacheKey, det, detailsTTLSeconds); err != nil {
		log.Printf("[tmdb] error cacheando details movieId=%d: %v", movieID, err)
	}
	return det
}

// FetchTrailer busca el primer video tipo "Trailer" hosteado en YouTube.
// Si no hay, o si la llamada falla, devuelve la home de YouTube.
func (c *Client) FetchTrailer(ctx context.Context, movieID int) string {
	cacheKey := fmt.Sprintf("tmdb:trailer:%d", movieID)

	var cached string
	if ok, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
		return cached
	}

	var resp videosResponse
	reqURL := fmt.Sprintf("%s/movie/%d/videos?api_key=%s&language=en-US",
		c.baseURL, movieID, url.QueryEscape(c.apiKey))

	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		log.Printf("[tmdb] error fetching trailer movieId=%d: %v", movieID, err)
		return trailerFallback
	}

	trailer := trailerFallback
	for _, v := range resp.Results {
		if v.Type == "Trailer" && v.Site == "YouTube" {
			trailer = "https://www.youtube.com/watch?v=" + v.Key
			break
		}
	}

	if err := cache.SetJSON(ctx, cacheKey, trailer, detailsTTLSeconds); err != nil {
		log.Printf("[tmdb] error cacheando trailer movieId=%d: %v", movieID, err)
	}
	return trailer
}

func (c *Client) getJSON(ctx context.Context, reqURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb status %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(dest)
}
