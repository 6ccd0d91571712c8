package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "cinerec/docs" // swagger docs

	"cinerec/internal/cache"
	"cinerec/internal/catalog"
	"cinerec/internal/config"
	"cinerec/internal/db"
	"cinerec/internal/handler"
	"cinerec/internal/report"
	"cinerec/internal/repository"
	"cinerec/internal/service"
	"cinerec/internal/tmdb"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title CineRec Movie Recommender API
// @version 1.0
// @description API de recomendación por similitud precalculada (Mongo, Redis, TMDB)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	simRepo := repository.NewSimilarityRepository()
	recRepo := repository.NewRecommendationRepository()

	// ==========================================
	// Cargar catálogo + matriz (una sola vez)
	// ==========================================
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	movieDocs, err := movieRepo.LoadCatalog(ctx)
	if err != nil {
		log.Fatalf("[startup] error cargando catálogo: %v", err)
	}
	if len(movieDocs) == 0 {
		log.Fatal("[startup] catálogo vacío: corre cmd/etl primero")
	}

	rows, err := simRepo.LoadMatrix(ctx)
	if err != nil {
		log.Fatalf("[startup] error cargando matriz: %v", err)
	}

	cat := catalog.NewCatalog(movieDocs)
	sims, err := catalog.NewMatrix(rows, cat.Len())
	if err != nil {
		log.Fatalf("[startup] matriz inconsistente con el catálogo: %v", err)
	}
	log.Printf("[startup] catálogo cargado: %d películas, matriz %dx%d", cat.Len(), sims.Size(), sims.Size())

	// services
	enricher := tmdb.NewClient(cfg.TMDBAPIKey)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	recSvc := service.NewRecommendService(cat, sims, enricher, recRepo)
	filterSvc := service.NewFilterService(cat, enricher)
	maintSvc := service.NewMaintenanceService(cat, sims, movieRepo, simRepo)
	pdfBuilder := report.NewBuilder()

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(cat, enricher)
	recH := handler.NewRecommendHandler(recSvc, pdfBuilder)
	filterH := handler.NewFilterHandler(filterSvc, pdfBuilder)
	maintH := handler.NewMaintenanceHandler(maintSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Catálogo
	r.Get("/movies/titles", movieH.Titles)
	r.Get("/movies/filter", filterH.FilterMovies)
	r.Get("/movies/filter/pdf", filterH.FilterMoviesPDF)
	r.Get("/movies/{id}", movieH.GetMovie)

	// Recomendaciones
	r.Get("/recommendations", recH.GetRecommendations)
	r.Get("/recommendations/pdf", recH.GetRecommendationsPDF)

	// WebSocket con progreso
	r.Get("/ws/recommendations", recH.GetRecommendationsWS)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)
		r.Use(handler.AdminOnly())

		// --- mantenimiento: estado del catálogo y caches ---
		handler.MountMaintenanceRoutes(r, maintH)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
