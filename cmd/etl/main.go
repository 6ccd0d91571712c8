// cmd/etl carga los dos blobs serializados del sistema (el catálogo y
// la matriz de similitud precalculada) en Mongo, para que cmd/api los
// levante al arrancar. Son los equivalentes JSON de los dumps binarios
// que produce el pipeline que calcula la matriz.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cinerec/internal/config"
	"cinerec/internal/db"
	"cinerec/internal/models"
	"cinerec/internal/repository"
)

type movieEntry struct {
	MovieID int    `json:"movieId"`
	Title   string `json:"title"`
}

func main() {
	moviesPath := flag.String("movies", "movie_list.json", "ruta al dump del catálogo (array ordenado de {movieId,title})")
	simsPath := flag.String("similarity", "similarity.json", "ruta al dump de la matriz (array de filas)")
	flag.Parse()

	cfg := config.Load()
	db.InitMongo(cfg)

	entries, err := loadMovies(*moviesPath)
	if err != nil {
		log.Fatalf("[etl] error leyendo %s: %v", *moviesPath, err)
	}

	rows, err := loadMatrix(*simsPath)
	if err != nil {
		log.Fatalf("[etl] error leyendo %s: %v", *simsPath, err)
	}

	// La matriz tiene que ser cuadrada y del tamaño del catálogo;
	// si no, mejor fallar acá que servir lookups desalineados.
	if len(rows) != len(entries) {
		log.Fatalf("[etl] matriz de %d filas no calza con catálogo de %d películas", len(rows), len(entries))
	}
	for i, row := range rows {
		if len(row) != len(entries) {
			log.Fatalf("[etl] fila %d tiene %d columnas, esperaba %d", i, len(row), len(entries))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	movieRepo := repository.NewMovieRepository()
	simRepo := repository.NewSimilarityRepository()

	start := time.Now()

	for pos, e := range entries {
		doc := &models.MovieDoc{MovieID: e.MovieID, Pos: pos, Title: e.Title}
		if err := movieRepo.Upsert(ctx, doc); err != nil {
			log.Fatalf("[etl] error upsert película pos=%d: %v", pos, err)
		}
	}
	log.Printf("[etl] %d películas cargadas en %s", len(entries), time.Since(start).Round(time.Millisecond))

	start = time.Now()
	for pos, row := range rows {
		doc := &models.SimilarityRowDoc{Pos: pos, Scores: row}
		if err := simRepo.UpsertRow(ctx, doc); err != nil {
			log.Fatalf("[etl] error upsert fila pos=%d: %v", pos, err)
		}
		if (pos+1)%500 == 0 {
			log.Printf("[etl] %d/%d filas de similitud...", pos+1, len(rows))
		}
	}
	log.Printf("[etl] %d filas de similitud cargadas en %s", len(rows), time.Since(start).Round(time.Millisecond))

	log.Println("[etl] listo ✅")
}

func loadMovies(path string) ([]movieEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []movieEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("catálogo vacío")
	}
	return entries, nil
}

func loadMatrix(path string) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("matriz vacía")
	}
	return rows, nil
}
