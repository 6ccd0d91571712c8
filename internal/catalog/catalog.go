// Package catalog mantiene el catálogo de películas y la matriz de
// similitud precalculada en memoria. Ambos se cargan una sola vez al
// arrancar y después son de solo lectura, así que no hace falta locking.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"cinerec/internal/models"
)

var ErrTitleNotFound = errors.New("title not found in catalog")

type Movie struct {
	ID    int
	Pos   int
	Title string
}

// Catalog es la colección ordenada de películas. La posición de cada
// película es su índice en el slice.
type Catalog struct {
	movies []Movie
}

// Matrix es la matriz N×N de similitudes alineada con el catálogo.
type Matrix struct {
	rows [][]float64
}

// Neighbor es una posición del catálogo con su score respecto a la
// película consultada.
type Neighbor struct {
	Pos   int
	Score float64
}

// NewCatalog arma el catálogo desde los docs cargados de Mongo.
// Se asume que vienen ordenados por pos (el repo los ordena así).
func NewCatalog(docs []models.MovieDoc) *Catalog {
	movies := make([]Movie, 0, len(docs))
	for i, d := range docs {
		movies = append(movies, Movie{
			ID:    d.MovieID,
			Pos:   i,
			Title: d.Title,
		})
	}
	return &Catalog{movies: movies}
}

func (c *Catalog) Len() int { return len(c.movies) }

// At devuelve la película en la posición pos. El caller es responsable
// de pasar una posición válida (las posiciones salen de la matriz, que
// se valida contra el tamaño del catálogo al cargar).
func (c *Catalog) At(pos int) Movie { return c.movies[pos] }

// FindByTitle busca por título exacto escaneando desde la posición 0.
// Si hay títulos duplicados gana la posición más baja: el desempate es
// explícito, no un accidente del orden de iteración.
func (c *Catalog) FindByTitle(title string) (Movie, bool) {
	for _, m := range c.movies {
		if m.Title == title {
			return m, true
		}
	}
	return Movie{}, false
}

// FindByID busca por id de catálogo. Mismo criterio que FindByTitle:
// escaneo desde 0, primera coincidencia.
func (c *Catalog) FindByID(id int) (Movie, bool) {
	for _, m := range c.movies {
		if m.ID == id {
			return m, true
		}
	}
	return Movie{}, false
}

// Titles devuelve todos los títulos en orden de catálogo (para el
// select de la UI).
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.movies))
	for i, m := range c.movies {
		out[i] = m.Title
	}
	return out
}

// NewMatrix valida que la matriz sea cuadrada y del tamaño del catálogo.
// Si las dimensiones no calzan los lookups serían basura, así que es un
// error de carga, no algo a tolerar en runtime.
func NewMatrix(rows [][]float64, catalogSize int) (*Matrix, error) {
	if len(rows) != catalogSize {
		return nil, fmt.Errorf("similarity matrix has %d rows, catalog has %d movies", len(rows), catalogSize)
	}
	for i, row := range rows {
		if len(row) != catalogSize {
			return nil, fmt.Errorf("similarity matrix row %d has %d columns, expected %d", i, len(row), catalogSize)
		}
	}
	return &Matrix{rows: rows}, nil
}

func (m *Matrix) Size() int { return len(m.rows) }

// RankNeighbors ordena la fila `pos` de mayor a menor score y devuelve
// hasta k vecinos. La propia película queda excluida siempre (su score
// consigo misma es el máximo y se colaría primera). Empates se resuelven
// por posición más baja: el sort es estable y los candidatos se enumeran
// en orden 0..N-1.
func (m *Matrix) RankNeighbors(pos, k int) []Neighbor {
	row := m.rows[pos]

	neighbors := make([]Neighbor, 0, len(row)-1)
	for j, score := range row {
		if j == pos {
			continue
		}
		neighbors = append(neighbors, Neighbor{Pos: j, Score: score})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Score > neighbors[j].Score
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}
