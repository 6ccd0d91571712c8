package catalog

import (
	"testing"

	"cinerec/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog([]models.MovieDoc{
		{MovieID: 1, Title: "A"},
		{MovieID: 2, Title: "B"},
		{MovieID: 3, Title: "C"},
		{MovieID: 4, Title: "B"}, // título duplicado a propósito
	})
}

func TestFindByTitle_FirstMatchWins(t *testing.T) {
	c := testCatalog()

	m, ok := c.FindByTitle("B")
	require.True(t, ok)
	assert.Equal(t, 1, m.Pos)
	assert.Equal(t, 2, m.ID)
}

func TestFindByTitle_NotFound(t *testing.T) {
	c := testCatalog()

	_, ok := c.FindByTitle("Z")
	assert.False(t, ok)
}

func TestFindByTitle_ExactMatchOnly(t *testing.T) {
	c := testCatalog()

	_, ok := c.FindByTitle("a")
	assert.False(t, ok, "el lookup de título es exacto, no case-insensitive")
}

func TestTitles_CatalogOrder(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, []string{"A", "B", "C", "B"}, c.Titles())
}

func TestNewMatrix_DimensionMismatch(t *testing.T) {
	_, err := NewMatrix([][]float64{{1, 0.5}, {0.5, 1}}, 3)
	assert.Error(t, err)

	_, err = NewMatrix([][]float64{{1, 0.5, 0.1}, {0.5, 1}, {0.1, 0, 1}}, 3)
	assert.Error(t, err, "fila con menos columnas que el catálogo")
}

func TestRankNeighbors_ExcludesSelfAndSortsDesc(t *testing.T) {
	m, err := NewMatrix([][]float64{
		{1.0, 0.8, 0.3},
		{0.8, 1.0, 0.6},
		{0.3, 0.6, 1.0},
	}, 3)
	require.NoError(t, err)

	got := m.RankNeighbors(0, 2)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Pos)
	assert.Equal(t, 0.8, got[0].Score)
	assert.Equal(t, 2, got[1].Pos)
	assert.Equal(t, 0.3, got[1].Score)
}

func TestRankNeighbors_TieBreakByLowestPos(t *testing.T) {
	m, err := NewMatrix([][]float64{
		{1.0, 0.5, 0.5, 0.9},
		{0.5, 1.0, 0.0, 0.0},
		{0.5, 0.0, 1.0, 0.0},
		{0.9, 0.0, 0.0, 1.0},
	}, 4)
	require.NoError(t, err)

	got := m.RankNeighbors(0, 3)
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].Pos, "score más alto primero")
	// con score empatado en 0.5, gana la posición más baja
	assert.Equal(t, 1, got[1].Pos)
	assert.Equal(t, 2, got[2].Pos)
}

func TestRankNeighbors_KLargerThanCatalog(t *testing.T) {
	m, err := NewMatrix([][]float64{
		{1.0, 0.2},
		{0.2, 1.0},
	}, 2)
	require.NoError(t, err)

	got := m.RankNeighbors(0, 10)
	assert.Len(t, got, 1)
}
