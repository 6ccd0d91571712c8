package models

// SimilarityRowDoc guarda una fila completa de la matriz de similitud
// precalculada: scores[j] = similitud entre la película en `pos` y la
// película en posición j del catálogo.
type SimilarityRowDoc struct {
	Pos    int       `json:"pos" bson:"pos"`
	Scores []float64 `json:"scores" bson:"scores"`
}
