package models

// MovieDoc es una entrada del catálogo ordenado. `pos` es la posición
// de la película dentro del catálogo y alinea con la fila/columna de la
// matriz de similitud.
type MovieDoc struct {
	MovieID int    `json:"movieId" bson:"movieId"`
	Pos     int    `json:"pos" bson:"pos"`
	Title   string `json:"title" bson:"title"`
}
