package models

import "time"

// Recommendation es el historial que se guarda en Mongo cada vez que
// se sirve una recomendación (best effort, no bloquea la respuesta).
type Recommendation struct {
	ID        string      `bson:"_id,omitempty" json:"id"`
	Title     string      `bson:"title"         json:"title"`
	K         int         `bson:"k"             json:"k"`
	Items     []MovieCard `bson:"items"         json:"items"`
	CreatedAt time.Time   `bson:"createdAt"     json:"createdAt"`
}
