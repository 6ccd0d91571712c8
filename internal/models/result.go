package models

// MovieCard es el resultado enriquecido que se muestra al usuario
// (y que va al PDF). Rating se mantiene como string porque TMDB puede
// no tenerlo y en ese caso usamos el sentinel "unknown".
type MovieCard struct {
	Title   string `json:"title"`
	Poster  string `json:"poster"`
	Genres  string `json:"genres"`
	Rating  string `json:"rating"`
	Cast    string `json:"cast"`
	Trailer string `json:"trailer"`
}
