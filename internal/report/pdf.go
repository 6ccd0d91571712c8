// Package report arma el PDF descargable con los resultados
// enriquecidos: un título centrado y un bloque por película con su
// poster en miniatura y los campos de texto.
package report

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"cinerec/internal/models"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"
)

const (
	thumbWidth  = 80
	thumbHeight = 120
)

type Builder struct {
	http *http.Client
}

func NewBuilder() *Builder {
	return &Builder{
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// BuildPDF renderiza el documento. Si el poster de una entrada no se
// puede bajar o decodificar, esa entrada sale sin imagen pero con todo
// su texto: una imagen rota no frustra el export completo.
func (b *Builder) BuildPDF(ctx context.Context, results []models.MovieCard) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(190, 10, "Movie Recommendations", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	for i, movie := range results {
		if thumb, err := b.fetchThumbnail(ctx, movie.Poster); err != nil {
			log.Printf("[report] no se pudo cargar imagen %q: %v", movie.Poster, err)
		} else {
			name := fmt.Sprintf("poster-%d", i)
			opts := fpdf.ImageOptions{ImageType: "JPG"}
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(thumb))
			pdf.ImageOptions(name, 10, pdf.GetY(), 40, 0, false, opts, 0, "")
		}

		pdf.SetXY(55, pdf.GetY())
		pdf.MultiCell(0, 10, fmt.Sprintf(
			"Title: %s\nGenres: %s\nRating: %s\nCast: %s\nTrailer: %s",
			movie.Title, movie.Genres, movie.Rating, movie.Cast, movie.Trailer,
		), "", "L", false)
		pdf.Ln(10)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// fetchThumbnail baja el poster y lo reduce al tamaño fijo de
// miniatura, re-encodeado como JPEG para fpdf.
func (b *Builder) fetchThumbnail(ctx context.Context, posterURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, posterURL, nil)
	if err != nil {
		return nil, err
	}

	res, err := b.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", res.StatusCode)
	}

	img, err := imaging.Decode(res.Body)
	if err != nil {
		return nil, err
	}
	thumb := imaging.Resize(img, thumbWidth, thumbHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
