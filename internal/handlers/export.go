package handlers

import (
	"bytes"
	"context"
	"embed"
	"encoding/csv"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/emogo-app/emogo-backend/internal/models"
)

//go:embed templates/export.html
var templateFS embed.FS

var exportTemplate = template.Must(template.ParseFS(templateFS, "templates/export.html"))

// csvColumns is the fixed CSV column order; it must not change because the
// download is consumed by spreadsheets users already built around it.
var csvColumns = []string{
	"id", "sentiment", "sentimentValue", "latitude", "longitude",
	"timestamp", "exportDate", "videoPath",
}

// exportRow is one stored record normalized for display: date-times as
// RFC 3339 text, absent coordinates as empty strings, no internal _id.
type exportRow struct {
	ID             string
	Sentiment      string
	SentimentValue string
	Latitude       string
	Longitude      string
	Timestamp      string
	ExportDate     string
	VideoPath      string
}

func normalize(rec models.StoredRecord) exportRow {
	row := exportRow{
		ID:             strconv.Itoa(rec.ID),
		Sentiment:      rec.Sentiment,
		SentimentValue: strconv.Itoa(rec.SentimentValue),
		VideoPath:      rec.VideoPath,
	}
	if rec.Latitude != nil {
		row.Latitude = strconv.FormatFloat(*rec.Latitude, 'f', -1, 64)
	}
	if rec.Longitude != nil {
		row.Longitude = strconv.FormatFloat(*rec.Longitude, 'f', -1, 64)
	}
	if !rec.Timestamp.IsZero() {
		row.Timestamp = rec.Timestamp.Format(time.RFC3339Nano)
	}
	if !rec.ExportDate.IsZero() {
		row.ExportDate = rec.ExportDate.Format(time.RFC3339Nano)
	}
	return row
}

func (h *Handler) fetchRows(ctx context.Context) ([]exportRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	records, err := h.Store.FindAllSortedByTimestamp(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]exportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, normalize(rec))
	}
	return rows, nil
}

// ExportHTML handles GET /export: all stored records as a table, oldest first.
func (h *Handler) ExportHTML(w http.ResponseWriter, r *http.Request) {
	rows, err := h.fetchRows(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to fetch records for HTML export")
		writeHTMLError(w, err)
		return
	}

	// Render to a buffer first so a template failure can still produce a 500.
	var buf bytes.Buffer
	data := map[string]interface{}{
		"Records": rows,
		"Count":   len(rows),
	}
	if err := exportTemplate.Execute(&buf, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render export template")
		writeHTMLError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// ExportCSV handles GET /export/csv: all stored records as a downloadable CSV
// attachment with a header row, oldest first.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.fetchRows(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to fetch records for CSV export")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.Write(csvColumns)
	for _, row := range rows {
		cw.Write([]string{
			row.ID, row.Sentiment, row.SentimentValue, row.Latitude,
			row.Longitude, row.Timestamp, row.ExportDate, row.VideoPath,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write CSV")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=emogo_records.csv")
	w.Write(buf.Bytes())
}

func writeHTMLError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("<h1>Error</h1><p>" + template.HTMLEscapeString(err.Error()) + "</p>"))
}
