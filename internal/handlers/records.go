package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/emogo-app/emogo-backend/internal/models"
)

// SubmitRecordsResponse is returned after a successful batch insert.
type SubmitRecordsResponse struct {
	Inserted int    `json:"inserted"`
	Message  string `json:"message"`
}

// SubmitRecords handles POST /records. The batch is validated in full before
// anything is stored; every record is stamped with the batch's exportDate and
// written in a single InsertMany call.
func (h *Handler) SubmitRecords(w http.ResponseWriter, r *http.Request) {
	var batch models.ExportBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: decodeErrorMessage(err)})
		return
	}

	if err := batch.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: validationErrorMessage(err)})
		return
	}

	if len(batch.Records) == 0 {
		writeJSON(w, http.StatusOK, SubmitRecordsResponse{
			Inserted: 0,
			Message:  "No records to insert",
		})
		return
	}

	docs := make([]models.StoredRecord, 0, len(batch.Records))
	for _, rec := range batch.Records {
		docs = append(docs, rec.Stored(*batch.ExportDate))
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	inserted, err := h.Store.InsertMany(ctx, docs)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Int("records", len(docs)).Msg("failed to insert records")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	zerolog.Ctx(r.Context()).Info().Int("inserted", inserted).Msg("records stored")
	writeJSON(w, http.StatusOK, SubmitRecordsResponse{
		Inserted: inserted,
		Message:  fmt.Sprintf("Successfully inserted %d record(s)", inserted),
	})
}

// decodeErrorMessage names the offending field for JSON type mismatches so
// the mobile client can tell which value it sent wrong.
func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("invalid request body: field %q expects %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
	}
	return "invalid request body: " + err.Error()
}

// validationErrorMessage reports the first failing field path and constraint.
func validationErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("validation failed: %s violates %q", fe.Namespace(), fe.Tag())
	}
	return "validation failed: " + err.Error()
}
