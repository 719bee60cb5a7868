package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/emogo-app/emogo-backend/internal/storage"
)

// Handler carries the dependencies shared by all endpoints. The store is
// injected so tests can swap in an in-memory implementation.
type Handler struct {
	Store storage.RecordStore
}

func New(store storage.RecordStore) *Handler {
	return &Handler{Store: store}
}

// ErrorResponse is the JSON error payload for the write and CSV paths.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
