package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/emogo-app/emogo-backend/internal/handlers"
	"github.com/emogo-app/emogo-backend/internal/models"
	"github.com/emogo-app/emogo-backend/internal/routes"
)

type emptyStore struct{}

func (emptyStore) InsertMany(ctx context.Context, docs []models.StoredRecord) (int, error) {
	return len(docs), nil
}

func (emptyStore) FindAllSortedByTimestamp(ctx context.Context) ([]models.StoredRecord, error) {
	return nil, nil
}

func TestSetupRoutes(t *testing.T) {
	r := chi.NewRouter()
	routes.SetupRoutes(r, handlers.New(emptyStore{}))

	cases := []struct {
		method, path string
		wantStatus   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/export", http.StatusOK},
		{http.MethodGet, "/export/csv", http.StatusOK},
		{http.MethodGet, "/records", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		require.Equalf(t, tc.wantStatus, rr.Code, "%s %s", tc.method, tc.path)
	}
}
