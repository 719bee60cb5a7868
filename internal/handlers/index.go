package handlers

import "net/http"

// IndexResponse lists the available routes. Static text, not data-dependent.
type IndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Index handles GET /.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, IndexResponse{
		Message: "Emogo backend is running",
		Endpoints: map[string]string{
			"POST /records":   "Submit emotion records from the app",
			"GET /export":     "View all records as HTML table",
			"GET /export/csv": "Download all records as CSV file",
		},
	})
}
