package export

import (
	"net/http"

	"quotegarden/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// ByBook handles GET /export/books?title=...&title=...&format=txt|csv.
// Repeated title params narrow the export to those books; no titles exports
// the whole collection.
func (h *HTTPHandler) ByBook(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	titles := r.URL.Query()["title"]

	switch r.URL.Query().Get("format") {
	case "csv":
		data, err := h.service.CSV(r.Context(), userID, titles)
		if err != nil {
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="quotes.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	case "", "txt":
		text, err := h.service.Text(r.Context(), userID, titles)
		if err != nil {
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="quotes.txt"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(text))
	default:
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Unknown export format", nil)
	}
}
