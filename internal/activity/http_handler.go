package activity

import (
	"net/http"
	"strconv"

	"quotegarden/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Recent handles GET /activity/recent?limit=N.
func (h *HTTPHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 0 || limit > 50 {
		limit = 0
	}

	quotes, err := h.service.RecentQuotes(r.Context(), limit)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	books, err := h.service.RecentBooks(r.Context(), limit)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"quotes": quotes,
		"books":  books,
	}, nil)
}
