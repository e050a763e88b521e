package ranking

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

// PopularBooks handles GET /rankings/books?limit=N.
func (h *HTTPHandler) PopularBooks(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r)

	summaries, err := h.service.PopularBooks(r.Context(), limit)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, summaries, nil)
}

// Contributors handles GET /rankings/contributors?limit=N.
func (h *HTTPHandler) Contributors(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r)

	contributors, err := h.service.Contributors(r.Context(), limit)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, contributors, nil)
}

func parseLimit(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 0 || limit > 50 {
		limit = 0
	}
	return limit
}
