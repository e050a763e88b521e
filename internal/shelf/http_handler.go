package shelf

import (
	"context"
	"errors"
	"net/http"

	"quotegarden/internal/httpx"
	"quotegarden/internal/platform/booksearch"
)

// MetadataSearcher is the external book-metadata autocomplete source.
type MetadataSearcher interface {
	Search(ctx context.Context, query string, size int) ([]booksearch.Book, error)
}

type HTTPHandler struct {
	service  *Service
	searcher MetadataSearcher
}

func NewHTTPHandler(service *Service, searcher MetadataSearcher) *HTTPHandler {
	return &HTTPHandler{service: service, searcher: searcher}
}

// Books handles GET /books?mine=true.
func (h *HTTPHandler) Books(w http.ResponseWriter, r *http.Request) {
	userID := ""
	if r.URL.Query().Get("mine") == "true" {
		userID = httpx.UserIDFrom(r)
		if userID == "" {
			httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
			return
		}
	}

	summaries, err := h.service.Books(r.Context(), userID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, summaries, nil)
}

// Book handles GET /books/{key}. The key is the group key from the book
// list; Hangul keys arrive URL-encoded and are decoded by the mux.
func (h *HTTPHandler) Book(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book key", nil)
		return
	}

	userID := ""
	if r.URL.Query().Get("mine") == "true" {
		userID = httpx.UserIDFrom(r)
		if userID == "" {
			httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
			return
		}
	}

	detail, err := h.service.Book(r.Context(), userID, key)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, detail, nil)
}

// Search handles GET /books/search?q= for title autocomplete, backed by the
// external metadata service.
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Missing query", nil)
		return
	}

	books, err := h.searcher.Search(r.Context(), query, 10)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "Book search unavailable", nil)
		return
	}
	httpx.JSONSuccess(w, r, books, nil)
}
