package quote

import (
	"encoding/json"
	"errors"
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

type quoteReq struct {
	Content    string `json:"content" validate:"required,max=2000"`
	BookTitle  string `json:"book_title" validate:"max=200"`
	Author     string `json:"author" validate:"max=100"`
	PageNumber *int   `json:"page_number" validate:"omitempty,gte=1"`
}

// Create handles POST /quotes.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req quoteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	q, err := h.service.Create(r.Context(), userID, req.Content, req.BookTitle, req.Author, req.PageNumber)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, q)
}

// List handles GET /quotes with optional mine=true, q= and pagination.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := Query{
		Search: r.URL.Query().Get("q"),
	}
	if r.URL.Query().Get("mine") == "true" {
		userID := httpx.UserIDFrom(r)
		if userID == "" {
			httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
			return
		}
		query.UserID = userID
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	query.Limit = pageSize
	query.Offset = (page - 1) * pageSize

	quotes, total, err := h.service.List(r.Context(), query)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, quotes, map[string]interface{}{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// Get handles GET /quotes/{id}.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := quoteID(w, r)
	if !ok {
		return
	}

	q, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondQuoteErr(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, q, nil)
}

// Update handles PATCH /quotes/{id}.
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	id, ok := quoteID(w, r)
	if !ok {
		return
	}

	var req quoteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	q, err := h.service.Update(r.Context(), userID, id, req.Content, req.BookTitle, req.Author, req.PageNumber)
	if err != nil {
		respondQuoteErr(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, q, nil)
}

// Delete handles DELETE /quotes/{id}.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	id, ok := quoteID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondQuoteErr(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// Like handles POST /quotes/{id}/like.
func (h *HTTPHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	id, ok := quoteID(w, r)
	if !ok {
		return
	}

	if err := h.service.Like(r.Context(), userID, id); err != nil {
		respondQuoteErr(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// Unlike handles DELETE /quotes/{id}/like.
func (h *HTTPHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	id, ok := quoteID(w, r)
	if !ok {
		return
	}

	if err := h.service.Unlike(r.Context(), userID, id); err != nil {
		respondQuoteErr(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func quoteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid quote id", nil)
		return 0, false
	}
	return id, true
}

func respondQuoteErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Quote not found", nil)
	case errors.Is(err, ErrForbidden):
		httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Quote does not belong to user", nil)
	case errors.Is(err, ErrAlreadyLiked):
		httpx.JSONError(w, r, http.StatusConflict, "ALREADY_LIKED", "Quote already liked", nil)
	case errors.Is(err, ErrNotLiked):
		httpx.JSONError(w, r, http.StatusConflict, "NOT_LIKED", "Quote not liked", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
