package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	service book.ServiceInterface
}

// NewBookHandler - Constructor
func NewBookHandler(service book.ServiceInterface) *BookHandler {
	return &BookHandler{service: service}
}

// GetBooks godoc
// GET /api/v1/books
// Hỗ trợ filter qua query params: search, author_id, genre_id, sort_by, sort_order
func (h *BookHandler) GetBooks(c *gin.Context) {
	filter, hasFilter, err := parseBookFilter(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}

	var books []book.BookDTO
	if hasFilter {
		books, err = h.service.GetFiltered(c.Request.Context(), filter)
	} else {
		books, err = h.service.GetAll(c.Request.Context())
	}
	if book.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", books)
}

// GetBook godoc
// GET /api/v1/books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid book ID", "Book ID must be a valid UUID")
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if book.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book retrieved successfully", dto)
}

// GetBooksByGenre godoc
// GET /api/v1/books/genre/:genreId
func (h *BookHandler) GetBooksByGenre(c *gin.Context) {
	genreID, err := strconv.Atoi(c.Param("genreId"))
	if err != nil || genreID <= 0 {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid genre ID", "Genre ID must be a positive integer")
		return
	}

	books, err := h.service.GetByGenre(c.Request.Context(), genreID)
	if book.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", books)
}

// CreateBook godoc
// POST /api/v1/books
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	dto, err := h.service.Create(c.Request.Context(), req)
	if book.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", dto)
}

// UpdateBook godoc
// PUT /api/v1/books/:id
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid book ID", "Book ID must be a valid UUID")
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	if book.HandleError(c, h.service.Update(c.Request.Context(), id, req)) {
		return
	}

	response.Success(c, http.StatusOK, "Book updated successfully", nil)
}

// DeleteBook godoc
// DELETE /api/v1/books/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid book ID", "Book ID must be a valid UUID")
		return
	}

	if book.HandleError(c, h.service.Delete(c.Request.Context(), id)) {
		return
	}

	response.Success(c, http.StatusOK, "Book deleted successfully", nil)
}

// AssignGenres godoc
// PUT /api/v1/books/:id/genres
func (h *BookHandler) AssignGenres(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid book ID", "Book ID must be a valid UUID")
		return
	}

	var req struct {
		GenreIDs []int `json:"genre_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if book.HandleError(c, h.service.AssignGenres(c.Request.Context(), id, req.GenreIDs)) {
		return
	}

	response.Success(c, http.StatusOK, "Genres assigned successfully", nil)
}

func parseBookFilter(c *gin.Context) (book.BookFilter, bool, error) {
	filter := book.BookFilter{
		SearchTitle: c.Query("search"),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
	}
	hasFilter := filter.SearchTitle != "" || filter.SortBy != "" || filter.SortOrder != ""

	if raw := c.Query("author_id"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			return filter, false, err
		}
		filter.AuthorID = &authorID
		hasFilter = true
	}
	if raw := c.Query("genre_id"); raw != "" {
		genreID, err := strconv.Atoi(raw)
		if err != nil {
			return filter, false, err
		}
		filter.GenreID = &genreID
		hasFilter = true
	}
	return filter, hasFilter, nil
}
