package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/genre"
	"library-backend/internal/shared/response"
)

// Handler - HTTP handler cho genre domain
type Handler struct {
	service genre.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service genre.ServiceInterface) *Handler {
	return &Handler{service: service}
}

func parseGenreID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request", "invalid genre id")
		return 0, false
	}
	return id, true
}

// GetAll - GET /v1/genres
func (h *Handler) GetAll(c *gin.Context) {
	genres, err := h.service.GetAll(c.Request.Context())
	if genre.HandleError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, "Genres retrieved successfully", genres)
}

// GetByID - GET /v1/genres/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseGenreID(c)
	if !ok {
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if genre.HandleError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, "Genre retrieved successfully", dto)
}

// Create - POST /v1/genres
func (h *Handler) Create(c *gin.Context) {
	var req genre.CreateUpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	dto, err := h.service.Create(c.Request.Context(), req)
	if err == genre.ErrGenreAlreadyExists {
		genre.HandleError(c, err)
		return
	}
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Genre created successfully", dto)
}

// Update - PUT /v1/genres/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseGenreID(c)
	if !ok {
		return
	}

	var req genre.CreateUpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); genre.HandleError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, "Genre updated successfully", nil)
}

// Delete - DELETE /v1/genres/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseGenreID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); genre.HandleError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, "Genre deleted successfully", nil)
}
