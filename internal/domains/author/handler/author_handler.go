package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/response"
)

// Handler - HTTP handler cho author domain
type Handler struct {
	service author.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service author.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetAll - GET /v1/authors
func (h *Handler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if author.HandleError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, "Authors retrieved successfully", authors)
}

// GetByID - GET /v1/authors/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request", "invalid author id")
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if author.HandleError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, "Author retrieved successfully", dto)
}

// Create - POST /v1/authors
func (h *Handler) Create(c *gin.Context) {
	var req author.CreateUpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	dto, err := h.service.Create(c.Request.Context(), req)
	if err == author.ErrAuthorAlreadyExists {
		author.HandleError(c, err)
		return
	}
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Author created successfully", dto)
}

// Update - PUT /v1/authors/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request", "invalid author id")
		return
	}

	var req author.CreateUpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); author.HandleError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, "Author updated successfully", nil)
}

// Delete - DELETE /v1/authors/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request", "invalid author id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); author.HandleError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, "Author deleted successfully", nil)
}
