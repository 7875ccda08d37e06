package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/response"
)

type UserHandler struct {
	service user.ServiceInterface
}

// NewUserHandler - Constructor
func NewUserHandler(service user.ServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// Register godoc
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	dto, err := h.service.Register(c.Request.Context(), req)
	if user.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", dto)
}

// Login godoc
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if user.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}

// Refresh godoc
// POST /api/v1/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if user.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed successfully", tokens)
}

// GetProfile godoc
// GET /api/v1/auth/me (yêu cầu auth middleware)
func (h *UserHandler) GetProfile(c *gin.Context) {
	rawID, ok := c.Get("user_id")
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized", "Missing authentication context")
		return
	}

	id, err := uuid.Parse(rawID.(string))
	if err != nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized", "Invalid authentication context")
		return
	}

	dto, err := h.service.GetProfile(c.Request.Context(), id)
	if user.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved successfully", dto)
}
