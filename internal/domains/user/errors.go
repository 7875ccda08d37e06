package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/shared/response"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

var userErrorMap = map[error]struct {
	Status  int
	Title   string
	Message string
}{
	ErrUserNotFound: {
		Status:  http.StatusNotFound,
		Title:   "User not found",
		Message: "The specified user does not exist",
	},
	ErrEmailAlreadyExists: {
		Status:  http.StatusConflict,
		Title:   "Email already exists",
		Message: "An account with this email already exists",
	},
	ErrInvalidCredentials: {
		Status:  http.StatusUnauthorized,
		Title:   "Invalid credentials",
		Message: "Email or password is incorrect",
	},
	ErrInvalidToken: {
		Status:  http.StatusUnauthorized,
		Title:   "Invalid token",
		Message: "The refresh token is invalid or expired",
	},
}

// HandleError map domain error sang HTTP response. Trả về true nếu err != nil.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if cfg, ok := userErrorMap[err]; ok {
		response.ErrorResponse(c, cfg.Status, cfg.Title, cfg.Message)
		return true
	}

	log.Error().Err(err).Msg("[UserHandler] Unexpected error")
	response.ErrorResponse(c, http.StatusInternalServerError, "Internal server error", "Internal server error")
	return true
}
