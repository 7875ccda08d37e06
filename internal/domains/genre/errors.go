package genre

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/shared/response"
)

var (
	ErrGenreNotFound      = errors.New("genre not found")
	ErrGenreAlreadyExists = errors.New("genre already exists")
	ErrGenreAssigned      = errors.New("genre is assigned to books and cannot be deleted")
)

var genreErrorMap = map[error]struct {
	Status  int
	Title   string
	Message string
}{
	ErrGenreNotFound: {
		Status:  http.StatusNotFound,
		Title:   "Genre not found",
		Message: "The specified genre does not exist",
	},
	ErrGenreAlreadyExists: {
		Status:  http.StatusConflict,
		Title:   "Genre already exists",
		Message: "A genre with this name already exists",
	},
	ErrGenreAssigned: {
		Status:  http.StatusConflict,
		Title:   "Genre in use",
		Message: "Remove the genre from all books before deleting it",
	},
}

// HandleError map domain error sang HTTP response. Trả về true nếu err != nil.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if cfg, ok := genreErrorMap[err]; ok {
		response.ErrorResponse(c, cfg.Status, cfg.Title, cfg.Message)
		return true
	}

	log.Error().Err(err).Msg("[GenreHandler] Unexpected error")
	response.ErrorResponse(c, http.StatusInternalServerError, "Internal server error", "Internal server error")
	return true
}
