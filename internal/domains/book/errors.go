package book

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/shared/response"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrISBNAlreadyExists = errors.New("ISBN already exists")
	ErrBookAlreadyExists = errors.New("book with same title and author already exists")
	ErrAuthorNotFound    = errors.New("author not found")
	ErrInvalidGenre      = errors.New("one or more genres do not exist")
)

var bookErrorMap = map[error]struct {
	Status  int
	Title   string
	Message string
}{
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Title:   "Book not found",
		Message: "The specified book does not exist",
	},
	ErrISBNAlreadyExists: {
		Status:  http.StatusConflict,
		Title:   "ISBN already exists",
		Message: "This ISBN is already registered in the system",
	},
	ErrBookAlreadyExists: {
		Status:  http.StatusConflict,
		Title:   "Book already exists",
		Message: "A book with this title by the same author already exists",
	},
	ErrAuthorNotFound: {
		Status:  http.StatusBadRequest,
		Title:   "Author not found",
		Message: "The specified author does not exist",
	},
	ErrInvalidGenre: {
		Status:  http.StatusBadRequest,
		Title:   "Genre not found",
		Message: "One or more of the specified genres do not exist",
	},
}

// HandleError map domain error sang HTTP response. Trả về true nếu err != nil.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if cfg, ok := bookErrorMap[err]; ok {
		response.ErrorResponse(c, cfg.Status, cfg.Title, cfg.Message)
		return true
	}

	log.Error().Err(err).Msg("[BookHandler] Unexpected error")
	response.ErrorResponse(c, http.StatusInternalServerError, "Internal server error", "Internal server error")
	return true
}
