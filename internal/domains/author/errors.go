package author

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/shared/response"
)

var (
	ErrAuthorNotFound      = errors.New("author not found")
	ErrAuthorAlreadyExists = errors.New("author already exists")
	ErrAuthorHasBooks      = errors.New("author has books and cannot be deleted")
)

var authorErrorMap = map[error]struct {
	Status  int
	Title   string
	Message string
}{
	ErrAuthorNotFound: {
		Status:  http.StatusNotFound,
		Title:   "Author not found",
		Message: "The specified author does not exist",
	},
	ErrAuthorAlreadyExists: {
		Status:  http.StatusConflict,
		Title:   "Author already exists",
		Message: "An author with the same name and birth date already exists",
	},
	ErrAuthorHasBooks: {
		Status:  http.StatusConflict,
		Title:   "Author has books",
		Message: "Remove the author's books before deleting the author",
	},
}

// HandleError map domain error sang HTTP response. Trả về true nếu err != nil.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if cfg, ok := authorErrorMap[err]; ok {
		response.ErrorResponse(c, cfg.Status, cfg.Title, cfg.Message)
		return true
	}

	log.Error().Err(err).Msg("[AuthorHandler] Unexpected error")
	response.ErrorResponse(c, http.StatusInternalServerError, "Internal server error", "Internal server error")
	return true
}
