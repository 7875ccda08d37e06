package genre

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Genre entity - integer ids, seeded với một bộ cố định khi startup
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreDTO - view object trả về cho client
type GenreDTO struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	BooksCount int    `json:"books_count"`
}

// CreateUpdateGenreRequest - request body cho create/update
type CreateUpdateGenreRequest struct {
	Name string `json:"name"`
}

func (r CreateUpdateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 50)),
	)
}
