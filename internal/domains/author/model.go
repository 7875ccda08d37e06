package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Author entity
type Author struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthDate time.Time `json:"birth_date"`
}

// FullName trả về "FirstName LastName"
func (a Author) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	return a.FirstName + " " + a.LastName
}

// AuthorDTO - view object trả về cho client
type AuthorDTO struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	BirthDate  time.Time `json:"birth_date"`
	FullName   string    `json:"full_name"`
	BooksCount int       `json:"books_count"`
}

// ToDTO map entity sang DTO
func (a Author) ToDTO(booksCount int) AuthorDTO {
	return AuthorDTO{
		ID:         a.ID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		BirthDate:  a.BirthDate,
		FullName:   a.FullName(),
		BooksCount: booksCount,
	}
}

// CreateUpdateAuthorRequest - request body cho create/update
type CreateUpdateAuthorRequest struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthDate time.Time `json:"birth_date"`
}

func (r CreateUpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.BirthDate, validation.Required),
	)
}
