package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
)

type authorService struct {
	repo author.RepositoryInterface
}

// NewService - Constructor with DI
func NewService(repo author.RepositoryInterface) author.ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) GetAll(ctx context.Context) ([]author.AuthorDTO, error) {
	authors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]author.AuthorDTO, len(authors))
	for i, a := range authors {
		count, err := s.repo.CountBooks(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		dtos[i] = a.ToDTO(count)
	}
	return dtos, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.AuthorDTO, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CountBooks(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := a.ToDTO(count)
	return &dto, nil
}

func (s *authorService) Create(ctx context.Context, req author.CreateUpdateAuthorRequest) (*author.AuthorDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Manual-creation dedup: first name + last name + birth date.
	// (Khác với remote-import path, path đó chỉ so sánh first+last.)
	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range existing {
		if strings.EqualFold(a.FirstName, req.FirstName) &&
			strings.EqualFold(a.LastName, req.LastName) &&
			a.BirthDate.Equal(req.BirthDate) {
			return nil, author.ErrAuthorAlreadyExists
		}
	}

	a := &author.Author{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
	}
	if err := s.repo.Add(ctx, a); err != nil {
		return nil, err
	}

	dto := a.ToDTO(0)
	return &dto, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req author.CreateUpdateAuthorRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.repo.Update(ctx, &author.Author{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
	})
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountBooks(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return author.ErrAuthorHasBooks
	}

	return s.repo.Delete(ctx, id)
}
