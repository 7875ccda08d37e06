package service

import (
	"context"
	"strings"

	"library-backend/internal/domains/genre"
)

type genreService struct {
	repo genre.RepositoryInterface
}

// NewService - Constructor with DI
func NewService(repo genre.RepositoryInterface) genre.ServiceInterface {
	return &genreService{repo: repo}
}

func (s *genreService) GetAll(ctx context.Context) ([]genre.GenreDTO, error) {
	genres, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]genre.GenreDTO, len(genres))
	for i, g := range genres {
		count, err := s.repo.CountBooks(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		dtos[i] = genre.GenreDTO{ID: g.ID, Name: g.Name, BooksCount: count}
	}
	return dtos, nil
}

func (s *genreService) GetByID(ctx context.Context, id int) (*genre.GenreDTO, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CountBooks(ctx, id)
	if err != nil {
		return nil, err
	}
	return &genre.GenreDTO{ID: g.ID, Name: g.Name, BooksCount: count}, nil
}

func (s *genreService) Create(ctx context.Context, req genre.CreateUpdateGenreRequest) (*genre.GenreDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Case-insensitive name uniqueness
	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range existing {
		if strings.EqualFold(g.Name, req.Name) {
			return nil, genre.ErrGenreAlreadyExists
		}
	}

	id, err := s.repo.Add(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return &genre.GenreDTO{ID: id, Name: req.Name, BooksCount: 0}, nil
}

func (s *genreService) Update(ctx context.Context, id int, req genre.CreateUpdateGenreRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, g := range existing {
		if g.ID != id && strings.EqualFold(g.Name, req.Name) {
			return genre.ErrGenreAlreadyExists
		}
	}

	return s.repo.Update(ctx, &genre.Genre{ID: id, Name: req.Name})
}

func (s *genreService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountBooks(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return genre.ErrGenreAssigned
	}

	return s.repo.Delete(ctx, id)
}
