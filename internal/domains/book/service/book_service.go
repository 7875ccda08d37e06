package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/pkg/cache"
)

const (
	cacheKeyAllBooks = "books:all"
	cachePrefixBooks = "books:"
	cacheTTL         = 5 * time.Minute
)

// defaultGenreID - genre "Unknown" được seed đầu tiên
const defaultGenreID = 1

type bookService struct {
	repo       book.RepositoryInterface
	authorRepo author.RepositoryInterface
	cache      cache.Cache
}

// NewBookService - Constructor
func NewBookService(repo book.RepositoryInterface, authorRepo author.RepositoryInterface, c cache.Cache) book.ServiceInterface {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
		cache:      c,
	}
}

func (s *bookService) GetAll(ctx context.Context) ([]book.BookDTO, error) {
	var cached []book.BookDTO
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKeyAllBooks, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := toDTOs(rows)
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyAllBooks, dtos, cacheTTL); err != nil {
			log.Warn().Err(err).Msg("[BookService] Failed to cache book list")
		}
	}
	return dtos, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.BookDTO, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := row.ToDTO()
	return &dto, nil
}

func (s *bookService) GetFiltered(ctx context.Context, filter book.BookFilter) ([]book.BookDTO, error) {
	rows, err := s.repo.GetFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

func (s *bookService) GetByGenre(ctx context.Context, genreID int) ([]book.BookDTO, error) {
	rows, err := s.repo.GetByGenre(ctx, genreID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

func (s *bookService) Create(ctx context.Context, req book.CreateBookRequest) (*book.BookDTO, error) {
	if _, err := s.authorRepo.GetByID(ctx, req.AuthorID); err != nil {
		return nil, book.ErrAuthorNotFound
	}

	exists, err := s.repo.ExistsByISBN(ctx, req.ISBN)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, book.ErrISBNAlreadyExists
	}

	exists, err = s.repo.ExistsByTitle(ctx, req.Title, req.AuthorID, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, book.ErrBookAlreadyExists
	}

	b := &book.Book{
		ID:          uuid.New(),
		Title:       req.Title,
		ISBN:        req.ISBN,
		PublishYear: req.PublishYear,
		Price:       req.Price,
		AuthorID:    req.AuthorID,
	}
	if err := s.repo.Add(ctx, b); err != nil {
		return nil, err
	}

	// Book nào cũng phải có ít nhất một genre
	genreIDs := req.GenreIDs
	if len(genreIDs) == 0 {
		genreIDs = []int{defaultGenreID}
	}
	if err := s.repo.AssignGenres(ctx, b.ID, genreIDs); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	row, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	dto := row.ToDTO()
	return &dto, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req book.UpdateBookRequest) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.authorRepo.GetByID(ctx, req.AuthorID); err != nil {
		return book.ErrAuthorNotFound
	}

	exists, err := s.repo.ExistsByTitle(ctx, req.Title, req.AuthorID, &id)
	if err != nil {
		return err
	}
	if exists {
		return book.ErrBookAlreadyExists
	}

	b := &book.Book{
		ID:          id,
		Title:       req.Title,
		ISBN:        existing.ISBN,
		PublishYear: req.PublishYear,
		Price:       req.Price,
		AuthorID:    req.AuthorID,
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return err
	}

	if len(req.GenreIDs) > 0 {
		if err := s.repo.AssignGenres(ctx, id, req.GenreIDs); err != nil {
			return err
		}
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *bookService) AssignGenres(ctx context.Context, bookID uuid.UUID, genreIDs []int) error {
	if _, err := s.repo.GetByID(ctx, bookID); err != nil {
		return err
	}
	if len(genreIDs) == 0 {
		genreIDs = []int{defaultGenreID}
	}
	if err := s.repo.AssignGenres(ctx, bookID, genreIDs); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *bookService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, cachePrefixBooks); err != nil {
		log.Warn().Err(err).Msg("[BookService] Failed to invalidate book cache")
	}
}

func toDTOs(rows []book.BookWithDetails) []book.BookDTO {
	dtos := make([]book.BookDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, row.ToDTO())
	}
	return dtos
}
