package services

import (
	"context"
	"log"

	"github.com/mrlokans/readingclub/internal/dto"
	"github.com/mrlokans/readingclub/internal/entities"
)

const authorKind = "author"

// AuthorService orchestrates author persistence and conversion to dto.Author.
type AuthorService struct {
	authors AuthorRepository
}

func NewAuthorService(authors AuthorRepository) *AuthorService {
	return &AuthorService{authors: authors}
}

func (s *AuthorService) GetAuthorByID(ctx context.Context, id int64) (*entities.AuthorWithBooks, error) {
	author, found, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound(authorKind, id)
	}
	return s.hydrate(ctx, author)
}

func (s *AuthorService) GetByID(ctx context.Context, id int64) (dto.Author, error) {
	author, err := s.GetAuthorByID(ctx, id)
	if err != nil {
		return dto.Author{}, err
	}
	return authorToDTO(*author), nil
}

func (s *AuthorService) GetAll(ctx context.Context) ([]dto.Author, error) {
	authors, err := s.authors.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.Author, 0, len(authors))
	for _, a := range authors {
		author, err := s.hydrate(ctx, a)
		if err != nil {
			return nil, err
		}
		result = append(result, authorToDTO(*author))
	}
	return result, nil
}

func (s *AuthorService) Save(ctx context.Context, in dto.Author) (dto.Author, error) {
	if err := dto.ValidateNew(in); err != nil {
		return dto.Author{}, &ValidationError{Err: err}
	}

	author := authorFromDTO(in)
	if err := s.authors.Save(ctx, &author); err != nil {
		return dto.Author{}, err
	}
	log.Printf("Saved author %d", author.ID)
	return authorToDTO(author), nil
}

// Update applies the present fields of in. Book links are not part of the
// author transfer shape and stay as they are.
func (s *AuthorService) Update(ctx context.Context, in dto.Author, id int64) (bool, error) {
	if err := dto.ValidatePatch(in); err != nil {
		return false, &ValidationError{Err: err}
	}

	author, err := s.GetAuthorByID(ctx, id)
	if err != nil {
		return false, err
	}
	if in.FullName != nil {
		author.FullName = *in.FullName
	}
	if in.PersonalInfo != nil {
		author.PersonalInfo = *in.PersonalInfo
	}
	author.Books = nil

	return s.authors.Update(ctx, author)
}

// Delete removes the author and its book links. The books stay.
func (s *AuthorService) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := s.IsContainByID(ctx, id); err != nil {
		return false, err
	}
	deleted, err := s.authors.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	log.Printf("Deleted author %d", id)
	return deleted, nil
}

func (s *AuthorService) IsContainByID(ctx context.Context, id int64) (bool, error) {
	exists, err := s.authors.ExistsByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, notFound(authorKind, id)
	}
	return true, nil
}

func (s *AuthorService) hydrate(ctx context.Context, author entities.Author) (*entities.AuthorWithBooks, error) {
	books, err := s.authors.GetBooksForAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	return &entities.AuthorWithBooks{Author: author, Books: books}, nil
}
