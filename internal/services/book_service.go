package services

import (
	"context"
	"log"

	"github.com/mrlokans/readingclub/internal/dto"
	"github.com/mrlokans/readingclub/internal/entities"
)

const bookKind = "book"

// BookService orchestrates book persistence. Referenced readers and authors
// are checked through their own services before anything is written.
type BookService struct {
	books   BookRepository
	readers ExistenceChecker
	authors ExistenceChecker
}

func NewBookService(books BookRepository, readers, authors ExistenceChecker) *BookService {
	return &BookService{books: books, readers: readers, authors: authors}
}

func (s *BookService) GetBookByID(ctx context.Context, id int64) (*entities.BookWithAuthors, error) {
	book, found, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound(bookKind, id)
	}
	return s.hydrate(ctx, book)
}

func (s *BookService) GetByID(ctx context.Context, id int64) (dto.Book, error) {
	book, err := s.GetBookByID(ctx, id)
	if err != nil {
		return dto.Book{}, err
	}
	return bookToDTO(*book), nil
}

func (s *BookService) GetAll(ctx context.Context) ([]dto.Book, error) {
	books, err := s.books.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(ctx, books)
}

// GetAllByReaderID lists the reader's books. An unknown reader yields an
// empty list.
func (s *BookService) GetAllByReaderID(ctx context.Context, readerID int64) ([]dto.Book, error) {
	books, err := s.books.FindAllByReaderID(ctx, readerID)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(ctx, books)
}

// GetAllByAuthorID lists the author's books. An unknown author yields an
// empty list.
func (s *BookService) GetAllByAuthorID(ctx context.Context, authorID int64) ([]dto.Book, error) {
	books, err := s.books.FindAllByAuthorID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(ctx, books)
}

// Save checks that the reader and every author exist, then writes the book
// and its author links.
func (s *BookService) Save(ctx context.Context, in dto.Book) (dto.Book, error) {
	if err := dto.ValidateNew(in); err != nil {
		return dto.Book{}, &ValidationError{Err: err}
	}
	if _, err := s.readers.IsContainByID(ctx, *in.ReaderID); err != nil {
		return dto.Book{}, err
	}
	if err := s.checkAuthors(ctx, in.AuthorIDs); err != nil {
		return dto.Book{}, err
	}

	book := bookFromDTO(in)
	if err := s.books.Save(ctx, &book); err != nil {
		return dto.Book{}, err
	}
	log.Printf("Saved book %d (%d authors)", book.ID, len(book.Authors))
	return bookToDTO(book), nil
}

// Update applies the present fields of in. A non-empty AuthorIDs replaces
// the book's authors; an empty or missing one leaves them unchanged.
func (s *BookService) Update(ctx context.Context, in dto.Book, id int64) (bool, error) {
	if err := dto.ValidatePatch(in); err != nil {
		return false, &ValidationError{Err: err}
	}

	book, err := s.GetBookByID(ctx, id)
	if err != nil {
		return false, err
	}
	if in.Title != nil {
		book.Title = *in.Title
	}
	if in.InventoryNumber != nil {
		book.InventoryNumber = *in.InventoryNumber
	}
	if in.ReaderID != nil {
		if _, err := s.readers.IsContainByID(ctx, *in.ReaderID); err != nil {
			return false, err
		}
		book.ReaderID = *in.ReaderID
	}

	book.Authors = nil
	if len(in.AuthorIDs) > 0 {
		if err := s.checkAuthors(ctx, in.AuthorIDs); err != nil {
			return false, err
		}
		book.Authors = authorRefs(in.AuthorIDs)
	}

	return s.books.Update(ctx, book)
}

func (s *BookService) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := s.IsContainByID(ctx, id); err != nil {
		return false, err
	}
	deleted, err := s.books.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	log.Printf("Deleted book %d", id)
	return deleted, nil
}

func (s *BookService) IsContainByID(ctx context.Context, id int64) (bool, error) {
	exists, err := s.books.ExistsByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, notFound(bookKind, id)
	}
	return true, nil
}

func (s *BookService) checkAuthors(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		if _, err := s.authors.IsContainByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *BookService) hydrate(ctx context.Context, book entities.Book) (*entities.BookWithAuthors, error) {
	authors, err := s.books.GetAuthorsForBook(ctx, book.ID)
	if err != nil {
		return nil, err
	}
	return &entities.BookWithAuthors{Book: book, Authors: authors}, nil
}

func (s *BookService) toDTOs(ctx context.Context, books []entities.Book) ([]dto.Book, error) {
	result := make([]dto.Book, 0, len(books))
	for _, b := range books {
		book, err := s.hydrate(ctx, b)
		if err != nil {
			return nil, err
		}
		result = append(result, bookToDTO(*book))
	}
	return result, nil
}
