package services

import (
	"context"

	"github.com/mrlokans/readingclub/internal/entities"
)

// ReaderRepository provides reader persistence.
// Implemented by database/readers.Repository.
type ReaderRepository interface {
	FindByID(ctx context.Context, id int64) (entities.Reader, bool, error)
	FindAll(ctx context.Context) ([]entities.Reader, error)
	Save(ctx context.Context, reader *entities.ReaderWithBooks) error
	Update(ctx context.Context, reader *entities.ReaderWithBooks) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetBooksForReader(ctx context.Context, readerID int64) ([]entities.Book, error)
}

// BookRepository provides book persistence.
// Implemented by database/books.Repository.
type BookRepository interface {
	FindByID(ctx context.Context, id int64) (entities.Book, bool, error)
	FindAll(ctx context.Context) ([]entities.Book, error)
	FindAllByReaderID(ctx context.Context, readerID int64) ([]entities.Book, error)
	FindAllByAuthorID(ctx context.Context, authorID int64) ([]entities.Book, error)
	Save(ctx context.Context, book *entities.BookWithAuthors) error
	Update(ctx context.Context, book *entities.BookWithAuthors) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetAuthorsForBook(ctx context.Context, bookID int64) ([]entities.Author, error)
}

// AuthorRepository provides author persistence.
// Implemented by database/authors.Repository.
type AuthorRepository interface {
	FindByID(ctx context.Context, id int64) (entities.Author, bool, error)
	FindAll(ctx context.Context) ([]entities.Author, error)
	Save(ctx context.Context, author *entities.AuthorWithBooks) error
	Update(ctx context.Context, author *entities.AuthorWithBooks) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetBooksForAuthor(ctx context.Context, authorID int64) ([]entities.Book, error)
}

// ExistenceChecker is how the book service asks its siblings whether a
// referenced reader or author exists.
type ExistenceChecker interface {
	IsContainByID(ctx context.Context, id int64) (bool, error)
}
