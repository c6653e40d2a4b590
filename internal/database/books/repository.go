// Package books provides database operations for books.
//
// A book row carries its owning reader. Author links live in author_book and
// are kept in step with the aggregate on Save, Update and Delete.
//
// # Interface Implementation
//
//	var _ services.BookRepository = (*Repository)(nil)
//	var _ readers.BookStore = (*Repository)(nil)
//	var _ authors.BookFinder = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(gw, associations)
//	repo.BindAuthors(authorsRepo)
//	book, found, err := repo.FindByID(ctx, 123)
package books

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/readingclub/internal/database"
	"github.com/mrlokans/readingclub/internal/entities"
)

// Associations is the part of the author_book store a book needs.
type Associations interface {
	Link(ctx context.Context, authorID, bookID int64) (bool, error)
	UnlinkByBook(ctx context.Context, bookID int64) (bool, error)
}

// AuthorFinder loads the authors of a book.
type AuthorFinder interface {
	FindAllByBookID(ctx context.Context, bookID int64) ([]entities.Author, error)
}

// Repository handles all book database operations.
type Repository struct {
	gw           *database.Gateway
	associations Associations
	authors      AuthorFinder
}

func NewRepository(gw *database.Gateway, associations Associations) *Repository {
	return &Repository{gw: gw, associations: associations}
}

// BindAuthors wires the authors repository. The two repositories refer to
// each other, so this happens after both are constructed.
func (r *Repository) BindAuthors(authors AuthorFinder) {
	r.authors = authors
}

func (r *Repository) FindByID(ctx context.Context, id int64) (entities.Book, bool, error) {
	var book entities.Book
	found := true
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		err := db.First(&book, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return entities.Book{}, false, database.Wrap("find book", err)
	}
	return book, found, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Order("id").Find(&books).Error
	})
	if err != nil {
		return nil, database.Wrap("list books", err)
	}
	return books, nil
}

// FindAllByReaderID returns the books owned by the reader.
func (r *Repository) FindAllByReaderID(ctx context.Context, readerID int64) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Where("reader_id = ?", readerID).Order("id").Find(&books).Error
	})
	if err != nil {
		return nil, database.Wrap("list books by reader", err)
	}
	return books, nil
}

// FindAllByAuthorID returns the books linked to the author.
func (r *Repository) FindAllByAuthorID(ctx context.Context, authorID int64) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Select("books.*").
			Joins("JOIN author_book ON author_book.book_id = books.id").
			Where("author_book.author_id = ?", authorID).
			Order("books.id").
			Find(&books).Error
	})
	if err != nil {
		return nil, database.Wrap("list books by author", err)
	}
	return books, nil
}

// Save inserts the book, assigns its id and links every author in
// book.Authors. A failed link leaves the inserted row in place.
func (r *Repository) Save(ctx context.Context, book *entities.BookWithAuthors) error {
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Create(&book.Book).Error
	})
	if err != nil {
		return database.Wrap("save book", err)
	}
	if book.ID == 0 {
		return nil
	}

	for _, author := range book.Authors {
		if _, err := r.associations.Link(ctx, author.ID, book.ID); err != nil {
			return err
		}
	}
	return nil
}

// Update rewrites the scalar columns. When book.Authors is loaded (non-nil)
// the author links are replaced by exactly that set; a nil collection leaves
// the links untouched. Returns false when no row has the id.
func (r *Repository) Update(ctx context.Context, book *entities.BookWithAuthors) (bool, error) {
	var affected int64
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		result := db.Model(&entities.Book{}).Where("id = ?", book.ID).Updates(map[string]any{
			"title":            book.Title,
			"inventory_number": book.InventoryNumber,
			"reader_id":        book.ReaderID,
		})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, database.Wrap("update book", err)
	}
	if affected == 0 {
		return false, nil
	}

	if book.Authors == nil {
		return true, nil
	}
	if _, err := r.associations.UnlinkByBook(ctx, book.ID); err != nil {
		return false, err
	}
	for _, author := range book.Authors {
		if _, err := r.associations.Link(ctx, author.ID, book.ID); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Delete removes the book's author links, then the book.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := r.associations.UnlinkByBook(ctx, id); err != nil {
		return false, err
	}

	var affected int64
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		result := db.Delete(&entities.Book{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, database.Wrap("delete book", err)
	}
	return affected > 0, nil
}

func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error
	})
	if err != nil {
		return false, database.Wrap("check book", err)
	}
	return count > 0, nil
}

// GetAuthorsForBook loads the book's authors through the authors repository.
func (r *Repository) GetAuthorsForBook(ctx context.Context, bookID int64) ([]entities.Author, error) {
	if r.authors == nil {
		return nil, errors.New("books repository: authors not bound")
	}
	return r.authors.FindAllByBookID(ctx, bookID)
}
