// Package readers provides database operations for readers.
//
// A reader owns books. Save, Update and Delete cascade to the owned books
// through the books repository, one statement at a time; a failure part way
// leaves the earlier steps applied.
//
// # Usage
//
//	repo := readers.NewRepository(gw)
//	repo.BindBooks(booksRepo)
//	reader, found, err := repo.FindByID(ctx, 1)
package readers

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/readingclub/internal/database"
	"github.com/mrlokans/readingclub/internal/entities"
)

// BookStore is what a reader needs from the books repository.
type BookStore interface {
	FindAllByReaderID(ctx context.Context, readerID int64) ([]entities.Book, error)
	Save(ctx context.Context, book *entities.BookWithAuthors) error
	Update(ctx context.Context, book *entities.BookWithAuthors) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Repository handles all reader database operations.
type Repository struct {
	gw    *database.Gateway
	books BookStore
}

func NewRepository(gw *database.Gateway) *Repository {
	return &Repository{gw: gw}
}

// BindBooks wires the books repository after construction.
func (r *Repository) BindBooks(books BookStore) {
	r.books = books
}

func (r *Repository) FindByID(ctx context.Context, id int64) (entities.Reader, bool, error) {
	var reader entities.Reader
	found := true
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		err := db.First(&reader, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return entities.Reader{}, false, database.Wrap("find reader", err)
	}
	return reader, found, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]entities.Reader, error) {
	readers := make([]entities.Reader, 0)
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Order("id").Find(&readers).Error
	})
	if err != nil {
		return nil, database.Wrap("list readers", err)
	}
	return readers, nil
}

// Save inserts the reader, assigns its id, then saves every book in
// reader.Books as owned by it.
func (r *Repository) Save(ctx context.Context, reader *entities.ReaderWithBooks) error {
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Create(&reader.Reader).Error
	})
	if err != nil {
		return database.Wrap("save reader", err)
	}
	if reader.ID == 0 || len(reader.Books) == 0 {
		return nil
	}

	books, err := r.bookStore()
	if err != nil {
		return err
	}
	for i := range reader.Books {
		book := &reader.Books[i]
		book.ReaderID = reader.ID
		if err := books.Save(ctx, book); err != nil {
			return err
		}
	}
	return nil
}

// Update rewrites the scalar columns, then saves new books (id 0) and
// updates existing ones in reader.Books. Returns false when no row has the id.
func (r *Repository) Update(ctx context.Context, reader *entities.ReaderWithBooks) (bool, error) {
	var affected int64
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		result := db.Model(&entities.Reader{}).Where("id = ?", reader.ID).Updates(map[string]any{
			"name":    reader.Name,
			"surname": reader.Surname,
			"phone":   reader.Phone,
			"address": reader.Address,
		})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, database.Wrap("update reader", err)
	}
	if affected == 0 {
		return false, nil
	}
	if len(reader.Books) == 0 {
		return true, nil
	}

	books, err := r.bookStore()
	if err != nil {
		return false, err
	}
	for i := range reader.Books {
		book := &reader.Books[i]
		book.ReaderID = reader.ID
		if book.ID == 0 {
			err = books.Save(ctx, book)
		} else {
			_, err = books.Update(ctx, book)
		}
		if err != nil {
			return false, err
		}
	}
	return true, nil
}

// Delete removes every book the reader owns, then the reader.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	books, err := r.bookStore()
	if err != nil {
		return false, err
	}
	owned, err := books.FindAllByReaderID(ctx, id)
	if err != nil {
		return false, err
	}
	for _, book := range owned {
		if _, err := books.Delete(ctx, book.ID); err != nil {
			return false, err
		}
	}

	var affected int64
	err = r.gw.Acquire(ctx, func(db *gorm.DB) error {
		result := db.Delete(&entities.Reader{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, database.Wrap("delete reader", err)
	}
	return affected > 0, nil
}

func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Model(&entities.Reader{}).Where("id = ?", id).Count(&count).Error
	})
	if err != nil {
		return false, database.Wrap("check reader", err)
	}
	return count > 0, nil
}

// GetBooksForReader loads the books the reader owns.
func (r *Repository) GetBooksForReader(ctx context.Context, readerID int64) ([]entities.Book, error) {
	books, err := r.bookStore()
	if err != nil {
		return nil, err
	}
	return books.FindAllByReaderID(ctx, readerID)
}

func (r *Repository) bookStore() (BookStore, error) {
	if r.books == nil {
		return nil, errors.New("readers repository: books not bound")
	}
	return r.books, nil
}
