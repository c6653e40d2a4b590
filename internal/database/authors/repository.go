// Package authors provides database operations for authors.
//
// # Usage
//
//	repo := authors.NewRepository(gw, associations)
//	repo.BindBooks(booksRepo)
//	author, found, err := repo.FindByID(ctx, 7)
package authors

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/readingclub/internal/database"
	"github.com/mrlokans/readingclub/internal/entities"
)

// Associations is the part of the author_book store an author needs.
type Associations interface {
	Link(ctx context.Context, authorID, bookID int64) (bool, error)
	UnlinkByAuthor(ctx context.Context, authorID int64) (bool, error)
}

// BookFinder loads the books of an author.
type BookFinder interface {
	FindAllByAuthorID(ctx context.Context, authorID int64) ([]entities.Book, error)
}

// Repository handles all author database operations.
type Repository struct {
	gw           *database.Gateway
	associations Associations
	books        BookFinder
}

func NewRepository(gw *database.Gateway, associations Associations) *Repository {
	return &Repository{gw: gw, associations: associations}
}

// BindBooks wires the books repository after construction.
func (r *Repository) BindBooks(books BookFinder) {
	r.books = books
}

func (r *Repository) FindByID(ctx context.Context, id int64) (entities.Author, bool, error) {
	var author entities.Author
	found := true
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		err := db.First(&author, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return entities.Author{}, false, database.Wrap("find author", err)
	}
	return author, found, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]entities.Author, error) {
	authors := make([]entities.Author, 0)
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Order("id").Find(&authors).Error
	})
	if err != nil {
		return nil, database.Wrap("list authors", err)
	}
	return authors, nil
}

// FindAllByBookID returns the authors linked to the book.
func (r *Repository) FindAllByBookID(ctx context.Context, bookID int64) ([]entities.Author, error) {
	authors := make([]entities.Author, 0)
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Select("authors.*").
			Joins("JOIN author_book ON author_book.author_id = authors.id").
			Where("author_book.book_id = ?", bookID).
			Order("authors.id").
			Find(&authors).Error
	})
	if err != nil {
		return nil, database.Wrap("list authors by book", err)
	}
	return authors, nil
}

// Save inserts the author and links every book in author.Books.
func (r *Repository) Save(ctx context.Context, author *entities.AuthorWithBooks) error {
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Create(&author.Author).Error
	})
	if err != nil {
		return database.Wrap("save author", err)
	}
	if author.ID == 0 {
		return nil
	}

	for _, book := range author.Books {
		if _, err := r.associations.Link(ctx, author.ID, book.ID); err != nil {
			return err
		}
	}
	return nil
}

// Update rewrites the scalar columns and, when author.Books is loaded,
// replaces the author's book links with exactly that set.
func (r *Repository) Update(ctx context.Context, author *entities.AuthorWithBooks) (bool, error) {
	var affected int64
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		result := db.Model(&entities.Author{}).Where("id = ?", author.ID).Updates(map[string]any{
			"full_name":     author.FullName,
			"personal_info": author.PersonalInfo,
		})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, database.Wrap("update author", err)
	}
	if affected == 0 {
		return false, nil
	}

	if author.Books == nil {
		return true, nil
	}
	if _, err := r.associations.UnlinkByAuthor(ctx, author.ID); err != nil {
		return false, err
	}
	for _, book := range author.Books {
		if _, err := r.associations.Link(ctx, author.ID, book.ID); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Delete removes the author's book links, then the author. Books stay.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := r.associations.UnlinkByAuthor(ctx, id); err != nil {
		return false, err
	}

	var affected int64
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		result := db.Delete(&entities.Author{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, database.Wrap("delete author", err)
	}
	return affected > 0, nil
}

func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Model(&entities.Author{}).Where("id = ?", id).Count(&count).Error
	})
	if err != nil {
		return false, database.Wrap("check author", err)
	}
	return count > 0, nil
}

// GetBooksForAuthor loads the author's books through the books repository.
func (r *Repository) GetBooksForAuthor(ctx context.Context, authorID int64) ([]entities.Book, error) {
	if r.books == nil {
		return nil, errors.New("authors repository: books not bound")
	}
	return r.books.FindAllByAuthorID(ctx, authorID)
}
