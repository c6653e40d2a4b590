// Package authorbooks stores the many-to-many link between authors and books.
//
// Each row of author_book is one (author, book) pair. Both sides are foreign
// keys, so a link can only be created for rows that exist, and a row cannot be
// deleted while links to it remain.
//
// # Usage
//
//	repo := authorbooks.NewRepository(gw)
//	linked, err := repo.Link(ctx, authorID, bookID)
package authorbooks

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/readingclub/internal/database"
	"github.com/mrlokans/readingclub/internal/entities"
)

// Repository handles author_book rows.
type Repository struct {
	gw *database.Gateway
}

func NewRepository(gw *database.Gateway) *Repository {
	return &Repository{gw: gw}
}

// Link inserts the (author, book) pair. Linking a pair twice is a
// persistence error.
func (r *Repository) Link(ctx context.Context, authorID, bookID int64) (bool, error) {
	var affected int64
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		result := db.Create(&entities.AuthorBook{AuthorID: authorID, BookID: bookID})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, database.Wrap("link author to book", err)
	}
	return affected > 0, nil
}

// Unlink removes a single pair. Returns false when the pair did not exist.
func (r *Repository) Unlink(ctx context.Context, authorID, bookID int64) (bool, error) {
	return r.deleteWhere(ctx, "unlink author from book", "author_id = ? AND book_id = ?", authorID, bookID)
}

// UnlinkByAuthor removes every link of the author.
func (r *Repository) UnlinkByAuthor(ctx context.Context, authorID int64) (bool, error) {
	return r.deleteWhere(ctx, "unlink author", "author_id = ?", authorID)
}

// UnlinkByBook removes every link of the book.
func (r *Repository) UnlinkByBook(ctx context.Context, bookID int64) (bool, error) {
	return r.deleteWhere(ctx, "unlink book", "book_id = ?", bookID)
}

// AuthorIDsForBook returns the linked author ids in ascending order.
func (r *Repository) AuthorIDsForBook(ctx context.Context, bookID int64) ([]int64, error) {
	return r.pluck(ctx, "author_id", "book_id = ?", bookID)
}

// BookIDsForAuthor returns the linked book ids in ascending order.
func (r *Repository) BookIDsForAuthor(ctx context.Context, authorID int64) ([]int64, error) {
	return r.pluck(ctx, "book_id", "author_id = ?", authorID)
}

func (r *Repository) deleteWhere(ctx context.Context, op, query string, args ...any) (bool, error) {
	var affected int64
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		result := db.Where(query, args...).Delete(&entities.AuthorBook{})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, database.Wrap(op, err)
	}
	return affected > 0, nil
}

func (r *Repository) pluck(ctx context.Context, column, query string, args ...any) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Model(&entities.AuthorBook{}).Where(query, args...).Order(column).Pluck(column, &ids).Error
	})
	if err != nil {
		return nil, database.Wrap("list "+column, err)
	}
	return ids, nil
}
