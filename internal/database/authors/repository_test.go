package authors

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/readingclub/internal/config"
	"github.com/mrlokans/readingclub/internal/database"
	"github.com/mrlokans/readingclub/internal/database/authorbooks"
	"github.com/mrlokans/readingclub/internal/entities"
)

// bookRows stands in for the books repository; authors only needs the lookup.
type bookRows struct {
	gw *database.Gateway
}

func (b bookRows) FindAllByAuthorID(ctx context.Context, authorID int64) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := b.gw.Acquire(ctx, func(db *gorm.DB) error {
		return db.Joins("JOIN author_book ON author_book.book_id = books.id").
			Where("author_book.author_id = ?", authorID).Find(&books).Error
	})
	return books, err
}

type fixture struct {
	repo         *Repository
	associations *authorbooks.Repository
	t1, t2       entities.Book
}

func setupTestDB(t *testing.T) (*fixture, func()) {
	t.Helper()
	gw := database.NewGateway()
	err := gw.Initialize(config.Database{
		Driver:   config.DriverSQLite,
		URL:      filepath.Join(t.TempDir(), "test_authors.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)

	associations := authorbooks.NewRepository(gw)
	repo := NewRepository(gw, associations)
	repo.BindBooks(bookRows{gw: gw})

	f := &fixture{repo: repo, associations: associations}
	err = gw.Acquire(context.Background(), func(db *gorm.DB) error {
		reader := entities.Reader{Name: "Ivan", Phone: "71111111111"}
		if err := db.Create(&reader).Error; err != nil {
			return err
		}
		f.t1 = entities.Book{Title: "T1", InventoryNumber: 1, ReaderID: reader.ID}
		if err := db.Create(&f.t1).Error; err != nil {
			return err
		}
		f.t2 = entities.Book{Title: "T2", InventoryNumber: 2, ReaderID: reader.ID}
		return db.Create(&f.t2).Error
	})
	require.NoError(t, err)

	cleanup := func() {
		gw.Close()
	}
	return f, cleanup
}

func TestRepository_SaveLinksBooks(t *testing.T) {
	f, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	author := &entities.AuthorWithBooks{
		Author: entities.Author{FullName: "Leo Tolstoy", PersonalInfo: "1828-1910"},
		Books:  []entities.Book{f.t1, f.t2},
	}
	require.NoError(t, f.repo.Save(ctx, author))
	assert.NotZero(t, author.ID)

	books, err := f.repo.GetBooksForAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Len(t, books, 2)

	byBook, err := f.repo.FindAllByBookID(ctx, f.t1.ID)
	require.NoError(t, err)
	require.Len(t, byBook, 1)
	assert.Equal(t, "Leo Tolstoy", byBook[0].FullName)
	assert.Equal(t, "1828-1910", byBook[0].PersonalInfo)
}

func TestRepository_FindAll(t *testing.T) {
	f, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	for _, name := range []string{"A1", "A2"} {
		require.NoError(t, f.repo.Save(ctx, &entities.AuthorWithBooks{Author: entities.Author{FullName: name}}))
	}

	all, err := f.repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A1", all[0].FullName)
	assert.Equal(t, "A2", all[1].FullName)
}

func TestRepository_Update(t *testing.T) {
	f, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	author := &entities.AuthorWithBooks{Author: entities.Author{FullName: "A1"}, Books: []entities.Book{f.t1}}
	require.NoError(t, f.repo.Save(ctx, author))

	author.FullName = "A1 renamed"
	author.Books = []entities.Book{f.t2}
	updated, err := f.repo.Update(ctx, author)
	require.NoError(t, err)
	assert.True(t, updated)

	ids, err := f.associations.BookIDsForAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{f.t2.ID}, ids)

	// Unloaded books keep the links as they are.
	updated, err = f.repo.Update(ctx, &entities.AuthorWithBooks{Author: author.Author})
	require.NoError(t, err)
	assert.True(t, updated)

	ids, err = f.associations.BookIDsForAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{f.t2.ID}, ids)

	found, ok, err := f.repo.FindByID(ctx, author.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "A1 renamed", found.FullName)
}

func TestRepository_Update_Missing(t *testing.T) {
	f, cleanup := setupTestDB(t)
	defer cleanup()

	updated, err := f.repo.Update(context.Background(), &entities.AuthorWithBooks{Author: entities.Author{ID: 404}})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestRepository_Delete(t *testing.T) {
	f, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	author := &entities.AuthorWithBooks{Author: entities.Author{FullName: "A1"}, Books: []entities.Book{f.t1}}
	require.NoError(t, f.repo.Save(ctx, author))

	deleted, err := f.repo.Delete(ctx, author.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	exists, err := f.repo.ExistsByID(ctx, author.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	ids, err := f.associations.AuthorIDsForBook(ctx, f.t1.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
