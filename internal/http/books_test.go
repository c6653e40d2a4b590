package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/readingclub/internal/dto"
	"github.com/mrlokans/readingclub/internal/services"
)

// recordingBookService remembers which listing was asked for.
type recordingBookService struct {
	called string
	id     int64
	err    error
}

func (s *recordingBookService) GetAll(ctx context.Context) ([]dto.Book, error) {
	s.called = "all"
	return []dto.Book{}, s.err
}

func (s *recordingBookService) GetAllByReaderID(ctx context.Context, readerID int64) ([]dto.Book, error) {
	s.called, s.id = "reader", readerID
	return []dto.Book{{ID: 1}}, s.err
}

func (s *recordingBookService) GetAllByAuthorID(ctx context.Context, authorID int64) ([]dto.Book, error) {
	s.called, s.id = "author", authorID
	return []dto.Book{{ID: 2}}, s.err
}

func (s *recordingBookService) GetByID(ctx context.Context, id int64) (dto.Book, error) {
	return dto.Book{}, s.err
}

func (s *recordingBookService) Save(ctx context.Context, in dto.Book) (dto.Book, error) {
	return in, s.err
}

func (s *recordingBookService) Update(ctx context.Context, in dto.Book, id int64) (bool, error) {
	return true, s.err
}

func (s *recordingBookService) Delete(ctx context.Context, id int64) (bool, error) {
	return true, s.err
}

func serveBooks(service BookService, target string) *httptest.ResponseRecorder {
	controller := NewBooksController(service)
	router := gin.New()
	router.GET("/books", controller.List)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}

func TestBooksController_List(t *testing.T) {
	t.Run("without filter lists everything", func(t *testing.T) {
		svc := &recordingBookService{}
		w := serveBooks(svc, "/books")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "all", svc.called)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("reader-id filters by reader", func(t *testing.T) {
		svc := &recordingBookService{}
		w := serveBooks(svc, "/books?reader-id=3")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "reader", svc.called)
		assert.Equal(t, int64(3), svc.id)

		var books []dto.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
		require.Len(t, books, 1)
		assert.Equal(t, int64(1), books[0].ID)
	})

	t.Run("author-id filters by author", func(t *testing.T) {
		svc := &recordingBookService{}
		serveBooks(svc, "/books?author-id=4")

		assert.Equal(t, "author", svc.called)
		assert.Equal(t, int64(4), svc.id)
	})

	t.Run("reader-id wins over author-id", func(t *testing.T) {
		svc := &recordingBookService{}
		serveBooks(svc, "/books?author-id=4&reader-id=3")

		assert.Equal(t, "reader", svc.called)
	})

	t.Run("malformed reader-id is a server error", func(t *testing.T) {
		svc := &recordingBookService{}
		w := serveBooks(svc, "/books?reader-id=abc")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, svc.called)
	})

	t.Run("service not-found is a bad request", func(t *testing.T) {
		svc := &recordingBookService{err: &services.NotFoundError{Kind: "reader", ID: 3}}
		w := serveBooks(svc, "/books?reader-id=3")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "There is no reader with id=3 in database")
	})
}
