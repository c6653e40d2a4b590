package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/readingclub/internal/dto"
)

type BooksController struct {
	*ResourceController[dto.Book]
	books BookService
}

func NewBooksController(service BookService) *BooksController {
	return &BooksController{
		ResourceController: newResourceController[dto.Book]("book", service),
		books:              service,
	}
}

// List serves GET /books. With reader-id or author-id in the query it lists
// only that reader's or author's books; reader-id wins when both are given.
func (controller *BooksController) List(c *gin.Context) {
	ctx := c.Request.Context()

	readerID, byReader, ok := parseQueryID(c, "reader-id")
	if !ok {
		return
	}
	authorID, byAuthor, ok := parseQueryID(c, "author-id")
	if !ok {
		return
	}

	var (
		books []dto.Book
		err   error
	)
	switch {
	case byReader:
		books, err = controller.books.GetAllByReaderID(ctx, readerID)
	case byAuthor:
		books, err = controller.books.GetAllByAuthorID(ctx, authorID)
	default:
		books, err = controller.books.GetAll(ctx)
	}
	if err != nil {
		respondServiceError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}
