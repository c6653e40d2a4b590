// Package registry builds the repository graph.
//
// Readers, books and authors refer to one another. New constructs every
// repository first and binds the references afterwards, so no repository is
// used before its siblings exist.
package registry

import (
	"github.com/mrlokans/readingclub/internal/database"
	"github.com/mrlokans/readingclub/internal/database/authorbooks"
	"github.com/mrlokans/readingclub/internal/database/authors"
	"github.com/mrlokans/readingclub/internal/database/books"
	"github.com/mrlokans/readingclub/internal/database/readers"
)

type Repositories struct {
	Readers     *readers.Repository
	Books       *books.Repository
	Authors     *authors.Repository
	AuthorBooks *authorbooks.Repository
}

func New(gw *database.Gateway) *Repositories {
	associations := authorbooks.NewRepository(gw)

	repos := &Repositories{
		Readers:     readers.NewRepository(gw),
		Books:       books.NewRepository(gw, associations),
		Authors:     authors.NewRepository(gw, associations),
		AuthorBooks: associations,
	}

	repos.Readers.BindBooks(repos.Books)
	repos.Books.BindAuthors(repos.Authors)
	repos.Authors.BindBooks(repos.Books)

	return repos
}
