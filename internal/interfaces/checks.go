package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/readingclub/internal/database"
	"github.com/mrlokans/readingclub/internal/database/authorbooks"
	"github.com/mrlokans/readingclub/internal/database/authors"
	"github.com/mrlokans/readingclub/internal/database/books"
	"github.com/mrlokans/readingclub/internal/database/readers"
	"github.com/mrlokans/readingclub/internal/http"
	"github.com/mrlokans/readingclub/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Repositories seen by the services
var _ services.ReaderRepository = (*readers.Repository)(nil)
var _ services.BookRepository = (*books.Repository)(nil)
var _ services.AuthorRepository = (*authors.Repository)(nil)

// Sibling references bound by the registry
var _ readers.BookStore = (*books.Repository)(nil)
var _ books.AuthorFinder = (*authors.Repository)(nil)
var _ authors.BookFinder = (*books.Repository)(nil)
var _ books.Associations = (*authorbooks.Repository)(nil)
var _ authors.Associations = (*authorbooks.Repository)(nil)

// =============================================================================
// Services
// =============================================================================

var _ services.ExistenceChecker = (*services.ReaderService)(nil)
var _ services.ExistenceChecker = (*services.AuthorService)(nil)
var _ services.ExistenceChecker = (*services.BookService)(nil)

// =============================================================================
// HTTP Layer
// =============================================================================

var _ http.ReaderService = (*services.ReaderService)(nil)
var _ http.BookService = (*services.BookService)(nil)
var _ http.AuthorService = (*services.AuthorService)(nil)
var _ http.Pinger = (*database.Gateway)(nil)
