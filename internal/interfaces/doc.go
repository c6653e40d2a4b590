// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - ReaderRepository, BookRepository, AuthorRepository: persistence seen by
//     the services (internal/services/interfaces.go)
//   - readers.BookStore, books.AuthorFinder, authors.BookFinder: references
//     between sibling repositories, bound by internal/database/registry
//   - books.Associations, authors.Associations: the author_book link store
//
// ## Service Interfaces
//
//   - ExistenceChecker: foreign key checks the book service runs against the
//     reader and author services (internal/services/interfaces.go)
//   - ReaderService, BookService, AuthorService: what the HTTP controllers
//     call (internal/http/stores.go)
//   - Pinger: store reachability for /health
//
// # Adding a New Resource
//
// To add a new resource kind (e.g., publishers):
//
//  1. Add the row type to internal/entities and its migration record to
//     internal/database/schema.go.
//
//  2. Create sub-package internal/database/publishers/ with
//
//     type Repository struct { gw *database.Gateway }
//
//     func NewRepository(gw *database.Gateway) *Repository
//
//     Every method borrows a connection with gw.Acquire and wraps store
//     errors with database.Wrap.
//
//  3. Construct and bind it in internal/database/registry.
//
//  4. Add a service in internal/services and a controller built on
//     ResourceController in internal/http, then register its routes in
//     router.go.
//
//  5. Add compile-time checks to checks.go.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
