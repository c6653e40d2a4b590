// Package database provides the data access layer for the reading club.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Gateway: pool setup, Acquire, Ping, Close
//	├── schema.go        # Migration records carrying the foreign keys
//	├── errors.go        # PersistenceError and ErrNotInitialized
//	├── authorbooks/     # author_book association rows
//	├── readers/         # Reader CRUD, cascades to owned books
//	├── books/           # Book CRUD, maintains author links
//	├── authors/         # Author CRUD, maintains book links
//	└── registry/        # Builds the repositories and binds siblings
//
// # Using Sub-packages
//
// Repositories never keep a connection. Each operation borrows one from the
// gateway and gives it back before returning:
//
//	gw := database.NewGateway()
//	if err := gw.Initialize(cfg.Database); err != nil { ... }
//	defer gw.Close()
//
//	repos := registry.New(gw)
//	reader, found, err := repos.Readers.FindByID(ctx, 1)
//
// Repositories of different kinds refer to each other (a reader deletes its
// books, a book loads its authors). The registry constructs every repository
// first and then binds those references.
//
// # Errors
//
// Every store failure is returned as a *PersistenceError, which matches
// ErrPersistence with errors.Is. A missing row is not an error: lookups
// report it with a found flag.
//
// # SQLite
//
// The sqlite URL is a file path. ":memory:" is not useful with a pool, since
// every connection would see its own empty database.
package database
