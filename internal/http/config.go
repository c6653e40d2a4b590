package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	Readers ReaderService
	Books   BookService
	Authors AuthorService

	// Health checks
	Database Pinger

	// Application info
	Version string
}
