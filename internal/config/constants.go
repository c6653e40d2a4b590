package config

const (
	// DefaultDatabasePath is the default path for the sqlite database file
	DefaultDatabasePath = "./readingclub.db"

	// DefaultMaxOpenConns bounds the connection pool
	DefaultMaxOpenConns = 5
)
