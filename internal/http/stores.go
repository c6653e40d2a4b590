package http

import (
	"context"

	"github.com/mrlokans/readingclub/internal/dto"
)

// This file consolidates the service interfaces used by HTTP controllers.
// They are implemented by the services package.

// ResourceService is the CRUD surface shared by every resource.
type ResourceService[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	Save(ctx context.Context, in T) (T, error)
	Update(ctx context.Context, in T, id int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ReaderService interface {
	ResourceService[dto.Reader]
}

type AuthorService interface {
	ResourceService[dto.Author]
}

type BookService interface {
	ResourceService[dto.Book]
	GetAllByReaderID(ctx context.Context, readerID int64) ([]dto.Book, error)
	GetAllByAuthorID(ctx context.Context, authorID int64) ([]dto.Book, error)
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
