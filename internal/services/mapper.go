package services

import (
	"github.com/mrlokans/readingclub/internal/dto"
	"github.com/mrlokans/readingclub/internal/entities"
)

func ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func readerToDTO(r entities.ReaderWithBooks) dto.Reader {
	bookIDs := make([]int64, 0, len(r.Books))
	for _, b := range r.Books {
		bookIDs = append(bookIDs, b.ID)
	}
	return dto.Reader{
		ID:      r.ID,
		Name:    ptr(r.Name),
		Surname: ptr(r.Surname),
		Phone:   ptr(r.Phone),
		Address: ptr(r.Address),
		BookIDs: bookIDs,
	}
}

func readerFromDTO(in dto.Reader) entities.ReaderWithBooks {
	return entities.ReaderWithBooks{
		Reader: entities.Reader{
			Name:    deref(in.Name),
			Surname: deref(in.Surname),
			Phone:   deref(in.Phone),
			Address: deref(in.Address),
		},
	}
}

func authorToDTO(a entities.AuthorWithBooks) dto.Author {
	return dto.Author{
		ID:           a.ID,
		FullName:     ptr(a.FullName),
		PersonalInfo: ptr(a.PersonalInfo),
		BookIDs:      a.BookIDs(),
	}
}

func authorFromDTO(in dto.Author) entities.AuthorWithBooks {
	return entities.AuthorWithBooks{
		Author: entities.Author{
			FullName:     deref(in.FullName),
			PersonalInfo: deref(in.PersonalInfo),
		},
	}
}

func bookToDTO(b entities.BookWithAuthors) dto.Book {
	return dto.Book{
		ID:              b.ID,
		Title:           ptr(b.Title),
		InventoryNumber: ptr(b.InventoryNumber),
		AuthorIDs:       b.AuthorIDs(),
		ReaderID:        ptr(b.ReaderID),
	}
}

// bookFromDTO references authors by id only; the link needs nothing else.
func bookFromDTO(in dto.Book) entities.BookWithAuthors {
	return entities.BookWithAuthors{
		Book: entities.Book{
			Title:           deref(in.Title),
			InventoryNumber: deref(in.InventoryNumber),
			ReaderID:        deref(in.ReaderID),
		},
		Authors: authorRefs(in.AuthorIDs),
	}
}

func authorRefs(ids []int64) []entities.Author {
	authors := make([]entities.Author, 0, len(ids))
	for _, id := range ids {
		authors = append(authors, entities.Author{ID: id})
	}
	return authors
}

// withoutAuthors wraps plain book rows so a cascading update leaves their
// author links alone.
func withoutAuthors(books []entities.Book) []entities.BookWithAuthors {
	wrapped := make([]entities.BookWithAuthors, 0, len(books))
	for _, b := range books {
		wrapped = append(wrapped, entities.BookWithAuthors{Book: b})
	}
	return wrapped
}
