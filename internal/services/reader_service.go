package services

import (
	"context"
	"log"

	"github.com/mrlokans/readingclub/internal/dto"
	"github.com/mrlokans/readingclub/internal/entities"
)

const readerKind = "reader"

// ReaderService orchestrates reader persistence and conversion to dto.Reader.
type ReaderService struct {
	readers ReaderRepository
}

func NewReaderService(readers ReaderRepository) *ReaderService {
	return &ReaderService{readers: readers}
}

// GetReaderByID returns the reader with its books loaded. The books' own
// authors are left unloaded.
func (s *ReaderService) GetReaderByID(ctx context.Context, id int64) (*entities.ReaderWithBooks, error) {
	reader, found, err := s.readers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound(readerKind, id)
	}
	return s.hydrate(ctx, reader)
}

func (s *ReaderService) GetByID(ctx context.Context, id int64) (dto.Reader, error) {
	reader, err := s.GetReaderByID(ctx, id)
	if err != nil {
		return dto.Reader{}, err
	}
	return readerToDTO(*reader), nil
}

func (s *ReaderService) GetAll(ctx context.Context) ([]dto.Reader, error) {
	readers, err := s.readers.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.Reader, 0, len(readers))
	for _, r := range readers {
		reader, err := s.hydrate(ctx, r)
		if err != nil {
			return nil, err
		}
		result = append(result, readerToDTO(*reader))
	}
	return result, nil
}

func (s *ReaderService) Save(ctx context.Context, in dto.Reader) (dto.Reader, error) {
	if err := dto.ValidateNew(in); err != nil {
		return dto.Reader{}, &ValidationError{Err: err}
	}

	reader := readerFromDTO(in)
	if err := s.readers.Save(ctx, &reader); err != nil {
		return dto.Reader{}, err
	}
	log.Printf("Saved reader %d", reader.ID)
	return readerToDTO(reader), nil
}

// Update applies the present fields of in to the stored reader. Absent
// fields keep their stored value.
func (s *ReaderService) Update(ctx context.Context, in dto.Reader, id int64) (bool, error) {
	if err := dto.ValidatePatch(in); err != nil {
		return false, &ValidationError{Err: err}
	}

	reader, err := s.GetReaderByID(ctx, id)
	if err != nil {
		return false, err
	}
	if in.Name != nil {
		reader.Name = *in.Name
	}
	if in.Surname != nil {
		reader.Surname = *in.Surname
	}
	if in.Phone != nil {
		reader.Phone = *in.Phone
	}
	if in.Address != nil {
		reader.Address = *in.Address
	}

	return s.readers.Update(ctx, reader)
}

// Delete removes the reader together with every book it owns.
func (s *ReaderService) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := s.IsContainByID(ctx, id); err != nil {
		return false, err
	}
	deleted, err := s.readers.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	log.Printf("Deleted reader %d", id)
	return deleted, nil
}

// IsContainByID returns true, or a not-found error when no reader has the id.
func (s *ReaderService) IsContainByID(ctx context.Context, id int64) (bool, error) {
	exists, err := s.readers.ExistsByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, notFound(readerKind, id)
	}
	return true, nil
}

func (s *ReaderService) hydrate(ctx context.Context, reader entities.Reader) (*entities.ReaderWithBooks, error) {
	books, err := s.readers.GetBooksForReader(ctx, reader.ID)
	if err != nil {
		return nil, err
	}
	return &entities.ReaderWithBooks{Reader: reader, Books: withoutAuthors(books)}, nil
}
