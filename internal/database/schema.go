package database

import (
	"gorm.io/gorm"

	"github.com/mrlokans/readingclub/internal/entities"
)

// The records below exist only so AutoMigrate emits foreign keys. The
// entities themselves carry no relation fields; repositories read and write
// them against the same tables.

type readerRecord struct {
	entities.Reader
}

type bookRecord struct {
	entities.Book
	Reader readerRecord `gorm:"foreignKey:ReaderID;constraint:OnDelete:RESTRICT"`
}

type authorRecord struct {
	entities.Author
}

type authorBookRecord struct {
	entities.AuthorBook
	Author authorRecord `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	Book   bookRecord   `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"`
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&readerRecord{},
		&authorRecord{},
		&bookRecord{},
		&authorBookRecord{},
	)
}
