package entities

// Reader is a library member. Owned books are not part of the row; load them
// with the readers repository and wrap the result in ReaderWithBooks.
type Reader struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Surname string `gorm:"size:255" json:"surname"`
	Phone   string `gorm:"uniqueIndex;size:32" json:"phone"`
	Address string `gorm:"size:512" json:"address"`
}

// Book is a single inventory item. ReaderID is the owning reader and must
// reference an existing row when the book is persisted.
type Book struct {
	ID              int64  `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"size:512" json:"title"`
	InventoryNumber int64  `gorm:"uniqueIndex;not null" json:"inventory_number"`
	ReaderID        int64  `gorm:"index;not null" json:"reader_id"`
}

type Author struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	FullName     string `gorm:"size:255" json:"full_name"`
	PersonalInfo string `gorm:"type:text" json:"personal_info"`
}

// AuthorBook is one row of the book/author join. The pair is the key.
type AuthorBook struct {
	AuthorID int64 `gorm:"primaryKey;autoIncrement:false" json:"author_id"`
	BookID   int64 `gorm:"primaryKey;autoIncrement:false" json:"book_id"`
}

func (Reader) TableName() string {
	return "readers"
}

func (Book) TableName() string {
	return "books"
}

func (Author) TableName() string {
	return "authors"
}

func (AuthorBook) TableName() string {
	return "author_book"
}

// Hydrated aggregates.
//
// A nil sub-collection means it was never loaded. Cascading updates leave
// associations alone for a nil collection and treat a non-nil one, even an
// empty one, as the full desired set.

type ReaderWithBooks struct {
	Reader
	Books []BookWithAuthors `json:"books"`
}

type BookWithAuthors struct {
	Book
	Authors []Author `json:"authors"`
}

type AuthorWithBooks struct {
	Author
	Books []Book `json:"books"`
}

// AuthorIDs returns the ids of the loaded authors in collection order.
func (b *BookWithAuthors) AuthorIDs() []int64 {
	ids := make([]int64, 0, len(b.Authors))
	for _, a := range b.Authors {
		ids = append(ids, a.ID)
	}
	return ids
}

// BookIDs returns the ids of the loaded books in collection order.
func (a *AuthorWithBooks) BookIDs() []int64 {
	ids := make([]int64, 0, len(a.Books))
	for _, b := range a.Books {
		ids = append(ids, b.ID)
	}
	return ids
}
