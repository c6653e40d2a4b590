// Command generate_demo creates a demo database with readers, public domain
// books and their authors.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/readingclub/internal/config"
	"github.com/mrlokans/readingclub/internal/database"
	"github.com/mrlokans/readingclub/internal/dto"
	"github.com/mrlokans/readingclub/internal/entrypoint"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoBook struct {
	Title           string
	InventoryNumber int64
	Reader          string // phone of the owning reader
	Authors         []string
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	gw := database.NewGateway()
	err := gw.Initialize(config.Database{
		Driver:       config.DriverSQLite,
		URL:          *dbPath,
		MaxOpenConns: config.DefaultMaxOpenConns,
		LogLevel:     "warn",
	})
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer gw.Close()

	svc := entrypoint.NewServices(gw)
	ctx := context.Background()

	readers := createReaders(ctx, svc)
	authors := createAuthors(ctx, svc)

	for _, b := range getPublicDomainBooks() {
		readerID, ok := readers[b.Reader]
		if !ok {
			log.Printf("Skipping %s: unknown reader %s", b.Title, b.Reader)
			continue
		}

		authorIDs := make([]int64, 0, len(b.Authors))
		for _, name := range b.Authors {
			if id, ok := authors[name]; ok {
				authorIDs = append(authorIDs, id)
			}
		}

		saved, err := svc.Books.Save(ctx, dto.Book{
			Title:           &b.Title,
			InventoryNumber: &b.InventoryNumber,
			ReaderID:        &readerID,
			AuthorIDs:       authorIDs,
		})
		if err != nil {
			log.Printf("Failed to save book %s: %v", b.Title, err)
			continue
		}
		log.Printf("Saved: %s (#%d, %d authors)", b.Title, saved.ID, len(authorIDs))
	}

	log.Println("Demo database generated successfully!")
}

func createReaders(ctx context.Context, svc *entrypoint.Services) map[string]int64 {
	readers := []dto.Reader{
		{Name: ptr("Ivan"), Surname: ptr("Petrov"), Phone: ptr("71111111111"), Address: ptr("Moscow, Tverskaya 1")},
		{Name: ptr("Anna"), Surname: ptr("Karenina"), Phone: ptr("72222222222"), Address: ptr("Saint Petersburg")},
		{Name: ptr("Elizabeth"), Surname: ptr("Bennet"), Phone: ptr("73333333333"), Address: ptr("Longbourn")},
	}

	ids := make(map[string]int64)
	for _, r := range readers {
		saved, err := svc.Readers.Save(ctx, r)
		if err != nil {
			log.Printf("Failed to create reader %s: %v", *r.Name, err)
			continue
		}
		ids[*r.Phone] = saved.ID
	}
	return ids
}

func createAuthors(ctx context.Context, svc *entrypoint.Services) map[string]int64 {
	authors := []dto.Author{
		{FullName: ptr("Leo Tolstoy"), PersonalInfo: ptr("Russian writer, 1828-1910")},
		{FullName: ptr("Jane Austen"), PersonalInfo: ptr("English novelist, 1775-1817")},
		{FullName: ptr("Marcus Aurelius"), PersonalInfo: ptr("Roman emperor and Stoic philosopher, 121-180")},
		{FullName: ptr("Karl Marx"), PersonalInfo: ptr("German philosopher, 1818-1883")},
		{FullName: ptr("Friedrich Engels"), PersonalInfo: ptr("German philosopher, 1820-1895")},
	}

	ids := make(map[string]int64)
	for _, a := range authors {
		saved, err := svc.Authors.Save(ctx, a)
		if err != nil {
			log.Printf("Failed to create author %s: %v", *a.FullName, err)
			continue
		}
		ids[*a.FullName] = saved.ID
	}
	return ids
}

func getPublicDomainBooks() []demoBook {
	return []demoBook{
		{Title: "War and Peace", InventoryNumber: 10001, Reader: "71111111111", Authors: []string{"Leo Tolstoy"}},
		{Title: "Anna Karenina", InventoryNumber: 10002, Reader: "72222222222", Authors: []string{"Leo Tolstoy"}},
		{Title: "Pride and Prejudice", InventoryNumber: 10003, Reader: "73333333333", Authors: []string{"Jane Austen"}},
		{Title: "Emma", InventoryNumber: 10004, Reader: "73333333333", Authors: []string{"Jane Austen"}},
		{Title: "Meditations", InventoryNumber: 10005, Reader: "71111111111", Authors: []string{"Marcus Aurelius"}},
		{Title: "The Communist Manifesto", InventoryNumber: 10006, Reader: "72222222222", Authors: []string{"Karl Marx", "Friedrich Engels"}},
	}
}

func ptr[T any](v T) *T {
	return &v
}
