package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/Astemirdum/reading-tracker/tracker/internal/errs"
	"github.com/Astemirdum/reading-tracker/tracker/internal/model"
	"github.com/Astemirdum/reading-tracker/tracker/internal/repository"
)

// memRepo is an in-memory Repository; AppendEntry holds the lock for the
// whole read-modify-write like the row lock in postgres.
type memRepo struct {
	mu      sync.Mutex
	nextID  int64
	books   map[int64]model.Book
	entries map[int64][]model.ReadingLogEntry
}

var _ repository.Repository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		books:   make(map[int64]model.Book),
		entries: make(map[int64][]model.ReadingLogEntry),
	}
}

func (r *memRepo) CreateBook(_ context.Context, book model.Book) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	book.ID = r.nextID
	book.LastReadPage = 0
	book.Read = false
	book.CreatedAt = time.Now()
	r.books[book.ID] = book
	return book, nil
}

func (r *memRepo) GetBook(_ context.Context, id int64) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	book, ok := r.books[id]
	if !ok {
		return model.Book{}, errs.NotFound("book %d", id)
	}
	return book, nil
}

func (r *memRepo) ListBooks(_ context.Context) ([]model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	books := make([]model.Book, 0, len(r.books))
	for id := int64(1); id <= r.nextID; id++ {
		if b, ok := r.books[id]; ok {
			books = append(books, b)
		}
	}
	return books, nil
}

func (r *memRepo) DeleteBook(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.books[id]
	delete(r.entries, id)
	delete(r.books, id)
	return ok, nil
}

func (r *memRepo) ListEntries(_ context.Context, bookID int64) ([]model.ReadingLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.ReadingLogEntry(nil), r.entries[bookID]...), nil
}

func (r *memRepo) BookWithEntries(_ context.Context, bookID int64) (model.Book, []model.ReadingLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	book, ok := r.books[bookID]
	if !ok {
		return model.Book{}, nil, errs.NotFound("book %d", bookID)
	}
	return book, append([]model.ReadingLogEntry(nil), r.entries[bookID]...), nil
}

func (r *memRepo) AppendEntry(_ context.Context, bookID int64, apply repository.ApplyFunc) (model.ReadingLogEntry, model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	book, ok := r.books[bookID]
	if !ok {
		return model.ReadingLogEntry{}, model.Book{}, errs.NotFound("book %d", bookID)
	}
	entry, next, err := apply(book)
	if err != nil {
		return model.ReadingLogEntry{}, model.Book{}, err
	}
	r.nextID++
	entry.ID = r.nextID
	entry.CreatedAt = time.Now()
	r.entries[bookID] = append(r.entries[bookID], entry)
	r.books[bookID] = next
	return entry, next, nil
}
