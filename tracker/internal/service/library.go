package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Astemirdum/reading-tracker/pkg/kafka"
	"github.com/Astemirdum/reading-tracker/tracker/internal/model"
	"github.com/Astemirdum/reading-tracker/tracker/internal/service/catalog"
)

var isbnReplacer = strings.NewReplacer("-", "", " ", "")

func (s *Service) SearchCatalog(ctx context.Context, query string) ([]model.CatalogVolume, error) {
	return s.catalog.Search(ctx, query)
}

func (s *Service) CatalogDetails(ctx context.Context, id string) (model.CatalogDetails, error) {
	return s.catalog.FetchDetails(ctx, id)
}

// AddBook stores catalog metadata as a new, unread book. Non-positive page
// counts are stored as unknown.
func (s *Service) AddBook(ctx context.Context, md model.CatalogMetadata) (model.Book, error) {
	md.ISBN = isbnReplacer.Replace(md.ISBN)
	if err := s.validate(md); err != nil {
		return model.Book{}, err
	}

	book := model.Book{
		Title:  strings.TrimSpace(md.Title),
		Author: strings.TrimSpace(md.Author),
	}
	if isbn := md.ISBN; isbn != "" {
		book.ISBN = &isbn
	}
	if md.TotalPages > 0 {
		total := md.TotalPages
		book.TotalPages = &total
	}
	if id := strings.TrimSpace(md.CatalogID); id != "" {
		book.CatalogID = &id
	}

	created, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}
	s.log.Info("book added", zap.Int64("id", created.ID), zap.String("title", created.Title))
	s.publish(ctx, kafka.EventReading{EventType: kafka.EventBookAdded, BookID: created.ID, Title: created.Title})
	return created, nil
}

// AddFromCatalog looks the volume up and adds it; nothing is stored when the lookup fails.
func (s *Service) AddFromCatalog(ctx context.Context, catalogID string) (model.Book, error) {
	details, err := s.catalog.FetchDetails(ctx, catalogID)
	if err != nil {
		return model.Book{}, err
	}
	return s.AddBook(ctx, catalog.Metadata(details))
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]model.BookOverview, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	overviews := make([]model.BookOverview, 0, len(books))
	for _, b := range books {
		overviews = append(overviews, b.Overview())
	}
	return overviews, nil
}

// DeleteBook removes a book with its reading log. Unknown ids are a no-op.
func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteBook(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		s.log.Debug("delete: no such book", zap.Int64("id", id))
		return nil
	}
	s.log.Info("book deleted", zap.Int64("id", id))
	s.publish(ctx, kafka.EventReading{EventType: kafka.EventBookDeleted, BookID: id})
	return nil
}

func (s *Service) ListEntries(ctx context.Context, bookID int64) ([]model.ReadingLogEntry, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return nil, err
	}
	return s.repo.ListEntries(ctx, bookID)
}
