package handler

import (
	"context"

	"github.com/Astemirdum/reading-tracker/tracker/internal/model"
	"github.com/Astemirdum/reading-tracker/tracker/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type TrackerService interface {
	SearchCatalog(ctx context.Context, query string) ([]model.CatalogVolume, error)
	CatalogDetails(ctx context.Context, id string) (model.CatalogDetails, error)

	AddBook(ctx context.Context, md model.CatalogMetadata) (model.Book, error)
	AddFromCatalog(ctx context.Context, catalogID string) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.BookOverview, error)
	DeleteBook(ctx context.Context, id int64) error
	ListEntries(ctx context.Context, bookID int64) ([]model.ReadingLogEntry, error)

	RecordSession(ctx context.Context, req model.RecordSessionRequest) (model.ReadingLogEntry, error)
	GenerateReview(ctx context.Context, bookID int64) (model.Review, error)
	ReadingPage(ctx context.Context, bookID int64) (model.ReadingPage, error)
}

var _ TrackerService = (*service.Service)(nil)
