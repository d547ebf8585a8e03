package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/reading-tracker/pkg/kafka"
	"github.com/Astemirdum/reading-tracker/pkg/validate"
	"github.com/Astemirdum/reading-tracker/tracker/internal/errs"
	"github.com/Astemirdum/reading-tracker/tracker/internal/model"
	"github.com/Astemirdum/reading-tracker/tracker/internal/repository"
	"github.com/Astemirdum/reading-tracker/tracker/internal/service/catalog"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type Catalog interface {
	Search(ctx context.Context, query string) ([]model.CatalogVolume, error)
	FetchDetails(ctx context.Context, id string) (model.CatalogDetails, error)
}

type Publisher interface {
	Publish(ctx context.Context, event kafka.EventReading) error
}

var _ Catalog = (*catalog.Client)(nil)

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	catalog   Catalog
	publisher Publisher
	validator *validate.CustomValidator
	now       func() time.Time
}

type Option func(*Service)

// WithClock overrides the clock used to date reading sessions.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func NewService(repo repository.Repository, catalog Catalog, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:       log.Named("service"),
		repo:      repo,
		catalog:   catalog,
		publisher: NopPublisher{},
		validator: validate.NewCustomValidator(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) validate(req any) error {
	if err := s.validator.Validate(req); err != nil {
		return errs.Validation(validate.Message(err))
	}
	return nil
}

// publish runs after the change is committed; a broker failure is logged and
// does not undo the operation.
func (s *Service) publish(ctx context.Context, event kafka.EventReading) {
	event.ID = uuid.NewString()
	event.Timestamp = s.now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("publish event", zap.String("type", string(event.EventType)),
			zap.Int64("bookID", event.BookID), zap.Error(err))
	}
}
