package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Astemirdum/reading-tracker/pkg/kafka"
	"github.com/Astemirdum/reading-tracker/tracker/internal/errs"
	"github.com/Astemirdum/reading-tracker/tracker/internal/model"
)

const reviewSeparator = "\n\n"

// RecordSession appends a reading session and moves the book's progress to
// its endPage in one transaction.
func (s *Service) RecordSession(ctx context.Context, req model.RecordSessionRequest) (model.ReadingLogEntry, error) {
	if err := s.validate(req); err != nil {
		return model.ReadingLogEntry{}, err
	}

	today := model.NewDate(s.now())
	var wasRead bool
	entry, book, err := s.repo.AppendEntry(ctx, req.BookID, func(book model.Book) (model.ReadingLogEntry, model.Book, error) {
		if total := book.Pages(); total > 0 && req.EndPage > total {
			return model.ReadingLogEntry{}, model.Book{},
				errs.Validation("endPage %d exceeds totalPages %d", req.EndPage, total)
		}
		wasRead = book.Read
		return model.ReadingLogEntry{
			BookID:     book.ID,
			Date:       today,
			StartPage:  req.StartPage,
			EndPage:    req.EndPage,
			Reflection: req.Reflection,
		}, book.Advance(req.EndPage), nil
	})
	if err != nil {
		return model.ReadingLogEntry{}, err
	}

	s.log.Info("session recorded", zap.Int64("bookID", book.ID),
		zap.Int("startPage", entry.StartPage), zap.Int("endPage", entry.EndPage), zap.Bool("read", book.Read))
	s.publish(ctx, kafka.EventReading{
		EventType: kafka.EventSessionRecorded,
		BookID:    book.ID,
		Title:     book.Title,
		StartPage: entry.StartPage,
		EndPage:   entry.EndPage,
		Progress:  book.Progress(),
	})
	if book.Read && !wasRead {
		s.publish(ctx, kafka.EventReading{EventType: kafka.EventBookCompleted, BookID: book.ID, Title: book.Title, Progress: 100})
	}
	return entry, nil
}

// GenerateReview joins the book's reflections in entry order. A book without
// sessions yields an empty review with no dates.
func (s *Service) GenerateReview(ctx context.Context, bookID int64) (model.Review, error) {
	book, entries, err := s.repo.BookWithEntries(ctx, bookID)
	if err != nil {
		return model.Review{}, err
	}

	review := model.Review{
		BookID:    book.ID,
		Title:     book.Title,
		Entries:   len(entries),
		Completed: book.Read,
	}
	if len(entries) == 0 {
		return review, nil
	}

	start, end := entries[0].Date, entries[0].Date
	reflections := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Date.Before(start.Time) {
			start = e.Date
		}
		if e.Date.After(end.Time) {
			end = e.Date
		}
		reflections = append(reflections, e.Reflection)
	}
	review.StartDate = &start
	review.EndDate = &end
	review.ReviewText = strings.Join(reflections, reviewSeparator)
	return review, nil
}

func (s *Service) ReadingPage(ctx context.Context, bookID int64) (model.ReadingPage, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.ReadingPage{}, err
	}
	return book.ReadingPage(), nil
}

func ComputeProgress(book model.Book) int {
	return book.Progress()
}
