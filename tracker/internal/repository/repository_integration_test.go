package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/reading-tracker/pkg/postgres"
	"github.com/Astemirdum/reading-tracker/tracker/internal/errs"
	"github.com/Astemirdum/reading-tracker/tracker/internal/model"
	"github.com/Astemirdum/reading-tracker/tracker/internal/repository"
	"github.com/Astemirdum/reading-tracker/tracker/migrations"
)

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	dsn := os.Getenv("TRACKER_TEST_DSN")
	if dsn == "" {
		t.Skip("TRACKER_TEST_DSN environment variable not set, skipping integration test")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(pool, migrations.MigrationFiles, "up"))

	repo, err := repository.NewRepository(pool, zap.NewNop())
	require.NoError(t, err)
	return repo
}

func advance(date time.Time, start, end int, reflection string) repository.ApplyFunc {
	return func(book model.Book) (model.ReadingLogEntry, model.Book, error) {
		return model.ReadingLogEntry{
			BookID:     book.ID,
			Date:       model.NewDate(date),
			StartPage:  start,
			EndPage:    end,
			Reflection: reflection,
		}, book.Advance(end), nil
	}
}

func TestRepository_ReadingLog(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	pages := 300

	book, err := repo.CreateBook(ctx, model.Book{Title: "Dune", Author: "Frank Herbert", TotalPages: &pages})
	require.NoError(t, err)
	require.NotZero(t, book.ID)
	require.Equal(t, 0, book.LastReadPage)
	require.False(t, book.Read)

	day := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	entry, updated, err := repo.AppendEntry(ctx, book.ID, advance(day, 1, 50, "note1"))
	require.NoError(t, err)
	require.Equal(t, "2024-03-01", entry.Date.String())
	require.Equal(t, 50, updated.LastReadPage)

	_, updated, err = repo.AppendEntry(ctx, book.ID, advance(day.AddDate(0, 0, 1), 51, 300, "note2"))
	require.NoError(t, err)
	require.True(t, updated.Read)

	got, err := repo.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 300, got.LastReadPage)
	require.True(t, got.Read)

	entries, err := repo.ListEntries(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "note1", entries[0].Reflection)
	require.Equal(t, "note2", entries[1].Reflection)

	snapBook, snapEntries, err := repo.BookWithEntries(ctx, book.ID)
	require.NoError(t, err)
	require.True(t, snapBook.Read)
	require.Len(t, snapEntries, 2)

	deleted, err := repo.DeleteBook(ctx, book.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, _, err = repo.BookWithEntries(ctx, book.ID)
	require.True(t, errors.Is(err, errs.ErrNotFound))

	entries, err = repo.ListEntries(ctx, book.ID)
	require.NoError(t, err)
	require.Empty(t, entries)

	deleted, err = repo.DeleteBook(ctx, book.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestRepository_AppendEntryUnknownBook(t *testing.T) {
	repo := newRepo(t)

	_, _, err := repo.AppendEntry(context.Background(), 1<<40, advance(time.Now(), 1, 2, "x"))
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestRepository_CreateBookISBNTooLong(t *testing.T) {
	repo := newRepo(t)
	isbn := "978-0-441-47812-5"

	_, err := repo.CreateBook(context.Background(), model.Book{Title: "Dune", ISBN: &isbn})
	require.True(t, errors.Is(err, errs.ErrValidation))
}

func TestRepository_AppendEntryRollback(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	book, err := repo.CreateBook(ctx, model.Book{Title: "Rollback"})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = repo.DeleteBook(ctx, book.ID) })

	rejected := errs.Validation("rejected")
	_, _, err = repo.AppendEntry(ctx, book.ID, func(model.Book) (model.ReadingLogEntry, model.Book, error) {
		return model.ReadingLogEntry{}, model.Book{}, rejected
	})
	require.True(t, errors.Is(err, errs.ErrValidation))

	entries, err := repo.ListEntries(ctx, book.ID)
	require.NoError(t, err)
	require.Empty(t, entries)
}
