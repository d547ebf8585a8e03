package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Astemirdum/reading-tracker/tracker/internal/errs"
	"github.com/Astemirdum/reading-tracker/tracker/internal/model"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

// ApplyFunc receives the locked book and returns the entry to append together
// with the book state after that entry. Its error aborts the transaction as is.
type ApplyFunc func(book model.Book) (model.ReadingLogEntry, model.Book, error)

type Repository interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	DeleteBook(ctx context.Context, id int64) (bool, error)
	ListEntries(ctx context.Context, bookID int64) ([]model.ReadingLogEntry, error)
	BookWithEntries(ctx context.Context, bookID int64) (model.Book, []model.ReadingLogEntry, error)
	AppendEntry(ctx context.Context, bookID int64, apply ApplyFunc) (model.ReadingLogEntry, model.Book, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil pool")
	}
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName       = `books`
	readingLogsTableName = `reading_logs`
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	bookColumns  = []string{"id", "title", "author", "isbn", "total_pages", "last_read_page", "read", "catalog_id", "created_at"}
	entryColumns = []string{"id", "book_id", "date", "start_page", "end_page", "reflection", "created_at"}
)

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "total_pages", "last_read_page", "read", "catalog_id").
		Values(book.Title, book.Author, book.ISBN, book.TotalPages, 0, false, book.CatalogID).
		Suffix("returning " + strings.Join(bookColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	created, err := collectOne[model.Book](ctx, r.db, query, args)
	if err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.CheckViolation:
				return model.Book{}, errs.Validation("book violates %s", pgErr.ConstraintName)
			case pgerrcode.StringDataRightTruncationDataException:
				return model.Book{}, errs.Validation("book field too long: %s", pgErr.Message)
			}
		}
		return model.Book{}, errs.Storage("create book", err)
	}
	return created, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return r.getBook(ctx, r.db, id, false)
}

func (r *repository) getBook(ctx context.Context, q querier, id int64, forUpdate bool) (model.Book, error) {
	b := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1)
	if forUpdate {
		b = b.Suffix("for update")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return model.Book{}, err
	}

	book, err := collectOne[model.Book](ctx, q, query, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.NotFound("book %d", id)
		}
		r.log.Error("GetBook", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.Book{}, errs.Storage("get book", err)
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errs.Storage("list books", err)
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, errs.Storage("list books", fmt.Errorf("pgx.CollectRows: %w", err))
	}
	return books, nil
}

// DeleteBook removes the book's reading logs and then the book in one
// transaction. It reports whether a book row existed.
func (r *repository) DeleteBook(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		query, args, err := qb.Delete(readingLogsTableName).Where(sq.Eq{"book_id": id}).ToSql()
		if err != nil {
			return err
		}
		logs, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("delete reading logs: %w", err)
		}

		query, args, err = qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return err
		}
		books, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("delete book: %w", err)
		}
		deleted = books.RowsAffected() > 0
		r.log.Debug("DeleteBook", zap.Int64("id", id),
			zap.Int64("logs", logs.RowsAffected()), zap.Bool("deleted", deleted))
		return nil
	})
	if err != nil {
		r.log.Error("DeleteBook", zap.Int64("id", id), zap.Error(err))
		return false, errs.Storage("delete book", err)
	}
	return deleted, nil
}

func (r *repository) ListEntries(ctx context.Context, bookID int64) ([]model.ReadingLogEntry, error) {
	return r.listEntries(ctx, r.db, bookID)
}

func (r *repository) listEntries(ctx context.Context, q querier, bookID int64) ([]model.ReadingLogEntry, error) {
	query, args, err := qb.Select(entryColumns...).
		From(readingLogsTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, errs.Storage("list entries", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ReadingLogEntry])
	if err != nil {
		return nil, errs.Storage("list entries", fmt.Errorf("pgx.CollectRows: %w", err))
	}
	return entries, nil
}

// BookWithEntries reads the book and its reading log from one snapshot.
func (r *repository) BookWithEntries(ctx context.Context, bookID int64) (model.Book, []model.ReadingLogEntry, error) {
	var (
		book    model.Book
		entries []model.ReadingLogEntry
	)
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := pgx.BeginTxFunc(ctx, r.db, opts, func(tx pgx.Tx) error {
		var err error
		if book, err = r.getBook(ctx, tx, bookID, false); err != nil {
			return err
		}
		entries, err = r.listEntries(ctx, tx, bookID)
		return err
	})
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) && !errors.Is(err, errs.ErrStorage) {
			err = errs.Storage("book with entries", err)
		}
		return model.Book{}, nil, err
	}
	return book, entries, nil
}

// AppendEntry locks the book row, lets apply validate and compute the new
// state, then inserts the entry and updates the book in the same transaction.
func (r *repository) AppendEntry(ctx context.Context, bookID int64, apply ApplyFunc) (model.ReadingLogEntry, model.Book, error) {
	var (
		saved   model.ReadingLogEntry
		updated model.Book
	)
	err := pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		book, err := r.getBook(ctx, tx, bookID, true)
		if err != nil {
			return err
		}
		entry, next, err := apply(book)
		if err != nil {
			return err
		}

		query, args, err := qb.Insert(readingLogsTableName).
			Columns("book_id", "date", "start_page", "end_page", "reflection").
			Values(book.ID, entry.Date.Time, entry.StartPage, entry.EndPage, entry.Reflection).
			Suffix("returning " + strings.Join(entryColumns, ", ")).
			ToSql()
		if err != nil {
			return err
		}
		if saved, err = collectOne[model.ReadingLogEntry](ctx, tx, query, args); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return errs.NotFound("book %d", bookID)
			}
			return errs.Storage("insert entry", err)
		}

		query, args, err = qb.Update(booksTableName).
			Set("last_read_page", next.LastReadPage).
			Set("read", next.Read).
			Where(sq.Eq{"id": book.ID}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, query, args...); err != nil {
			return errs.Storage("update book progress", err)
		}
		updated = next
		return nil
	})
	if err != nil {
		if !errors.Is(err, errs.ErrValidation) && !errors.Is(err, errs.ErrNotFound) && !errors.Is(err, errs.ErrStorage) {
			err = errs.Storage("append entry", err)
		}
		return model.ReadingLogEntry{}, model.Book{}, err
	}
	return saved, updated, nil
}
