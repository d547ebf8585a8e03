package model

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type Book struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Author       string    `json:"author" db:"author"`
	ISBN         *string   `json:"isbn" db:"isbn"`
	TotalPages   *int      `json:"totalPages" db:"total_pages"`
	LastReadPage int       `json:"lastReadPage" db:"last_read_page"`
	Read         bool      `json:"read" db:"read"`
	CatalogID    *string   `json:"catalogId,omitempty" db:"catalog_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// CatalogMetadata is what the library keeps from a catalog volume.
type CatalogMetadata struct {
	CatalogID  string `json:"catalogId"`
	Title      string `json:"title" validate:"notblank"`
	Author     string `json:"author"`
	ISBN       string `json:"isbn" validate:"omitempty,max=13"`
	TotalPages int    `json:"totalPages"`
}

type ReadingLogEntry struct {
	ID         int64     `json:"id" db:"id"`
	BookID     int64     `json:"bookId" db:"book_id"`
	Date       Date      `json:"date" db:"date"`
	StartPage  int       `json:"startPage" db:"start_page"`
	EndPage    int       `json:"endPage" db:"end_page"`
	Reflection string    `json:"reflection" db:"reflection"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type RecordSessionRequest struct {
	BookID     int64  `json:"-" validate:"required"`
	StartPage  int    `json:"startPage" validate:"gte=1"`
	EndPage    int    `json:"endPage" validate:"gte=1,gtefield=StartPage"`
	Reflection string `json:"reflection" validate:"notblank"`
}

// Date is a calendar day serialised as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"`+time.DateOnly+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *Date) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into model.Date")
	}
	*d = NewDate(v.Time)
	return nil
}

func (d Date) DateValue() (pgtype.Date, error) {
	return pgtype.Date{Time: d.Time, Valid: true}, nil
}

// BookOverview is one row of the library page.
type BookOverview struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ProgressPercent int    `json:"progressPercent"`
	Read            bool   `json:"read"`
	State           State  `json:"state"`
}

type ReadingPage struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	LastReadPage    int    `json:"lastReadPage"`
	TotalPages      *int   `json:"totalPages"`
	ProgressPercent int    `json:"progressPercent"`
	NextStartPage   int    `json:"nextStartPage"`
	State           State  `json:"state"`
}

type Review struct {
	BookID     int64  `json:"bookId"`
	Title      string `json:"title"`
	StartDate  *Date  `json:"startDate"`
	EndDate    *Date  `json:"endDate"`
	ReviewText string `json:"reviewText"`
	Entries    int    `json:"entries"`
	Completed  bool   `json:"completed"`
}

type CatalogVolume struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	ISBN13    *string  `json:"isbn13"`
	PageCount *int     `json:"pageCount"`
}

type CatalogDetails struct {
	CatalogVolume `json:",inline"`
	Description   *string `json:"description"`
	ThumbnailURL  *string `json:"thumbnailUrl"`
}
