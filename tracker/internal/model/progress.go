package model

import "math"

// State is the derived lifecycle position of a book in the library.
type State string

const (
	StateNew        State = "NEW"
	StateInProgress State = "IN_PROGRESS"
	StateCompleted  State = "COMPLETED"
)

// Pages returns the known page count, or 0 when the catalog had none.
func (b Book) Pages() int {
	if b.TotalPages == nil || *b.TotalPages < 0 {
		return 0
	}
	return *b.TotalPages
}

// Progress is round(lastReadPage / totalPages * 100) in [0, 100].
func (b Book) Progress() int {
	return ComputeProgress(b.LastReadPage, b.Pages())
}

func (b Book) State() State {
	switch {
	case b.Read:
		return StateCompleted
	case b.LastReadPage > 0:
		return StateInProgress
	default:
		return StateNew
	}
}

// Advance applies a finished session to the book. The latest endPage wins and
// read is recomputed from it, so read == (lastReadPage >= totalPages) always holds.
func (b Book) Advance(endPage int) Book {
	b.LastReadPage = endPage
	total := b.Pages()
	b.Read = total > 0 && endPage >= total
	return b
}

// NextStartPage is the page a new session most likely starts on.
func (b Book) NextStartPage() int {
	next := b.LastReadPage + 1
	if total := b.Pages(); total > 0 && next > total {
		return total
	}
	return next
}

func ComputeProgress(lastReadPage, totalPages int) int {
	if totalPages <= 0 || lastReadPage <= 0 {
		return 0
	}
	p := int(math.Round(float64(lastReadPage) / float64(totalPages) * 100))
	if p > 100 {
		return 100
	}
	return p
}

func (b Book) Overview() BookOverview {
	return BookOverview{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ProgressPercent: b.Progress(),
		Read:            b.Read,
		State:           b.State(),
	}
}

func (b Book) ReadingPage() ReadingPage {
	return ReadingPage{
		ID:              b.ID,
		Title:           b.Title,
		LastReadPage:    b.LastReadPage,
		TotalPages:      b.TotalPages,
		ProgressPercent: b.Progress(),
		NextStartPage:   b.NextStartPage(),
		State:           b.State(),
	}
}
