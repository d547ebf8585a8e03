package model_test

import (
	"testing"

	"github.com/Astemirdum/reading-tracker/tracker/internal/model"
	"github.com/stretchr/testify/require"
)

func pages(n int) *int { return &n }

func TestComputeProgress(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name            string
		lastRead, total int
		want            int
	}{
		{name: "unknown total", lastRead: 10, total: 0, want: 0},
		{name: "nothing read", lastRead: 0, total: 300, want: 0},
		{name: "rounds half up", lastRead: 50, total: 300, want: 17},
		{name: "rounds down", lastRead: 1, total: 300, want: 0},
		{name: "complete", lastRead: 300, total: 300, want: 100},
		{name: "clamped", lastRead: 400, total: 300, want: 100},
		{name: "negative", lastRead: -5, total: 300, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, model.ComputeProgress(tt.lastRead, tt.total))
		})
	}
}

func TestBook_Advance(t *testing.T) {
	t.Parallel()
	book := model.Book{ID: 1, Title: "Dune", TotalPages: pages(300)}
	require.Equal(t, model.StateNew, book.State())
	require.Equal(t, 1, book.NextStartPage())

	book = book.Advance(50)
	require.Equal(t, 50, book.LastReadPage)
	require.False(t, book.Read)
	require.Equal(t, model.StateInProgress, book.State())
	require.Equal(t, 17, book.Progress())
	require.Equal(t, 51, book.NextStartPage())

	book = book.Advance(300)
	require.True(t, book.Read)
	require.Equal(t, model.StateCompleted, book.State())
	require.Equal(t, 100, book.Progress())
	require.Equal(t, 300, book.NextStartPage())

	book = book.Advance(20)
	require.Equal(t, 20, book.LastReadPage)
	require.False(t, book.Read)
}

func TestBook_AdvanceUnknownTotal(t *testing.T) {
	t.Parallel()
	book := model.Book{ID: 2, Title: "Untitled"}.Advance(1000)
	require.Equal(t, 1000, book.LastReadPage)
	require.False(t, book.Read)
	require.Equal(t, 0, book.Progress())
	require.Equal(t, model.StateInProgress, book.State())
	require.Equal(t, 1001, book.NextStartPage())
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()
	var d model.Date
	require.NoError(t, d.UnmarshalJSON([]byte(`"2026-10-14"`)))
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"2026-10-14"`, string(b))
	require.Error(t, d.UnmarshalJSON([]byte(`"14.10.2026"`)))
}
