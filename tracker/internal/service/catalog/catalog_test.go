package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/reading-tracker/pkg/circuit_breaker"
	"github.com/Astemirdum/reading-tracker/tracker/internal/errs"
	"github.com/Astemirdum/reading-tracker/tracker/internal/service/catalog"
)

const searchBody = `{
  "items": [
    {
      "id": "zyTCAlFPjgYC",
      "volumeInfo": {
        "title": "The Google Story",
        "authors": ["David A. Vise", "Mark Malseed"],
        "pageCount": 207,
        "industryIdentifiers": [
          {"type": "ISBN_10", "identifier": "055380457X"},
          {"type": "ISBN_13", "identifier": "9780553804577"}
        ]
      }
    },
    {"id": "noinfo"},
    {
      "id": "bare",
      "volumeInfo": {"title": "Bare Volume"}
    }
  ]
}`

const detailsBody = `{
  "id": "zyTCAlFPjgYC",
  "volumeInfo": {
    "title": "The Google Story",
    "authors": ["David A. Vise", "Mark Malseed"],
    "pageCount": 207,
    "description": "Here is the story behind one of the most remarkable Internet successes.",
    "industryIdentifiers": [{"type": "ISBN_13", "identifier": "9780553804577"}],
    "imageLinks": {"thumbnail": "http://books.google.com/thumb.jpg"}
  }
}`

func newClient(t *testing.T, h http.HandlerFunc) *catalog.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return catalog.New(catalog.Config{
		BaseURL: srv.URL,
		APIKey:  "secret",
		Timeout: time.Second,
		Breaker: circuit_breaker.Config{RecordLength: 10, Timeout: time.Minute, Percentile: 0.5, RecoveryRequests: 1},
	}, zap.NewNop())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestClient_Search(t *testing.T) {
	t.Parallel()
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "google story", r.URL.Query().Get("q"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		writeJSON(w, http.StatusOK, searchBody)
	})

	volumes, err := c.Search(context.Background(), " google story ")
	require.NoError(t, err)
	require.Len(t, volumes, 2)

	require.Equal(t, "zyTCAlFPjgYC", volumes[0].ID)
	require.Equal(t, []string{"David A. Vise", "Mark Malseed"}, volumes[0].Authors)
	require.NotNil(t, volumes[0].ISBN13)
	require.Equal(t, "9780553804577", *volumes[0].ISBN13)
	require.Equal(t, 207, *volumes[0].PageCount)

	require.Equal(t, "bare", volumes[1].ID)
	require.Empty(t, volumes[1].Authors)
	require.Nil(t, volumes[1].ISBN13)
	require.Nil(t, volumes[1].PageCount)
}

func TestClient_SearchNoItems(t *testing.T) {
	t.Parallel()
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"kind":"books#volumes","totalItems":0}`)
	})
	volumes, err := c.Search(context.Background(), "nothing matches")
	require.NoError(t, err)
	require.Empty(t, volumes)
}

func TestClient_SearchErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		query   string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name:    "blank query",
			query:   "  ",
			handler: func(w http.ResponseWriter, r *http.Request) { t.Error("unexpected call") },
			wantErr: errs.ErrValidation,
		},
		{
			name:  "server error",
			query: "dune",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusServiceUnavailable, `{"error":{"code":503}}`)
			},
			wantErr: errs.ErrCatalogUnavailable,
		},
		{
			name:  "malformed body",
			query: "dune",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `{"items": [`)
			},
			wantErr: errs.ErrCatalogUnavailable,
		},
		{
			name:  "html page with status ok",
			query: "dune",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte(`<html>captive portal</html>`))
			},
			wantErr: errs.ErrCatalogUnavailable,
		},
		{
			name:  "truncated body without content type",
			query: "dune",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header()["Content-Type"] = nil
				_, _ = w.Write([]byte(`{"items": [`))
			},
			wantErr: errs.ErrCatalogUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newClient(t, tt.handler)
			_, err := c.Search(context.Background(), tt.query)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_FetchDetails(t *testing.T) {
	t.Parallel()
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes/zyTCAlFPjgYC", r.URL.Path)
		writeJSON(w, http.StatusOK, detailsBody)
	})

	details, err := c.FetchDetails(context.Background(), "zyTCAlFPjgYC")
	require.NoError(t, err)
	require.Equal(t, "The Google Story", details.Title)
	require.NotNil(t, details.Description)
	require.NotNil(t, details.ThumbnailURL)
	require.Equal(t, "http://books.google.com/thumb.jpg", *details.ThumbnailURL)

	md := catalog.Metadata(details)
	require.Equal(t, "zyTCAlFPjgYC", md.CatalogID)
	require.Equal(t, "David A. Vise, Mark Malseed", md.Author)
	require.Equal(t, "9780553804577", md.ISBN)
	require.Equal(t, 207, md.TotalPages)
}

func TestClient_FetchDetailsWithoutVolumeInfo(t *testing.T) {
	t.Parallel()
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"x"}`)
	})
	_, err := c.FetchDetails(context.Background(), "x")
	require.ErrorIs(t, err, errs.ErrCatalogUnavailable)
}

func TestClient_OpenBreaker(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusInternalServerError, `{}`)
	}))
	t.Cleanup(srv.Close)
	c := catalog.New(catalog.Config{
		BaseURL: srv.URL,
		Timeout: time.Second,
		Breaker: circuit_breaker.Config{RecordLength: 2, Timeout: time.Minute, Percentile: 1, RecoveryRequests: 1},
	}, zap.NewNop())

	for i := 0; i < 2; i++ {
		_, err := c.Search(context.Background(), "dune")
		require.ErrorIs(t, err, errs.ErrCatalogUnavailable)
	}
	require.Equal(t, circuit_breaker.Open, c.CB().State())

	_, err := c.Search(context.Background(), "dune")
	require.ErrorIs(t, err, errs.ErrCatalogUnavailable)
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	require.Equal(t, int32(2), calls.Load())
}
