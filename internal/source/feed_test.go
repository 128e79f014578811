package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedSource_FetchArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`[{"title": "Night Guard", "source_url": "https://a.example/1"}]`)) //nolint:errcheck
	}))
	defer srv.Close()

	src := NewFeedSource("feed", srv.URL, FeedOptions{RatePerSec: 100})
	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Night Guard", records[0].Title)
}

func TestFeedSource_FetchEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"records": [{"title": "RFP", "lead_type": "rfp", "source_url": "https://a.example/2"}]}`)) //nolint:errcheck
	}))
	defer srv.Close()

	src := NewFeedSource("feed", srv.URL, FeedOptions{RatePerSec: 100})
	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "rfp", records[0].LeadType)
}

func TestFeedSource_RetriesServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`)) //nolint:errcheck
	}))
	defer srv.Close()

	src := NewFeedSource("feed", srv.URL, FeedOptions{RatePerSec: 100})
	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFeedSource_ClientErrorFails(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	src := NewFeedSource("feed", srv.URL, FeedOptions{RatePerSec: 100})
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
}

func TestFeedSource_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json`)) //nolint:errcheck
	}))
	defer srv.Close()

	src := NewFeedSource("feed", srv.URL, FeedOptions{RatePerSec: 100})
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}
