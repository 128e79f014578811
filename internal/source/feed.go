package source

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// FeedOptions configures a FeedSource.
type FeedOptions struct {
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	// RatePerSec throttles requests to the feed host, including retries.
	RatePerSec float64
}

// FeedSource fetches raw records from a JSON feed endpoint. The endpoint
// must return either a bare JSON array of records or an object with a
// "records" array.
type FeedSource struct {
	name    string
	url     string
	client  *http.Client
	limiter *rate.Limiter
	opts    FeedOptions
}

// NewFeedSource creates a FeedSource for the given endpoint.
func NewFeedSource(name, url string, opts FeedOptions) *FeedSource {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "leads-cli/1.0"
	}
	if opts.RatePerSec <= 0 {
		opts.RatePerSec = 2
	}
	return &FeedSource{
		name:    name,
		url:     url,
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(rate.Limit(opts.RatePerSec), 1),
		opts:    opts,
	}
}

func (s *FeedSource) Name() string { return s.name }

type feedEnvelope struct {
	Records []RawRecord `json:"records"`
}

// Fetch retrieves and decodes the feed, retrying transient failures with
// linear backoff.
func (s *FeedSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	body, err := s.get(ctx)
	if err != nil {
		return nil, err
	}

	var records []RawRecord
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}
	var env feedEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, eris.Wrapf(err, "source: decode feed %s", s.url)
	}
	return env.Records, nil
}

func (s *FeedSource) get(ctx context.Context) ([]byte, error) {
	var lastErr error
	for attempt := range s.opts.MaxRetries {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "source: rate limiter wait")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
		if err != nil {
			return nil, eris.Wrapf(err, "source: build request %s", s.url)
		}
		req.Header.Set("User-Agent", s.opts.UserAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = err
			zap.L().Warn("feed request failed, retrying",
				zap.String("source", s.name),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			s.backoff(ctx, attempt)
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK && readErr == nil:
			return body, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = eris.Errorf("source: feed %s returned %d", s.url, resp.StatusCode)
			zap.L().Warn("feed returned retryable status",
				zap.String("source", s.name),
				zap.Int("status", resp.StatusCode),
				zap.Int("attempt", attempt+1),
			)
			s.backoff(ctx, attempt)
		case readErr != nil:
			lastErr = readErr
			s.backoff(ctx, attempt)
		default:
			return nil, eris.Errorf("source: feed %s returned %d", s.url, resp.StatusCode)
		}
	}
	return nil, eris.Wrapf(lastErr, "source: fetch %s after %d attempts", s.url, s.opts.MaxRetries)
}

func (s *FeedSource) backoff(ctx context.Context, attempt int) {
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(attempt+1) * 500 * time.Millisecond):
	}
}
