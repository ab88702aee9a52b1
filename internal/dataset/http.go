package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

// ErrFeedUnavailable is returned while the circuit breaker is open.
var ErrFeedUnavailable = errors.New("activity feed unavailable")

// maxFeedBytes bounds a feed response.
const maxFeedBytes = 32 << 20

// HTTPSource fetches the activity list from a JSON feed. Repeated
// failures open a circuit breaker so a dead feed is not hammered on every
// refresh.
type HTTPSource struct {
	URL     string
	APIKey  string
	Client  *http.Client
	Timeout time.Duration
	Log     zerolog.Logger

	breaker *gobreaker.CircuitBreaker[[]byte]
}

// NewHTTPSource creates a feed source.
func NewHTTPSource(url, apiKey string, timeout time.Duration, log zerolog.Logger) *HTTPSource {
	s := &HTTPSource{
		URL:     url,
		APIKey:  apiKey,
		Client:  &http.Client{},
		Timeout: timeout,
		Log:     log,
	}
	s.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "activity-feed",
		MaxRequests: 1,
		Interval:    5 * time.Minute,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			ev := log.Info()
			if to == gobreaker.StateOpen {
				ev = log.Warn()
			}
			ev.Str("breaker", name).Stringer("from", from).Stringer("to", to).Msg("circuit breaker state changed")
		},
	})
	return s
}

// Name identifies the source in logs.
func (s *HTTPSource) Name() string { return "http:" + s.URL }

// Activities fetches and normalizes the feed.
func (s *HTTPSource) Activities(ctx context.Context) ([]core.Activity, error) {
	body, err := s.breaker.Execute(func() ([]byte, error) {
		return s.fetch(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	if err != nil {
		return nil, err
	}
	acts, err := DecodeActivities(body)
	if err != nil {
		return nil, err
	}
	return Normalize(acts, s.Log), nil
}

func (s *HTTPSource) fetch(ctx context.Context) ([]byte, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.APIKey != "" {
		req.Header.Set("apikey", s.APIKey)
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch activities: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read activities: %w", err)
	}
	return body, nil
}
