package locate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// HTTP asks a JSON geolocation endpoint for the caller's position. It
// accepts latitude/longitude or lat/lon (or lon) field names.
type HTTP struct {
	URL    string
	Client *http.Client
}

type httpPosition struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Lng       *float64 `json:"lng"`
	Accuracy  float64  `json:"accuracy"`
}

// Locate performs one request.
func (h *HTTP) Locate(ctx context.Context) (Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return Position{}, fmt.Errorf("build locate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Position{}, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return Position{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Position{}, fmt.Errorf("%w: %s", ErrPermissionDenied, resp.Status)
	case resp.StatusCode == http.StatusGatewayTimeout || resp.StatusCode == http.StatusRequestTimeout:
		return Position{}, fmt.Errorf("%w: %s", ErrTimeout, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return Position{}, fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return Position{}, fmt.Errorf("%w: read: %v", ErrUnavailable, err)
	}
	var hp httpPosition
	if err := json.Unmarshal(body, &hp); err != nil {
		return Position{}, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}

	lat, lon := first(hp.Latitude, hp.Lat), first(hp.Longitude, hp.Lon, hp.Lng)
	if lat == nil || lon == nil {
		return Position{}, fmt.Errorf("%w: response has no coordinates", ErrUnavailable)
	}
	return Position{Lat: *lat, Lon: *lon, Accuracy: hp.Accuracy}, nil
}

func first(vs ...*float64) *float64 {
	for _, v := range vs {
		if v != nil {
			return v
		}
	}
	return nil
}
