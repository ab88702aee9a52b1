package locate

import (
	"context"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// GeoIP looks an address up in a MaxMind City database.
type GeoIP struct {
	db *geoip2.Reader
	ip net.IP
}

// OpenGeoIP opens the database at path for lookups of ip.
func OpenGeoIP(path, ip string) (*GeoIP, error) {
	addr := net.ParseIP(ip)
	if addr == nil {
		return nil, fmt.Errorf("geoip: invalid address %q", ip)
	}
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: open %s: %w", path, err)
	}
	return &GeoIP{db: db, ip: addr}, nil
}

// Close releases the database.
func (g *GeoIP) Close() error { return g.db.Close() }

// Locate resolves the configured address.
func (g *GeoIP) Locate(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	rec, err := g.db.City(g.ip)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	loc := rec.Location
	if loc.Latitude == 0 && loc.Longitude == 0 && rec.Country.IsoCode == "" {
		return Position{}, fmt.Errorf("%w: %s not in database", ErrUnavailable, g.ip)
	}
	return Position{
		Lat:      loc.Latitude,
		Lon:      loc.Longitude,
		Accuracy: float64(loc.AccuracyRadius) * 1000,
	}, nil
}
