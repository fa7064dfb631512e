// Package location abstracts how the client obtains a device position.
// The additional-info screen needs a coordinate pair before the profile can
// be submitted; where that pair comes from is an injected concern so tests
// can use a fixed fake.
package location

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnavailable = errors.New("location unavailable")

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// String renders the "lat,lon" form the API expects in the profile payload.
func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.Latitude, c.Longitude)
}

// Parse reads a "lat,lon" pair.
func Parse(s string) (Coordinates, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ",", 2)
	if len(parts) != 2 {
		return Coordinates{}, fmt.Errorf("%w: expected lat,lon", ErrUnavailable)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: bad latitude: %v", ErrUnavailable, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: bad longitude: %v", ErrUnavailable, err)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Coordinates{}, fmt.Errorf("%w: out of range", ErrUnavailable)
	}
	return Coordinates{Latitude: lat, Longitude: lon}, nil
}

// Locator yields the current device position.
type Locator interface {
	Current(ctx context.Context) (Coordinates, error)
}
