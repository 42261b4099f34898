package providers

import (
	"context"
	"errors"

	"github.com/kelvins/geocoder"

	"github.com/surfwatch/surfcast/internal/surf"
	"github.com/surfwatch/surfcast/pkg/log"
)

// GoogleResolver resolves place names through the Google geocoding API.
// It is only constructed when an API key is configured and serves as a
// fallback behind the Open-Meteo resolver.
type GoogleResolver struct{}

// NewGoogleResolver configures the underlying library with the API key.
func NewGoogleResolver(apiKey string) *GoogleResolver {
	geocoder.ApiKey = apiKey
	return &GoogleResolver{}
}

// Resolve geocodes a city name. Any failure folds into surf.ErrLocationNotFound.
func (g *GoogleResolver) Resolve(ctx context.Context, name string) (surf.Coordinates, error) {
	if ctx.Err() != nil {
		return surf.Coordinates{}, surf.ErrLocationNotFound
	}

	loc, err := geocoder.Geocoding(geocoder.Address{City: name})
	if err != nil {
		log.Warnf("google geocoding failed for %q: %v", name, err)
		return surf.Coordinates{}, surf.ErrLocationNotFound
	}

	return surf.Coordinates{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}, nil
}

// FallbackResolver tries each resolver in order and returns the first hit.
type FallbackResolver struct {
	resolvers []surf.Resolver
}

// NewFallbackResolver chains resolvers; order matters.
func NewFallbackResolver(resolvers ...surf.Resolver) *FallbackResolver {
	return &FallbackResolver{resolvers: resolvers}
}

// Resolve walks the chain until a resolver succeeds.
func (f *FallbackResolver) Resolve(ctx context.Context, name string) (surf.Coordinates, error) {
	for _, r := range f.resolvers {
		coords, err := r.Resolve(ctx, name)
		if err == nil {
			return coords, nil
		}
		if !errors.Is(err, surf.ErrLocationNotFound) {
			return surf.Coordinates{}, err
		}
	}
	return surf.Coordinates{}, surf.ErrLocationNotFound
}
