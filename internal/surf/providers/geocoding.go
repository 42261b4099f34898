package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/surfwatch/surfcast/internal/surf"
	"github.com/surfwatch/surfcast/pkg/log"
)

// GeocodingResolver resolves place names through the Open-Meteo geocoding API.
// Every failure mode (no candidates, transport error, malformed payload) folds
// into surf.ErrLocationNotFound; the caller never sees the distinction.
type GeocodingResolver struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewGeocodingResolver creates a resolver against the given base URL
// (e.g. https://geocoding-api.open-meteo.com/v1).
func NewGeocodingResolver(client *http.Client, baseURL string) *GeocodingResolver {
	return &GeocodingResolver{
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("geocoding"),
	}
}

// Resolve looks up the single best match for a place name.
func (g *GeocodingResolver) Resolve(ctx context.Context, name string) (surf.Coordinates, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", name)
		values.Set("count", "1")
		values.Set("language", "en")
		values.Set("format", "json")

		u := fmt.Sprintf("%s/search?%s", g.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, g.client, g.circuit, buildRequest)
	if err != nil {
		log.Warnf("geocoding request failed for %q: %v", name, err)
		return surf.Coordinates{}, surf.ErrLocationNotFound
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Warnf("geocoding response malformed for %q: %v", name, err)
		return surf.Coordinates{}, surf.ErrLocationNotFound
	}

	if len(payload.Results) == 0 {
		return surf.Coordinates{}, surf.ErrLocationNotFound
	}

	return surf.Coordinates{
		Latitude:  payload.Results[0].Latitude,
		Longitude: payload.Results[0].Longitude,
	}, nil
}
