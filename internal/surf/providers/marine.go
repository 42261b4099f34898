package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"

	"github.com/surfwatch/surfcast/internal/surf"
	"github.com/surfwatch/surfcast/pkg/log"
)

// hourlyFields is the fixed set of marine variables every fetch requests.
const hourlyFields = "wave_height,wave_direction,wave_period,swell_wave_height,swell_wave_direction,swell_wave_period"

// MarineClient fetches hourly wave and swell forecasts from the Open-Meteo
// marine API.
type MarineClient struct {
	baseURL      string
	timezone     string
	forecastDays int
	client       *http.Client
	circuit      *gobreaker.CircuitBreaker
}

// NewMarineClient creates a client against the given base URL
// (e.g. https://marine-api.open-meteo.com/v1). forecastDays applies when a
// fetch has no explicit date range.
func NewMarineClient(client *http.Client, baseURL, timezone string, forecastDays int) *MarineClient {
	if forecastDays <= 0 {
		forecastDays = 3
	}
	return &MarineClient{
		baseURL:      baseURL,
		timezone:     timezone,
		forecastDays: forecastDays,
		client:       client,
		circuit:      newBreaker("marine"),
	}
}

// Fetch retrieves the hourly series for a position. Failures and malformed
// payloads surface as surf.ErrUnavailable.
func (m *MarineClient) Fetch(ctx context.Context, coords surf.Coordinates, opts surf.FetchOptions) (*surf.HourlyData, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
		values.Set("hourly", hourlyFields)
		values.Set("timezone", m.timezone)

		if opts.StartDate != "" {
			values.Set("start_date", opts.StartDate)
			end := opts.EndDate
			if end == "" {
				end = opts.StartDate
			}
			values.Set("end_date", end)
		} else {
			values.Set("forecast_days", strconv.Itoa(m.forecastDays))
		}

		u := fmt.Sprintf("%s/marine?%s", m.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, m.client, m.circuit, buildRequest)
	if err != nil {
		log.Warnf("marine fetch failed for (%.4f, %.4f): %v", coords.Latitude, coords.Longitude, err)
		return nil, surf.ErrUnavailable
	}
	defer resp.Body.Close()

	var payload struct {
		Hourly *surf.HourlyData `json:"hourly"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Warnf("marine response malformed for (%.4f, %.4f): %v", coords.Latitude, coords.Longitude, err)
		return nil, surf.ErrUnavailable
	}

	if payload.Hourly == nil {
		return nil, surf.ErrNoData
	}
	return payload.Hourly, nil
}
