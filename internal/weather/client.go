// Package weather fetches current conditions for the dashboard header and
// caches them. Network timeouts live here; the rendering core downstream
// never blocks on I/O.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/BuKarData/inkframe/internal/dashboard"
)

// Client looks up current weather from an Open-Meteo compatible endpoint.
type Client struct {
	base  string
	http  *http.Client
	cache *Cache
}

func NewClient(base string, cache *Cache) *Client {
	return &Client{
		base:  base,
		http:  &http.Client{Timeout: 10 * time.Second},
		cache: cache,
	}
}

type currentWeatherResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// Current returns the reading for the given coordinates, serving from cache
// within the TTL. Units is "metric" or "imperial".
func (c *Client) Current(ctx context.Context, lat, lon float64, units string) (*dashboard.Weather, error) {
	key := Key{Place: fmt.Sprintf("%.3f,%.3f", lat, lon), Units: units}
	if r, ok := c.cache.Get(key); ok {
		return &dashboard.Weather{Temp: r.Temp, Condition: r.Condition}, nil
	}

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.4f", lat))
	query.Set("longitude", fmt.Sprintf("%.4f", lon))
	query.Set("current_weather", "true")
	if units == "imperial" {
		query.Set("temperature_unit", "fahrenheit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/v1/forecast?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("Couldn't build weather request:\n%w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Weather lookup failed:\n%w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Weather lookup returned status %v", resp.StatusCode)
	}

	var parsed currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("Couldn't parse weather response:\n%w", err)
	}

	temp := int(math.Round(parsed.CurrentWeather.Temperature))
	condition := conditionForCode(parsed.CurrentWeather.WeatherCode)
	c.cache.Put(key, temp, condition)

	slog.Debug("Fetched weather", "place", key.Place, "temp", temp, "condition", condition)
	return &dashboard.Weather{Temp: temp, Condition: condition}, nil
}

// conditionForCode maps WMO weather interpretation codes to short display
// strings. Unknown codes read as cloudy rather than failing.
func conditionForCode(code int) string {
	switch {
	case code < 0:
		return "Cloudy"
	case code == 0:
		return "Clear"
	case code <= 2:
		return "Partly cloudy"
	case code == 3:
		return "Overcast"
	case code <= 48:
		return "Fog"
	case code <= 57:
		return "Drizzle"
	case code <= 67:
		return "Rain"
	case code <= 77:
		return "Snow"
	case code <= 82:
		return "Showers"
	case code <= 86:
		return "Snow showers"
	case code <= 99:
		return "Thunderstorm"
	default:
		return "Cloudy"
	}
}
