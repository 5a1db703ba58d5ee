package travelinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/proraahi-core/server/internal/core/result"
	"github.com/proraahi-core/server/internal/metrics"
	logx "github.com/proraahi-core/server/pkg/logger"
)

// Data sources reported with every payload.
const (
	SourceLive   = "live"
	SourceStatic = "static"
)

type Weather struct {
	Location    string `json:"location"`
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"wind_speed"`
	Visibility  string `json:"visibility"`
	Source      string `json:"source"`
}

type WeatherClient interface {
	Current(ctx context.Context, location string) (Weather, error)
}

// OpenWeatherClient reads current conditions from the OpenWeatherMap REST API.
type OpenWeatherClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewOpenWeatherClient(baseURL, apiKey string, hc *http.Client) *OpenWeatherClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &OpenWeatherClient{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, http: hc}
}

type owmResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility int `json:"visibility"`
}

func (c *OpenWeatherClient) Current(ctx context.Context, location string) (Weather, error) {
	q := url.Values{}
	q.Set("q", location+",Jharkhand,IN")
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return Weather{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Weather{}, fmt.Errorf("openweather request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Weather{}, fmt.Errorf("openweather status %d", resp.StatusCode)
	}

	var body owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Weather{}, fmt.Errorf("decode openweather: %w", err)
	}
	if len(body.Weather) == 0 {
		return Weather{}, fmt.Errorf("openweather: no conditions for %q", location)
	}

	return Weather{
		Location:    location,
		Temperature: fmt.Sprintf("%g°C", body.Main.Temp),
		Condition:   titleCase(body.Weather[0].Description),
		Humidity:    fmt.Sprintf("%d%%", body.Main.Humidity),
		WindSpeed:   fmt.Sprintf("%g m/s", body.Wind.Speed),
		Visibility:  fmt.Sprintf("%g km", float64(body.Visibility)/1000),
		Source:      SourceLive,
	}, nil
}

func staticWeather(location string) Weather {
	return Weather{
		Location:    location,
		Temperature: "25°C",
		Condition:   "Partly Cloudy",
		Humidity:    "65%",
		WindSpeed:   "12 km/h",
		Visibility:  "10 km",
		Source:      SourceStatic,
	}
}

// Weather returns current conditions, or the static report when the upstream is not
// configured or fails.
func (s *Service) Weather(ctx context.Context, location string) Weather {
	return result.Try(func() (Weather, error) {
		if s.weather == nil {
			return Weather{}, errUpstreamDisabled
		}
		return s.weather.Current(ctx, location)
	}).OrElse(func(err error) Weather {
		if !errors.Is(err, errUpstreamDisabled) {
			logx.Warn().Err(err).Str("location", location).Msg("Weather lookup failed; serving static data")
			metrics.RecordFallback("weather", "upstream_error")
		}
		return staticWeather(location)
	})
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
