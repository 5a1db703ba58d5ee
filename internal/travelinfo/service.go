// Package travelinfo serves the real-time travel widgets: weather, safety, local
// events and route information. Upstream failures fall back to static data.
package travelinfo

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var errUpstreamDisabled = errors.New("upstream not configured")

type Config struct {
	OpenWeatherAPIKey  string        `envconfig:"OPENWEATHER_API_KEY"`
	OpenWeatherBaseURL string        `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org"`
	GoogleMapsAPIKey   string        `envconfig:"GOOGLE_MAPS_API_KEY"`
	Timeout            time.Duration `envconfig:"TRAVELINFO_TIMEOUT" default:"10s"`
}

// Service aggregates the travel info providers. A nil weather or route client means the
// static data is always served.
type Service struct {
	weather WeatherClient
	routes  RouteClient
}

func NewService(weather WeatherClient, routes RouteClient) *Service {
	return &Service{weather: weather, routes: routes}
}

// New builds the service from configuration. Missing keys disable the matching upstream.
func (c Config) New() (*Service, error) {
	var (
		weather WeatherClient
		routes  RouteClient
	)
	if c.OpenWeatherAPIKey != "" {
		weather = NewOpenWeatherClient(c.OpenWeatherBaseURL, c.OpenWeatherAPIKey, &http.Client{Timeout: c.Timeout})
	}
	if c.GoogleMapsAPIKey != "" {
		rc, err := NewMapsRouteClient(c.GoogleMapsAPIKey)
		if err != nil {
			return nil, fmt.Errorf("route client: %w", err)
		}
		routes = rc
	}
	return NewService(weather, routes), nil
}
