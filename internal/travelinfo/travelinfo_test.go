package travelinfo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestOpenWeatherClient_Current(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "secret", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		_, _ = w.Write([]byte(`{"main":{"temp":28.5,"humidity":70},"weather":[{"description":"light rain"}],"wind":{"speed":3.2},"visibility":8000}`))
	}))
	defer srv.Close()

	c := NewOpenWeatherClient(srv.URL+"/", "secret", srv.Client())
	w, err := c.Current(context.Background(), "Ranchi")
	require.NoError(t, err)

	assert.Equal(t, "Ranchi,Jharkhand,IN", gotQuery)
	assert.Equal(t, Weather{
		Location:    "Ranchi",
		Temperature: "28.5°C",
		Condition:   "Light Rain",
		Humidity:    "70%",
		WindSpeed:   "3.2 m/s",
		Visibility:  "8 km",
		Source:      SourceLive,
	}, w)
}

func TestService_WeatherFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := NewService(NewOpenWeatherClient(srv.URL, "bad", srv.Client()), nil)
	w := s.Weather(context.Background(), "Deoghar")
	assert.Equal(t, SourceStatic, w.Source)
	assert.Equal(t, "Deoghar", w.Location)
	assert.Equal(t, "25°C", w.Temperature)

	w = NewService(nil, nil).Weather(context.Background(), "Ranchi")
	assert.Equal(t, SourceStatic, w.Source)
}

func TestService_Safety(t *testing.T) {
	s := NewService(nil, nil)

	r := s.Safety(context.Background(), "Hazaribagh")
	assert.Equal(t, 7.5, r.SafetyScore)
	assert.Len(t, r.Alerts, 2)
	assert.Equal(t, "1926", r.EmergencyContacts["forest_dept"])
	assert.Equal(t, "1363", r.EmergencyContacts["tourist_helpline"])

	r = s.Safety(context.Background(), "Netarhat")
	assert.Equal(t, "Netarhat", r.Location)
	assert.Equal(t, 8.5, r.SafetyScore)
	assert.Empty(t, r.Alerts)
	assert.NotContains(t, r.EmergencyContacts, "forest_dept")
}

func TestService_Events(t *testing.T) {
	s := NewService(nil, nil)

	ranchi := s.Events(context.Background(), "ranchi")
	require.Len(t, ranchi, 2)
	for _, e := range ranchi {
		assert.Equal(t, "Ranchi", e.Location)
	}
	assert.Len(t, s.Events(context.Background(), "all"), len(events))
	assert.Empty(t, s.Events(context.Background(), "Mumbai"))
}

type fakeDirections struct {
	routes []maps.Route
	err    error
	req    *maps.DirectionsRequest
}

func (f *fakeDirections) Directions(_ context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error) {
	f.req = r
	return f.routes, nil, f.err
}

func TestMapsRouteClient_Route(t *testing.T) {
	fake := &fakeDirections{routes: []maps.Route{{
		Summary: "NH 19",
		Legs: []*maps.Leg{{
			Distance: maps.Distance{HumanReadable: "172 km", Meters: 172000},
			Duration: 3*time.Hour + 45*time.Minute,
		}},
	}}}
	c := &MapsRouteClient{client: fake}

	info, err := c.Route(context.Background(), "Ranchi", "Deoghar")
	require.NoError(t, err)
	assert.Equal(t, "172 km", info.Distance)
	assert.Equal(t, "3h45m0s", info.EstimatedTime)
	assert.Equal(t, "NH 19", info.Summary)
	assert.Equal(t, SourceLive, info.Source)
	assert.Equal(t, maps.TravelModeDriving, fake.req.Mode)
}

func TestService_RouteFallback(t *testing.T) {
	tests := []struct {
		name  string
		route RouteClient
	}{
		{"not configured", nil},
		{"api error", &MapsRouteClient{client: &fakeDirections{err: errors.New("OVER_QUERY_LIMIT")}}},
		{"no route", &MapsRouteClient{client: &fakeDirections{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewService(nil, tt.route).Route(context.Background(), "Ranchi", "Netarhat")
			assert.Equal(t, SourceStatic, info.Source)
			assert.Equal(t, "Ranchi", info.From)
			assert.Equal(t, "Netarhat", info.To)
			assert.Len(t, info.Waypoints, 2)
		})
	}
}
