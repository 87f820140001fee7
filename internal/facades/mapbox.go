package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sbilibin2017/gw-navigation/internal/logger"
	"github.com/sbilibin2017/gw-navigation/internal/models"
)

// Error variables
var (
	ErrTokenNotConfigured = errors.New("mapbox access token not configured")
	ErrUpstream           = errors.New("mapbox request failed")
	ErrNoRoutes           = errors.New("no routes found")
)

// DefaultBaseURL is the public Mapbox API endpoint.
const DefaultBaseURL = "https://api.mapbox.com"

// geocodeLimit caps the number of matches requested upstream.
const geocodeLimit = 5

// MapboxFacade calls the Mapbox geocoding and directions HTTP APIs and
// normalizes their responses. Calls are single-shot: no retries, no
// backoff, whatever timeout the injected client carries.
type MapboxFacade struct {
	client      *http.Client
	baseURL     string
	accessToken string
}

// NewMapboxFacade creates a new facade with an HTTP client and credentials.
func NewMapboxFacade(client *http.Client, baseURL, accessToken string) *MapboxFacade {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &MapboxFacade{
		client:      client,
		baseURL:     baseURL,
		accessToken: accessToken,
	}
}

// geocodeResponse mirrors the relevant part of the Mapbox geocoding reply.
type geocodeResponse struct {
	Features []struct {
		ID        string    `json:"id"`
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"` // [lng, lat]
	} `json:"features"`
}

// Geocode resolves a free-text query to at most five matches, preserving
// the upstream relevance order. Mapbox reports each match center as a
// [lng, lat] pair; the result flattens it into separate lat/lng fields.
func (f *MapboxFacade) Geocode(ctx context.Context, query string) ([]models.GeocodeResult, error) {
	if f.accessToken == "" {
		return nil, ErrTokenNotConfigured
	}

	reqURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?access_token=%s&limit=%d",
		f.baseURL, url.PathEscape(query), url.QueryEscape(f.accessToken), geocodeLimit)

	var data geocodeResponse
	if err := f.getJSON(ctx, reqURL, &data); err != nil {
		logger.Log.Errorw("mapbox geocoding request failed", "query", query, "error", err)
		return nil, err
	}

	results := make([]models.GeocodeResult, 0, len(data.Features))
	for _, feature := range data.Features {
		if len(feature.Center) != 2 {
			continue
		}
		results = append(results, models.GeocodeResult{
			ID:      feature.ID,
			Address: feature.PlaceName,
			Lat:     feature.Center[1],
			Lng:     feature.Center[0],
		})
	}

	return results, nil
}

// directionsResponse mirrors the relevant part of the Mapbox directions reply.
type directionsResponse struct {
	Routes []struct {
		Distance float64              `json:"distance"`
		Duration float64              `json:"duration"`
		Geometry models.RouteGeometry `json:"geometry"`
	} `json:"routes"`
}

// Directions fetches driving routes between two points and returns the
// first (default) candidate, discarding alternates. The geometry is passed
// through in the provider's [lng, lat] order, unmodified.
func (f *MapboxFacade) Directions(ctx context.Context, startLat, startLng, endLat, endLng float64) (*models.Route, error) {
	if f.accessToken == "" {
		return nil, ErrTokenNotConfigured
	}

	// Mapbox addresses waypoints as lng,lat pairs. Coordinates are
	// formatted with their full precision, not a fixed decimal count.
	reqURL := fmt.Sprintf("%s/directions/v5/mapbox/driving/%s,%s;%s,%s?access_token=%s&geometries=geojson&overview=full",
		f.baseURL,
		formatCoord(startLng), formatCoord(startLat),
		formatCoord(endLng), formatCoord(endLat),
		url.QueryEscape(f.accessToken))

	var data directionsResponse
	if err := f.getJSON(ctx, reqURL, &data); err != nil {
		logger.Log.Errorw("mapbox directions request failed", "error", err)
		return nil, err
	}

	if len(data.Routes) == 0 {
		logger.Log.Errorw("mapbox returned no routes")
		return nil, ErrNoRoutes
	}

	route := data.Routes[0]
	return &models.Route{
		Distance: route.Distance,
		Duration: route.Duration,
		Geometry: route.Geometry,
	}, nil
}

// formatCoord renders a coordinate with the shortest exact decimal form.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// getJSON performs a GET and decodes the body, mapping transport failures
// and non-2xx statuses to ErrUpstream.
func (f *MapboxFacade) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return nil
}
