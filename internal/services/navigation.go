package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-navigation/internal/logger"
	"github.com/sbilibin2017/gw-navigation/internal/models"
)

// ErrEmptyQuery is returned when a geocode query is missing or blank.
var ErrEmptyQuery = errors.New("query is required")

// Geocoder resolves free-text queries via the upstream provider.
type Geocoder interface {
	Geocode(ctx context.Context, query string) ([]models.GeocodeResult, error)
}

// DirectionsFetcher fetches driving routes via the upstream provider.
type DirectionsFetcher interface {
	Directions(ctx context.Context, startLat, startLng, endLat, endLng float64) (*models.Route, error)
}

// GeocodeCache caches normalized geocode results.
type GeocodeCache interface {
	GetResults(ctx context.Context, query string) ([]models.GeocodeResult, error)
	SetResults(ctx context.Context, query string, results []models.GeocodeResult) error
}

// NavigationService fronts the upstream mapping provider with a
// read-through cache for geocoding. Routes are never cached.
type NavigationService struct {
	geocoder Geocoder
	fetcher  DirectionsFetcher
	cache    GeocodeCache
}

// NewNavigationService creates a new service instance.
func NewNavigationService(geocoder Geocoder, fetcher DirectionsFetcher, cache GeocodeCache) *NavigationService {
	return &NavigationService{
		geocoder: geocoder,
		fetcher:  fetcher,
		cache:    cache,
	}
}

// Geocode resolves a query to at most five matches in upstream relevance
// order. Cache hits skip the upstream call; cache failures are logged and
// never fail the request.
func (svc *NavigationService) Geocode(ctx context.Context, query string) ([]models.GeocodeResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	if svc.cache != nil {
		results, err := svc.cache.GetResults(ctx, query)
		if err == nil {
			return results, nil
		}
	}

	results, err := svc.geocoder.Geocode(ctx, query)
	if err != nil {
		logger.Log.Errorw("geocoding failed", "query", query, "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetResults(ctx, query, results); err != nil {
			logger.Log.Errorw("failed to cache geocode results", "query", query, "err", err)
		}
	}

	return results, nil
}

// Route fetches the default driving route between two points.
func (svc *NavigationService) Route(ctx context.Context, startLat, startLng, endLat, endLng float64) (*models.Route, error) {
	route, err := svc.fetcher.Directions(ctx, startLat, startLng, endLat, endLng)
	if err != nil {
		logger.Log.Errorw("routing failed", "err", err)
		return nil, err
	}
	return route, nil
}
