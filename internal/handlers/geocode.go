package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-navigation/internal/facades"
	"github.com/sbilibin2017/gw-navigation/internal/logger"
	"github.com/sbilibin2017/gw-navigation/internal/models"
	"github.com/sbilibin2017/gw-navigation/internal/services"
)

// GeocodeProvider defines the interface that the service must implement.
type GeocodeProvider interface {
	Geocode(ctx context.Context, query string) ([]models.GeocodeResult, error)
}

// GeocodeResponse represents normalized geocoding matches
// swagger:model GeocodeResponse
type GeocodeResponse struct {
	// Matches in upstream relevance order, at most five
	Results []models.GeocodeResult `json:"results"`
}

// GeocodeErrorResponse represents an error response for geocoding
// swagger:model GeocodeErrorResponse
type GeocodeErrorResponse struct {
	// Error message
	// default: Geocoding failed
	Message string `json:"message"`
}

// NewGeocodeHandler returns an HTTP handler for address geocoding.
// @Summary Geocode an address
// @Description Resolves a free-text query to at most five coordinate matches via the upstream provider
// @Tags navigation
// @Produce json
// @Param q query string true "Free-text query"
// @Success 200 {object} handlers.GeocodeResponse "Normalized matches"
// @Failure 400 {object} handlers.GeocodeErrorResponse "Missing query"
// @Failure 500 {object} handlers.GeocodeErrorResponse "Provider unconfigured or failed"
// @Router /api/geocode [get]
func NewGeocodeHandler(svc GeocodeProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		query := r.URL.Query().Get("q")
		if query == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GeocodeErrorResponse{
				Message: "Query parameter 'q' is required",
			})
			return
		}

		results, err := svc.Geocode(r.Context(), query)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyQuery):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GeocodeErrorResponse{
					Message: "Query parameter 'q' is required",
				})
			case errors.Is(err, facades.ErrTokenNotConfigured):
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GeocodeErrorResponse{
					Message: "Mapbox token not configured",
				})
			default:
				logger.Log.Errorw("geocoding failed", "query", query, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GeocodeErrorResponse{
					Message: "Geocoding failed",
				})
			}
			return
		}

		if results == nil {
			results = []models.GeocodeResult{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GeocodeResponse{
			Results: results,
		})
	}
}
