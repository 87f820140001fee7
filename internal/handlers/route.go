package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-navigation/internal/facades"
	"github.com/sbilibin2017/gw-navigation/internal/logger"
	"github.com/sbilibin2017/gw-navigation/internal/models"
)

// RouteProvider defines the interface that the service must implement.
type RouteProvider interface {
	Route(ctx context.Context, startLat, startLng, endLat, endLng float64) (*models.Route, error)
}

// RouteErrorResponse represents an error response for routing
// swagger:model RouteErrorResponse
type RouteErrorResponse struct {
	// Error message
	// default: Routing failed
	Message string `json:"message"`
}

// NewRouteHandler returns an HTTP handler for driving routes.
// The response geometry keeps the upstream [lng, lat] coordinate order.
// @Summary Get a driving route
// @Description Returns the default driving route between two coordinate pairs
// @Tags navigation
// @Produce json
// @Param startLat query number true "Start latitude"
// @Param startLng query number true "Start longitude"
// @Param endLat query number true "End latitude"
// @Param endLng query number true "End longitude"
// @Success 200 {object} models.Route "Selected route"
// @Failure 400 {object} handlers.RouteErrorResponse "Missing or non-numeric coordinates"
// @Failure 500 {object} handlers.RouteErrorResponse "Provider unconfigured or failed"
// @Router /api/route [get]
func NewRouteHandler(svc RouteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		q := r.URL.Query()
		coords := make([]float64, 0, 4)
		for _, name := range []string{"startLat", "startLng", "endLat", "endLng"} {
			raw := q.Get(name)
			if raw == "" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RouteErrorResponse{
					Message: "startLat, startLng, endLat, endLng are required",
				})
				return
			}
			val, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RouteErrorResponse{
					Message: "startLat, startLng, endLat, endLng are required",
				})
				return
			}
			coords = append(coords, val)
		}

		route, err := svc.Route(r.Context(), coords[0], coords[1], coords[2], coords[3])
		if err != nil {
			switch {
			case errors.Is(err, facades.ErrTokenNotConfigured):
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RouteErrorResponse{
					Message: "Mapbox token not configured",
				})
			default:
				logger.Log.Errorw("routing failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RouteErrorResponse{
					Message: "Routing failed",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(route)
	}
}
