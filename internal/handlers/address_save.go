package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-navigation/internal/logger"
	"github.com/sbilibin2017/gw-navigation/internal/models"
)

// AddressSaver defines the interface that the service must implement.
type AddressSaver interface {
	Save(ctx context.Context, userID uuid.UUID, address string, lat, lng float64) (*models.AddressDB, bool, error)
}

// AddressSaveRequest represents the JSON body for saving a destination.
// Lat and lng are pointers so an absent field is distinguishable from 0.
// swagger:model AddressSaveRequest
type AddressSaveRequest struct {
	// Free-text address label
	// required: true
	// default: 123 Main St, Seattle
	Address string `json:"address"`

	// Latitude in degrees
	// required: true
	// default: 47.6038
	Lat *float64 `json:"lat"`

	// Longitude in degrees
	// required: true
	// default: -122.3301
	Lng *float64 `json:"lng"`
}

// AddressSaveResponse represents a saved address
// swagger:model AddressSaveResponse
type AddressSaveResponse struct {
	// Saved address
	Address models.AddressDB `json:"address"`
}

// NewAddressSaveHandler returns an HTTP handler for saving a destination.
// A first visit inserts a new bookmark (201); a repeat visit to the exact
// same coordinates refreshes the existing one (200).
// @Summary Save a destination
// @Description Inserts or refreshes a bookmark keyed on the exact coordinate pair
// @Tags addresses
// @Accept json
// @Produce json
// @Param addressSaveRequest body handlers.AddressSaveRequest true "Destination to save"
// @Success 200 {object} handlers.AddressSaveResponse "Existing bookmark refreshed"
// @Success 201 {object} handlers.AddressSaveResponse "New bookmark created"
// @Failure 400 {object} handlers.AddressErrorResponse "Missing fields"
// @Failure 401 {object} handlers.AddressErrorResponse "Missing or invalid token"
// @Router /api/addresses [post]
// @Security BearerAuth
func NewAddressSaveHandler(svc AddressSaver, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AddressErrorResponse{
				Message: "Unauthorized",
			})
			return
		}

		var req AddressSaveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddressErrorResponse{
				Message: "Address, lat, and lng are required",
			})
			return
		}

		if req.Address == "" || req.Lat == nil || req.Lng == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddressErrorResponse{
				Message: "Address, lat, and lng are required",
			})
			return
		}

		saved, created, err := svc.Save(ctx, claims.UserID, req.Address, *req.Lat, *req.Lng)
		if err != nil {
			logger.Log.Errorw("failed to save address", "userID", claims.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AddressErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		if created {
			w.WriteHeader(http.StatusCreated)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		json.NewEncoder(w).Encode(AddressSaveResponse{
			Address: *saved,
		})
	}
}
