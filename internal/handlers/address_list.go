package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-navigation/internal/logger"
	"github.com/sbilibin2017/gw-navigation/internal/models"
)

// AddressLister defines the interface that the service must implement.
type AddressLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.AddressDB, error)
}

// AddressListResponse represents the saved-addresses response
// swagger:model AddressListResponse
type AddressListResponse struct {
	// Saved addresses, most recently touched first
	Addresses []models.AddressDB `json:"addresses"`
}

// AddressErrorResponse represents an error response for address endpoints
// swagger:model AddressErrorResponse
type AddressErrorResponse struct {
	// Error message
	// default: Unauthorized
	Message string `json:"message"`
}

// NewAddressListHandler returns an HTTP handler for listing saved addresses.
// @Summary List saved addresses
// @Description Returns the caller's destination history, most recently touched first
// @Tags addresses
// @Produce json
// @Success 200 {object} handlers.AddressListResponse "Saved addresses"
// @Failure 401 {object} handlers.AddressErrorResponse "Missing or invalid token"
// @Router /api/addresses [get]
// @Security BearerAuth
func NewAddressListHandler(svc AddressLister, tokener Tokener) http.HandlerFunc {
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

		addresses, err := svc.List(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list addresses", "userID", claims.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AddressErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		if addresses == nil {
			addresses = []models.AddressDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AddressListResponse{
			Addresses: addresses,
		})
	}
}
