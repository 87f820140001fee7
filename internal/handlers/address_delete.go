package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-navigation/internal/logger"
	"github.com/sbilibin2017/gw-navigation/internal/services"
)

// AddressDeleter defines the interface that the service must implement.
type AddressDeleter interface {
	Delete(ctx context.Context, userID, addressID uuid.UUID) error
}

// AddressDeleteResponse represents a successful deletion
// swagger:model AddressDeleteResponse
type AddressDeleteResponse struct {
	// Success message
	// default: Address deleted
	Message string `json:"message"`
}

// NewAddressDeleteHandler returns an HTTP handler for deleting a saved address.
// @Summary Delete a saved address
// @Description Deletes a bookmark owned by the caller. A missing bookmark and one owned by another user both report not found.
// @Tags addresses
// @Produce json
// @Param id path string true "Address ID"
// @Success 200 {object} handlers.AddressDeleteResponse "Address deleted"
// @Failure 401 {object} handlers.AddressErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.AddressErrorResponse "Address not found"
// @Router /api/addresses/{id} [delete]
// @Security BearerAuth
func NewAddressDeleteHandler(svc AddressDeleter, tokener Tokener) http.HandlerFunc {
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

		// A malformed ID cannot reference any row, so it reads the same
		// as a missing one.
		addressID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(AddressErrorResponse{
				Message: "Address not found",
			})
			return
		}

		if err := svc.Delete(ctx, claims.UserID, addressID); err != nil {
			switch {
			case errors.Is(err, services.ErrAddressNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AddressErrorResponse{
					Message: "Address not found",
				})
			default:
				logger.Log.Errorw("failed to delete address", "userID", claims.UserID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AddressErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AddressDeleteResponse{
			Message: "Address deleted",
		})
	}
}
