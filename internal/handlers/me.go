package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-navigation/internal/jwt"
	"github.com/sbilibin2017/gw-navigation/internal/logger"
	"github.com/sbilibin2017/gw-navigation/internal/models"
)

// Tokener extracts and verifies bearer tokens. Shared by every
// authenticated handler.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CurrentUserGetter defines the interface that the service must implement.
type CurrentUserGetter interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// MeResponse represents the current-user response
// swagger:model MeResponse
type MeResponse struct {
	// Authenticated user
	User models.User `json:"user"`
}

// MeErrorResponse represents an error response for the current-user endpoint
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: Invalid token
	Message string `json:"message"`
}

// NewMeHandler returns an HTTP handler for fetching the current user.
// @Summary Get current user
// @Description Returns the user identified by the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current user"
// @Failure 401 {object} handlers.MeErrorResponse "Missing or invalid token"
// @Router /api/auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc CurrentUserGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{
				Message: "No token provided",
			})
			return
		}

		claims, err := tokener.GetClaims(ctx, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{
				Message: "Invalid token",
			})
			return
		}

		user, err := svc.GetUser(ctx, claims.UserID)
		if err != nil {
			// A valid token for a user that no longer exists is still
			// an authentication failure.
			logger.Log.Errorw("current user lookup failed", "userID", claims.UserID, "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{
				Message: "Invalid token",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			User: user.Public(),
		})
	}
}
