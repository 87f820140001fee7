package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-navigation/internal/jwt"
)

// claimsFromRequest extracts and verifies the bearer token in one step.
func claimsFromRequest(ctx context.Context, tokener Tokener, r *http.Request) (*jwt.Claims, error) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	return tokener.GetClaims(ctx, tokenStr)
}
