package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-navigation/internal/jwt"
	"github.com/sbilibin2017/gw-navigation/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAddressSaveHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	addressID := uuid.New()

	authorized := func(tok *MockTokener) {
		tok.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("tok", nil)
		tok.EXPECT().
			GetClaims(gomock.Any(), "tok").
			Return(&jwt.Claims{UserID: userID, Email: "john@example.com"}, nil)
	}

	saved := &models.AddressDB{
		AddressID: addressID,
		UserID:    userID,
		Address:   "123 Main St, Seattle",
		Lat:       47.6038,
		Lng:       -122.3301,
	}

	tests := []struct {
		name            string
		body            string
		mockSetup       func(svc *MockAddressSaver, tok *MockTokener)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "first visit creates",
			body: `{"address":"123 Main St, Seattle","lat":47.6038,"lng":-122.3301}`,
			mockSetup: func(svc *MockAddressSaver, tok *MockTokener) {
				authorized(tok)
				svc.EXPECT().
					Save(gomock.Any(), userID, "123 Main St, Seattle", 47.6038, -122.3301).
					Return(saved, true, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "repeat visit refreshes",
			body: `{"address":"Main St (new sign)","lat":47.6038,"lng":-122.3301}`,
			mockSetup: func(svc *MockAddressSaver, tok *MockTokener) {
				authorized(tok)
				svc.EXPECT().
					Save(gomock.Any(), userID, "Main St (new sign)", 47.6038, -122.3301).
					Return(saved, false, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "zero coordinates are valid",
			body: `{"address":"Null Island","lat":0,"lng":0}`,
			mockSetup: func(svc *MockAddressSaver, tok *MockTokener) {
				authorized(tok)
				svc.EXPECT().
					Save(gomock.Any(), userID, "Null Island", 0.0, 0.0).
					Return(saved, true, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "missing lat",
			body: `{"address":"123 Main St","lng":-122.3301}`,
			mockSetup: func(svc *MockAddressSaver, tok *MockTokener) {
				authorized(tok)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Address, lat, and lng are required",
		},
		{
			name: "missing address",
			body: `{"lat":47.6038,"lng":-122.3301}`,
			mockSetup: func(svc *MockAddressSaver, tok *MockTokener) {
				authorized(tok)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Address, lat, and lng are required",
		},
		{
			name: "invalid json",
			body: "{invalid json}",
			mockSetup: func(svc *MockAddressSaver, tok *MockTokener) {
				authorized(tok)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Address, lat, and lng are required",
		},
		{
			name: "unauthorized",
			body: `{"address":"123 Main St","lat":47.6038,"lng":-122.3301}`,
			mockSetup: func(svc *MockAddressSaver, tok *MockTokener) {
				tok.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token provided"))
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Unauthorized",
		},
		{
			name: "service failure",
			body: `{"address":"123 Main St","lat":47.6038,"lng":-122.3301}`,
			mockSetup: func(svc *MockAddressSaver, tok *MockTokener) {
				authorized(tok)
				svc.EXPECT().
					Save(gomock.Any(), userID, "123 Main St", 47.6038, -122.3301).
					Return(nil, false, errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAddressSaver(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockSvc, mockTokener)

			handler := NewAddressSaveHandler(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodPost, "/api/addresses", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, resp["message"])
			}
			if tt.expectedCode == http.StatusCreated || tt.expectedCode == http.StatusOK {
				address := resp["address"].(map[string]any)
				assert.Equal(t, addressID.String(), address["id"])
			}
		})
	}
}
