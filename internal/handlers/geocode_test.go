package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-navigation/internal/facades"
	"github.com/sbilibin2017/gw-navigation/internal/models"
	"github.com/sbilibin2017/gw-navigation/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGeocodeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		target          string
		mockSetup       func(m *MockGeocodeProvider)
		expectedCode    int
		expectedMessage string
	}{
		{
			name:   "success",
			target: "/api/geocode?q=main+st",
			mockSetup: func(m *MockGeocodeProvider) {
				m.EXPECT().
					Geocode(gomock.Any(), "main st").
					Return([]models.GeocodeResult{
						{ID: "address.1", Address: "123 Main St", Lat: 47.6038, Lng: -122.3301},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:            "missing query",
			target:          "/api/geocode",
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Query parameter 'q' is required",
		},
		{
			name:   "blank query rejected by service",
			target: "/api/geocode?q=%20%20",
			mockSetup: func(m *MockGeocodeProvider) {
				m.EXPECT().
					Geocode(gomock.Any(), "  ").
					Return(nil, services.ErrEmptyQuery)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Query parameter 'q' is required",
		},
		{
			name:   "token not configured",
			target: "/api/geocode?q=main+st",
			mockSetup: func(m *MockGeocodeProvider) {
				m.EXPECT().
					Geocode(gomock.Any(), "main st").
					Return(nil, facades.ErrTokenNotConfigured)
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Mapbox token not configured",
		},
		{
			name:   "upstream failure",
			target: "/api/geocode?q=main+st",
			mockSetup: func(m *MockGeocodeProvider) {
				m.EXPECT().
					Geocode(gomock.Any(), "main st").
					Return(nil, errors.New("upstream timeout"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Geocoding failed",
		},
		{
			name:   "no matches is an empty array",
			target: "/api/geocode?q=zzzzzz",
			mockSetup: func(m *MockGeocodeProvider) {
				m.EXPECT().
					Geocode(gomock.Any(), "zzzzzz").
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGeocodeProvider(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewGeocodeHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp GeocodeResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.NotNil(t, resp.Results)
			} else {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp["message"])
			}
		})
	}
}
