package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-url-shortener/internal/services"
)

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestResolveHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		shortCode    string
		mockSetup    func(m *MockResolver)
		expectedCode int
		expectedErr  string
	}{
		{
			name:      "success",
			shortCode: "Ab3x_9",
			mockSetup: func(m *MockResolver) {
				m.EXPECT().
					Resolve(gomock.Any(), "Ab3x_9").
					Return("https://example.com/page", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "not found",
			shortCode: "zzzzzz",
			mockSetup: func(m *MockResolver) {
				m.EXPECT().
					Resolve(gomock.Any(), "zzzzzz").
					Return("", services.ErrShortCodeNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "Short URL not found",
		},
		{
			name:      "internal server error",
			shortCode: "Ab3x_9",
			mockSetup: func(m *MockResolver) {
				m.EXPECT().
					Resolve(gomock.Any(), "Ab3x_9").
					Return("", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockResolver(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewResolveHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/resolve/"+tt.shortCode, nil)
			req = withURLParam(req, "shortCode", tt.shortCode)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			var resp ResolveResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "https://example.com/page", resp.OriginalURL)
		})
	}
}
