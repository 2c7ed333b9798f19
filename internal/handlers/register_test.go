package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-url-shortener/internal/models"
	"github.com/sbilibin2017/gw-url-shortener/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authResult := &models.AuthResult{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         models.UserPublic{ID: 1, Name: "alice", Email: "alice@example.com"},
	}

	tests := []struct {
		name         string
		body         any
		rawBody      string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: RegisterRequest{Name: "alice", Email: "alice@example.com", Password: "password123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "password123").
					Return(authResult, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "email already in use",
			body: RegisterRequest{Name: "alice", Email: "alice@example.com", Password: "password123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "password123").
					Return(nil, services.ErrEmailAlreadyInUse)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "This email is already in use",
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
		{
			name:         "missing fields",
			body:         RegisterRequest{Name: "alice"},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "validation failed",
		},
		{
			name:         "password too short",
			body:         RegisterRequest{Name: "alice", Email: "alice@example.com", Password: "short"},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "validation failed",
		},
		{
			name:         "invalid email",
			body:         RegisterRequest{Name: "alice", Email: "not-an-email", Password: "password123"},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "validation failed",
		},
		{
			name: "internal server error",
			body: RegisterRequest{Name: "alice", Email: "alice@example.com", Password: "password123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "password123").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Error registering user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			var resp AuthResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "access-token", resp.AccessToken)
			assert.Equal(t, "refresh-token", resp.RefreshToken)
			assert.Equal(t, "alice@example.com", resp.User.Email)
		})
	}
}
