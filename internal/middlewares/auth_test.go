package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-url-shortener/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		mockSetup  func(tokens *MockTokenVerifier, users *MockUserValidator)
		wantUserID int64
		wantAuthed bool
	}{
		{
			name: "valid token",
			mockSetup: func(tokens *MockTokenVerifier, users *MockUserValidator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokens.EXPECT().ValidateAccess(gomock.Any(), "token").Return(int64(1), nil)
				users.EXPECT().ValidateUserByID(gomock.Any(), int64(1)).Return(&models.UserDB{ID: 1}, nil)
			},
			wantUserID: 1,
			wantAuthed: true,
		},
		{
			name: "missing header leaves request anonymous",
			mockSetup: func(tokens *MockTokenVerifier, users *MockUserValidator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("authorization header missing"))
			},
			wantAuthed: false,
		},
		{
			name: "rejected token leaves request anonymous",
			mockSetup: func(tokens *MockTokenVerifier, users *MockUserValidator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokens.EXPECT().ValidateAccess(gomock.Any(), "token").Return(int64(0), errors.New("invalid token"))
			},
			wantAuthed: false,
		},
		{
			name: "unknown subject leaves request anonymous",
			mockSetup: func(tokens *MockTokenVerifier, users *MockUserValidator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokens.EXPECT().ValidateAccess(gomock.Any(), "token").Return(int64(1), nil)
				users.EXPECT().ValidateUserByID(gomock.Any(), int64(1)).Return(nil, errors.New("user not found"))
			},
			wantAuthed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := NewMockTokenVerifier(ctrl)
			users := NewMockUserValidator(ctrl)
			tt.mockSetup(tokens, users)

			var gotUserID int64
			var gotAuthed bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, gotAuthed = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tokens, users)(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			// the middleware never rejects by itself
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantAuthed, gotAuthed)
			if tt.wantAuthed {
				assert.Equal(t, tt.wantUserID, gotUserID)
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAuth(next)

	t.Run("anonymous is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
	})

	t.Run("authenticated passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(SetUserIDToContext(req.Context(), 1))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestUserIDFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := UserIDFromContext(req.Context())
	require.False(t, ok)

	ctx := SetUserIDToContext(req.Context(), 7)
	userID, ok := UserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(7), userID)
}
