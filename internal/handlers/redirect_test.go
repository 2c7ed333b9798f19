package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-url-shortener/internal/services"
)

func TestRedirectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("redirects to original url", func(t *testing.T) {
		mockSvc := NewMockResolver(ctrl)
		mockSvc.EXPECT().
			Resolve(gomock.Any(), "Ab3x_9").
			Return("https://example.com/page", nil)

		handler := NewRedirectHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/Ab3x_9", nil)
		req = withURLParam(req, "shortCode", "Ab3x_9")

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "https://example.com/page", rr.Header().Get("Location"))
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockResolver(ctrl)
		mockSvc.EXPECT().
			Resolve(gomock.Any(), "zzzzzz").
			Return("", services.ErrShortCodeNotFound)

		handler := NewRedirectHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/zzzzzz", nil)
		req = withURLParam(req, "shortCode", "zzzzzz")

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Short URL not found", resp.Error)
	})
}
