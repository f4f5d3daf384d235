package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

func TestRecoverMiddleware(t *testing.T) {
	t.Run("panic becomes JSON 500", func(t *testing.T) {
		handler := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("nil map write")
		}))

		rr := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/rates", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Internal server error: nil map write", body.Error)
	})

	t.Run("passes through without panic", func(t *testing.T) {
		handler := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, rr.Code)
	})

	t.Run("panic after partial write keeps the started response", func(t *testing.T) {
		handler := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"success":true,`))
			panic("encoder blew up")
		}))

		rr := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/rates", nil))
		})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `{"success":true,`, rr.Body.String())
	})

	t.Run("abort handler is re-panicked", func(t *testing.T) {
		handler := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		assert.Panics(t, func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
