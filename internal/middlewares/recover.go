package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// recoverWriter records whether the response has been started.
type recoverWriter struct {
	http.ResponseWriter
	started bool
}

func (rw *recoverWriter) WriteHeader(code int) {
	rw.started = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recoverWriter) Write(b []byte) (int, error) {
	rw.started = true
	return rw.ResponseWriter.Write(b)
}

// RecoverMiddleware turns a handler panic into a JSON 500 response. A panic
// after the response has started is only logged.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &recoverWriter{ResponseWriter: w}
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.Log.Errorw("panic recovered",
				"request_id", RequestIDFromContext(r.Context()),
				"uri", r.RequestURI,
				"panic", rec,
				"response_started", rw.started,
			)
			if rw.started {
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{
				Success: false,
				Error:   fmt.Sprintf("Internal server error: %v", rec),
			})
		}()

		next.ServeHTTP(rw, r)
	})
}
