package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pageza/recipebook/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// responseRecorder captures plain-text error bodies so they can be
// re-emitted as JSON. JSON responses pass through untouched.
type responseRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	rewrite     bool
	body        strings.Builder
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	if r.wroteHeader {
		return
	}
	r.wroteHeader = true
	r.statusCode = statusCode

	if statusCode >= 400 && !strings.HasPrefix(r.Header().Get("Content-Type"), "application/json") {
		r.rewrite = true
		r.Header().Set("Content-Type", "application/json")
		r.Header().Del("Content-Length")
		r.Header().Del("X-Content-Type-Options")
	}
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	if r.rewrite {
		return r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

// ErrorHandler turns panics and non-JSON error responses into JSON error
// bodies
func ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic while serving request", "method", r.Method, "path", r.URL.Path, "err", err)
				if rec.wroteHeader {
					return
				}
				rec.WriteHeader(http.StatusInternalServerError)
			}
			if !rec.rewrite {
				return
			}

			message := strings.TrimSpace(rec.body.String())
			if message == "" {
				message = http.StatusText(rec.statusCode)
			}
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
		}()

		next.ServeHTTP(rec, r)
	})
}
