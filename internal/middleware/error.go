package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// responseRecorder holds back plain-text error responses so they can be
// rewritten as JSON. JSON and HTML responses pass straight through.
type responseRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	capture     bool
	body        strings.Builder
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	if r.wroteHeader {
		return
	}
	r.wroteHeader = true
	r.statusCode = statusCode
	if statusCode >= 400 && isPlainText(r.Header().Get("Content-Type")) {
		r.capture = true
		return
	}
	r.ResponseWriter.WriteHeader(statusCode)
}

// isPlainText reports whether an error body with this Content-Type is a bare
// message, as written by http.Error or gin's default 404.
func isPlainText(contentType string) bool {
	return contentType == "" || strings.HasPrefix(contentType, "text/plain")
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	if r.capture {
		return r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) writeJSON(status int, message string) {
	h := r.ResponseWriter.Header()
	h.Set("Content-Type", "application/json")
	h.Del("Content-Length")
	h.Del("X-Content-Type-Options")
	r.ResponseWriter.WriteHeader(status)
	_ = json.NewEncoder(r.ResponseWriter).Encode(ErrorResponse{Error: message})
}

// ErrorHandler turns panics and non-JSON error responses into JSON errors.
func ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[ErrorHandler] panic serving %s %s: %v", r.Method, r.URL.Path, err)
				if !rec.wroteHeader || rec.capture {
					rec.writeJSON(http.StatusInternalServerError, "Internal Server Error")
				}
				return
			}
			if rec.capture {
				rec.writeJSON(rec.statusCode, strings.TrimSpace(rec.body.String()))
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
