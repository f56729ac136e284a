package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/velleta/heritage/app/helpers"
	"github.com/velleta/heritage/app/services"
	"github.com/velleta/heritage/app/utils/sessions"
)

// LoggingMiddleware records every request with its outcome and timing.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   recorder.status,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// AuthMiddleware authorizes API calls with a bearer token. The token
// comes from the Authorization header when present, otherwise from the
// session cookie the login flow set.
func AuthMiddleware(tokens *services.TokenService, session sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				token = session.GetAuthToken(r)
			}
			if token == "" {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			userID, userName, err := tokens.Verify(token)
			if err != nil {
				log.Printf("AuthMiddleware: rejected token for %s %s: %v", r.Method, r.URL.Path, err)
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, userID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUserName, userName)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
