package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"rentinspect/pkg/types"

	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const contextKeySessionID contextKey = "session_id"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// RequireSession resolves the signed session cookie to a live inspection
// session, starting a fresh one when the cookie is missing, invalid or expired.
func (s *Service) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sessionID, err := s.sessionIDFromCookie(r)
		if err == nil {
			if _, err = s.sessions.Get(ctx, sessionID); err != nil && !errors.Is(err, types.ErrSessionNotFound) {
				s.logger.WithError(err).Error("failed to load session")
				s.internalServerError(w)
				return
			}
		}

		if err != nil {
			s.logger.WithError(err).Debug("starting new inspection session")

			sess, err := s.sessions.Create(ctx)
			if err != nil {
				s.logger.WithError(err).Error("failed to create session")
				s.internalServerError(w)
				return
			}
			if err := s.setSessionCookie(w, sess.ID); err != nil {
				s.logger.WithError(err).Error("failed to encode session cookie")
				s.internalServerError(w)
				return
			}
			sessionID = sess.ID
		}

		ctx = context.WithValue(ctx, contextKeySessionID, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) sessionIDFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(s.config.CookieName)
	if err != nil {
		return "", err
	}

	var sessionID string
	if err := s.cookie.Decode(s.config.CookieName, cookie.Value, &sessionID); err != nil {
		return "", err
	}

	return sessionID, nil
}

func (s *Service) setSessionCookie(w http.ResponseWriter, sessionID string) error {
	encoded, err := s.cookie.Encode(s.config.CookieName, sessionID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    encoded,
		HttpOnly: true,
		Secure:   s.config.Environment != "development",
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   s.config.SessionMaxAgeSec,
	})

	return nil
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Only strip if path is not root and has trailing slash
		if path != "/" && strings.HasSuffix(path, "/") {
			newURL := *r.URL
			newURL.Path = strings.TrimSuffix(path, "/")

			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Service) sessionIDFromContext(ctx context.Context) (string, error) {
	sessionID, ok := ctx.Value(contextKeySessionID).(string)
	if !ok || sessionID == "" {
		return "", errors.New("session id not found in context")
	}
	return sessionID, nil
}
