package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bankstack/bankstack/internal/api/metrics"
	"github.com/bankstack/bankstack/internal/core/domain"
	"github.com/bankstack/bankstack/internal/core/ports"
)

// EmailContextKey is the echo context key under which the gate stores the
// verified subject email for downstream handlers.
const EmailContextKey = "email"

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "access_token"

// SessionExpiredParam marks a redirect caused by an expired session, so the
// login page can show a "session expired" message.
const SessionExpiredParam = "session_expired"

// SessionConfig configures the session gate.
type SessionConfig struct {
	// Verifier checks the session token extracted from the cookie.
	Verifier ports.TokenVerifier
	// LoginURL is where unauthenticated requests are sent. May point at
	// another service (the account service redirects to the login service).
	LoginURL string
	// AllowPaths are exact request paths that bypass the gate.
	AllowPaths []string
	// AllowPrefixes are path prefixes that bypass the gate (static assets,
	// swagger UI).
	AllowPrefixes []string
}

// Session returns the gate middleware. It runs before any handler logic on
// every route; the allow-list is the only escape. On success the verified
// subject is attached to the request context; the full user record is left
// to downstream lookups.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	if cfg.LoginURL == "" {
		cfg.LoginURL = "/login"
	}

	allowed := make(map[string]struct{}, len(cfg.AllowPaths))
	for _, p := range cfg.AllowPaths {
		allowed[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if _, ok := allowed[path]; ok {
				return next(c)
			}
			for _, prefix := range cfg.AllowPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, cfg.LoginURL)
			}

			subject, err := cfg.Verifier.Verify(cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return c.Redirect(http.StatusFound, expiredURL(cfg.LoginURL))
				}
				// Malformed or tampered tokens get no elaboration.
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return c.Redirect(http.StatusFound, cfg.LoginURL)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(EmailContextKey, subject)
			return next(c)
		}
	}
}

func expiredURL(loginURL string) string {
	sep := "?"
	if strings.Contains(loginURL, "?") {
		sep = "&"
	}
	return loginURL + sep + SessionExpiredParam + "=1"
}
