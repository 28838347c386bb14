package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thoughts-cell/Property-Management-System/internal/pkg/metrics"
)

// Pages that require an authenticated session. Matching is substring-based,
// mirroring the original filter; /logout is itself privileged.
var protectedPages = []string{
	"/logout",
	"/home",
	"/managers",
	"/properties",
	"/allocations",
}

// Pages that are only meaningful while not authenticated.
var authOnlyPages = []string{
	"/login",
	"/registration",
	"/verification",
	"/recovery",
}

const logoutPage = "/logout"

// Decision is the outcome of classifying one request.
type Decision int

const (
	Forward Decision = iota
	RedirectLogin
	RedirectHome
	Logout
)

// Decide classifies a request path against the session's authenticated flag.
// Rules, in order: an anonymous request for a protected page is sent to
// login; an authenticated request for an auth-only page is sent home; an
// authenticated logout request logs out; everything else is forwarded.
func Decide(path string, authenticated bool) Decision {
	if !authenticated {
		if matchesAny(path, protectedPages) {
			return RedirectLogin
		}
		return Forward
	}
	if matchesAny(path, authOnlyPages) {
		return RedirectHome
	}
	if strings.Contains(path, logoutPage) {
		return Logout
	}
	return Forward
}

func matchesAny(path string, pages []string) bool {
	for _, page := range pages {
		if strings.Contains(path, page) {
			return true
		}
	}
	return false
}

// Gate enforces Decide on every request ahead of the handlers. Logout is the
// only branch that mutates state: it destroys the session outright.
func Gate(sessions *SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := State(c)
			authenticated := state != nil && state.Authenticated

			switch Decide(c.Request().URL.Path, authenticated) {
			case RedirectLogin:
				metrics.GateRedirectsTotal.WithLabelValues("protected").Inc()
				return c.Redirect(http.StatusSeeOther, "/login")
			case RedirectHome:
				metrics.GateRedirectsTotal.WithLabelValues("auth_only").Inc()
				return c.Redirect(http.StatusSeeOther, "/home")
			case Logout:
				metrics.GateRedirectsTotal.WithLabelValues("logout").Inc()
				if err := sessions.Destroy(c); err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "logout failed")
				}
				return c.Redirect(http.StatusSeeOther, "/login")
			default:
				return next(c)
			}
		}
	}
}
