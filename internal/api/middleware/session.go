package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/thoughts-cell/Property-Management-System/internal/core/session"
)

const (
	sessionCookie = "pms_session"

	ctxKeySID   = "session_id"
	ctxKeyState = "session_state"
)

// SessionManager attaches the workflow state to every request. The browser
// holds a signed cookie whose JWT carries the session ID; the state itself
// lives server-side in the session store. A missing, invalid or expired
// cookie transparently gets a fresh session.
type SessionManager struct {
	store  *session.Store
	secret []byte
}

func NewSessionManager(store *session.Store, secret string) *SessionManager {
	return &SessionManager{store: store, secret: []byte(secret)}
}

// Middleware loads (or creates) the session for the request and injects the
// session ID and state into the echo context.
func (m *SessionManager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			sid := m.sidFromCookie(c)
			var state *session.State
			if sid != "" {
				loaded, err := m.store.Get(ctx, sid)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
				}
				state = loaded
			}
			if state == nil {
				newSID, newState, err := m.store.Create(ctx)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
				}
				sid, state = newSID, newState
				if err := m.setCookie(c, sid); err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
				}
			}

			c.Set(ctxKeySID, sid)
			c.Set(ctxKeyState, state)
			return next(c)
		}
	}
}

// Save persists the (possibly mutated) state of the current request.
func (m *SessionManager) Save(c echo.Context) error {
	sid, _ := c.Get(ctxKeySID).(string)
	state := State(c)
	if sid == "" || state == nil {
		return nil
	}
	return m.store.Save(c.Request().Context(), sid, state)
}

// Destroy deletes the server-side state and expires the cookie. Used by the
// gate's logout rule.
func (m *SessionManager) Destroy(c echo.Context) error {
	sid, _ := c.Get(ctxKeySID).(string)
	if sid != "" {
		if err := m.store.Delete(c.Request().Context(), sid); err != nil {
			return err
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return nil
}

// State returns the workflow state injected by the session middleware, or nil
// when the middleware did not run.
func State(c echo.Context) *session.State {
	state, _ := c.Get(ctxKeyState).(*session.State)
	return state
}

func (m *SessionManager) sidFromCookie(c echo.Context) string {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

func (m *SessionManager) setCookie(c echo.Context, sid string) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
