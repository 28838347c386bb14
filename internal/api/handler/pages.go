package handler

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thoughts-cell/Property-Management-System/internal/api/middleware"
)

// pageTemplate is the shared shell every form page renders into. The real
// styling lives with the front-end; these pages only need to carry the forms
// and the flash message.
const pageTemplate = `<!DOCTYPE html>
<html>
<head><title>{{.Title}} - Property Management</title></head>
<body>
<h1>{{.Title}}</h1>
{{if .Flash}}<p class="flash">{{.Flash}}</p>{{end}}
{{.Body}}
</body>
</html>`

var pageBodies = map[string]string{
	"index": `<p><a href="/login">Login</a> | <a href="/verification">Register</a> | <a href="/recovery/email">Recover account</a></p>`,
	"login": `<form method="post" action="/login">
<label>Username <input name="username"></label>
<label>Password <input name="password" type="password"></label>
<button type="submit">Login</button>
</form>
<p><a href="/verification">Register</a> | <a href="/recovery/email">Forgot password?</a></p>`,
	"verification": `<form method="post" action="/verification">
<label>Email <input name="email" type="email"></label>
<button type="submit">Send verification code</button>
</form>`,
	"registration": `<form method="post" action="/registration">
<label>First name <input name="first_name"></label>
<label>Last name <input name="last_name"></label>
<label>Username <input name="username"></label>
<label>Password <input name="password" type="password"></label>
<label>Confirm password <input name="password_confirm" type="password"></label>
<label>Verification code <input name="code"></label>
<button type="submit">Register</button>
</form>`,
	"recovery-email": `<form method="post" action="/recovery/email">
<label>Email <input name="email" type="email"></label>
<button type="submit">Send recovery code</button>
</form>`,
	"recovery-reset": `<form method="post" action="/recovery/reset">
<label>New password <input name="password" type="password"></label>
<label>Confirm password <input name="password_confirm" type="password"></label>
<label>Recovery code <input name="code"></label>
<button type="submit">Reset password</button>
</form>`,
	"home": `<p><a href="/properties/sales">Sale listings</a> | <a href="/properties/rentals">Rental listings</a> |
<a href="/managers">Managers</a> | <a href="/allocations">Allocations</a> | <a href="/logout">Logout</a></p>`,
}

// PageHandler serves the navigable form pages. All workflow logic lives
// behind the POST endpoints; these handlers only render.
type PageHandler struct {
	sessions *middleware.SessionManager
	tmpl     *template.Template
}

func NewPageHandler(sessions *middleware.SessionManager) *PageHandler {
	return &PageHandler{
		sessions: sessions,
		tmpl:     template.Must(template.New("page").Parse(pageTemplate)),
	}
}

func (h *PageHandler) Index(c echo.Context) error        { return h.render(c, "Welcome", "index") }
func (h *PageHandler) Login(c echo.Context) error        { return h.render(c, "Login", "login") }
func (h *PageHandler) Verification(c echo.Context) error { return h.render(c, "Verify Email", "verification") }
func (h *PageHandler) Registration(c echo.Context) error { return h.render(c, "Registration", "registration") }
func (h *PageHandler) RecoveryEmail(c echo.Context) error {
	return h.render(c, "Account Recovery", "recovery-email")
}
func (h *PageHandler) RecoveryReset(c echo.Context) error {
	return h.render(c, "Reset Password", "recovery-reset")
}
func (h *PageHandler) Home(c echo.Context) error { return h.render(c, "Home", "home") }

func (h *PageHandler) render(c echo.Context, title, page string) error {
	flash := ""
	if state := middleware.State(c); state != nil {
		flash = state.PopFlash()
		if flash != "" {
			// The flash renders once; write the cleared state back.
			if err := h.sessions.Save(c); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
			}
		}
	}

	var sb strings.Builder
	err := h.tmpl.Execute(&sb, struct {
		Title string
		Flash string
		Body  template.HTML
	}{Title: title, Flash: flash, Body: template.HTML(pageBodies[page])})
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, sb.String())
}
