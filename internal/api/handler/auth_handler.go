package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/thoughts-cell/Property-Management-System/internal/api/middleware"
	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
	"github.com/thoughts-cell/Property-Management-System/internal/core/ports"
)

// AuthHandler translates form submissions into workflow operations and
// workflow outcomes into redirects. Form fields are collected onto the
// session state before each call, mirroring how the pages build up the
// state across submissions.
type AuthHandler struct {
	workflow ports.WorkflowService
	sessions *middleware.SessionManager
	logger   zerolog.Logger
}

func NewAuthHandler(workflow ports.WorkflowService, sessions *middleware.SessionManager, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{workflow: workflow, sessions: sessions, logger: logger}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	state := middleware.State(c)
	state.Username = c.FormValue("username")
	state.Password = c.FormValue("password")

	outcome, err := h.workflow.Login(c.Request().Context(), state)
	return h.finish(c, "/login", outcome, err)
}

// StartRegistration handles POST /verification: the email form that kicks
// off registration by issuing a verification code.
func (h *AuthHandler) StartRegistration(c echo.Context) error {
	state := middleware.State(c)
	state.Email = c.FormValue("email")

	outcome, err := h.workflow.StartRegistration(c.Request().Context(), state)
	return h.finish(c, "/verification", outcome, err)
}

// ConfirmRegistration handles POST /registration: names, username, passwords
// and the emailed code.
func (h *AuthHandler) ConfirmRegistration(c echo.Context) error {
	state := middleware.State(c)
	state.FirstName = c.FormValue("first_name")
	state.LastName = c.FormValue("last_name")
	state.Username = c.FormValue("username")
	state.Password = c.FormValue("password")
	state.PasswordConfirm = c.FormValue("password_confirm")
	state.Code = c.FormValue("code")

	outcome, err := h.workflow.ConfirmRegistration(c.Request().Context(), state)
	return h.finish(c, "/registration", outcome, err)
}

// StartRecovery handles POST /recovery/email.
func (h *AuthHandler) StartRecovery(c echo.Context) error {
	state := middleware.State(c)
	state.Email = c.FormValue("email")

	outcome, err := h.workflow.StartRecovery(c.Request().Context(), state)
	return h.finish(c, "/recovery/email", outcome, err)
}

// ConfirmRecovery handles POST /recovery/reset: the new password pair and
// the emailed recovery code.
func (h *AuthHandler) ConfirmRecovery(c echo.Context) error {
	state := middleware.State(c)
	state.Password = c.FormValue("password")
	state.PasswordConfirm = c.FormValue("password_confirm")
	state.Code = c.FormValue("code")

	outcome, err := h.workflow.ConfirmRecovery(c.Request().Context(), state)
	return h.finish(c, "/recovery/reset", outcome, err)
}

// finish records any user-facing message, persists the session and issues
// the redirect the outcome calls for. StayHere redirects back to the page
// the form was submitted from (post/redirect/get).
func (h *AuthHandler) finish(c echo.Context, currentPage string, outcome domain.Outcome, opErr error) error {
	state := middleware.State(c)
	if opErr != nil {
		state.Flash = h.message(c, currentPage, opErr)
		if errors.Is(opErr, domain.ErrPersistence) {
			h.logger.Error().Err(opErr).Str("page", currentPage).Msg("workflow persistence failure")
		}
	}

	if err := h.sessions.Save(c); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}

	target := outcome.Path()
	if outcome == domain.StayHere {
		target = currentPage
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// message builds the user-facing text for a workflow error. Dynamic parts
// come from the submitted form values, falling back to the session for
// fields the current form does not carry (the registration form has no
// email field; the address was collected during verification).
func (h *AuthHandler) message(c echo.Context, currentPage string, err error) string {
	email := c.FormValue("email")
	if email == "" {
		if state := middleware.State(c); state != nil {
			email = state.Email
		}
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return fmt.Sprintf("Login Failed! Username '%s' does not exist.", c.FormValue("username"))
	case errors.Is(err, domain.ErrBadCredential):
		return "Login Failed! The password specified is not correct."
	case errors.Is(err, domain.ErrEmailTaken):
		return fmt.Sprintf("Email '%s' already registered! Please choose a different email.", email)
	case errors.Is(err, domain.ErrUsernameTaken):
		return fmt.Sprintf("Username '%s' already registered! Please choose a different username.", c.FormValue("username"))
	case errors.Is(err, domain.ErrEmailNotFound):
		return fmt.Sprintf("Invalid Email! Email '%s' does not exist.", email)
	case errors.Is(err, domain.ErrPasswordMismatch):
		return "The specified passwords do not match, please try again!"
	case errors.Is(err, domain.ErrCodeMismatch):
		if currentPage == "/recovery/reset" {
			return "Wrong recovery code, please try again!"
		}
		return "Wrong verification code, please try again!"
	default:
		return "Unexpected error. Please contact the system Administrator."
	}
}
