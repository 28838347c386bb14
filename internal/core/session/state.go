// Package session holds the per-session workflow state and its Redis-backed
// store. One State exists per browser session; it is never shared across
// sessions.
package session

// Mode says which workflow, if any, the session is in the middle of. The two
// pending modes are mutually exclusive.
type Mode string

const (
	ModeNone        Mode = ""
	ModeRegistering Mode = "registering"
	ModeRecovering  Mode = "recovering"
)

// State is the mutable workflow state of one session. Input fields are
// collected incrementally across page submissions; IssuedCode is the code the
// server generated and mailed out; RecoveryUserID references the user record
// located by email during recovery. The whole value is JSON-serialized into
// the session store on every save.
type State struct {
	Authenticated bool `json:"authenticated"`
	Mode          Mode `json:"mode,omitempty"`

	Username        string `json:"username,omitempty"`
	Password        string `json:"password,omitempty"`
	PasswordConfirm string `json:"password_confirm,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Email           string `json:"email,omitempty"`
	Code            string `json:"code,omitempty"`

	IssuedCode     string `json:"issued_code,omitempty"`
	RecoveryUserID int64  `json:"recovery_user_id,omitempty"`

	// Flash is a pending user-facing message, rendered once on the next page.
	Flash string `json:"flash,omitempty"`
}

// ClearFields resets every collected input field, the issued code and the
// recovery target. Authenticated survives; it is governed by login/logout
// only.
func (s *State) ClearFields() {
	s.Mode = ModeNone
	s.Username = ""
	s.Password = ""
	s.PasswordConfirm = ""
	s.FirstName = ""
	s.LastName = ""
	s.Email = ""
	s.Code = ""
	s.IssuedCode = ""
	s.RecoveryUserID = 0
}

// PopFlash returns the pending message and clears it.
func (s *State) PopFlash() string {
	msg := s.Flash
	s.Flash = ""
	return msg
}
