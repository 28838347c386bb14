package domain

// Outcome is a navigation token returned by workflow operations. The core
// decides where the user goes next; the HTTP layer translates the token into
// a redirect (or stays on the current page for StayHere).
type Outcome int

const (
	// StayHere keeps the user on the page they submitted from, typically
	// alongside an error message.
	StayHere Outcome = iota
	// GoIndex returns to the entry page (post-registration, post-recovery).
	GoIndex
	// GoHome refreshes into the authenticated landing page.
	GoHome
	// GoLogin sends the user to the login form.
	GoLogin
	// GoRegistration advances a verified email to the registration form.
	GoRegistration
	// GoVerification sends the user back to re-verify a new email.
	GoVerification
	// GoRecovery advances to the password-reset form.
	GoRecovery
)

// Page paths for each outcome. StayHere has no path; callers must not
// redirect on it.
var outcomePaths = map[Outcome]string{
	GoIndex:        "/",
	GoHome:         "/home",
	GoLogin:        "/login",
	GoRegistration: "/registration",
	GoVerification: "/verification",
	GoRecovery:     "/recovery/reset",
}

// Path returns the page path the outcome navigates to, or "" for StayHere.
func (o Outcome) Path() string {
	return outcomePaths[o]
}

func (o Outcome) String() string {
	switch o {
	case StayHere:
		return "stay"
	case GoIndex:
		return "index"
	case GoHome:
		return "home"
	case GoLogin:
		return "login"
	case GoRegistration:
		return "registration"
	case GoVerification:
		return "verification"
	case GoRecovery:
		return "recovery"
	default:
		return "unknown"
	}
}
