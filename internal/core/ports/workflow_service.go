package ports

import (
	"context"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
	"github.com/thoughts-cell/Property-Management-System/internal/core/session"
)

// WorkflowService drives the login, registration-verification and
// password-recovery state machine. Every operation reads and mutates the
// given session state and returns a navigation outcome; user-correctable
// failures come back as the domain sentinel errors and leave the state where
// it was so the user can retry.
type WorkflowService interface {
	Login(ctx context.Context, state *session.State) (domain.Outcome, error)
	StartRegistration(ctx context.Context, state *session.State) (domain.Outcome, error)
	ConfirmRegistration(ctx context.Context, state *session.State) (domain.Outcome, error)
	StartRecovery(ctx context.Context, state *session.State) (domain.Outcome, error)
	ConfirmRecovery(ctx context.Context, state *session.State) (domain.Outcome, error)
}
