package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/thoughts-cell/Property-Management-System/internal/pkg/metrics"
	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
	"github.com/thoughts-cell/Property-Management-System/internal/core/ports"
	"github.com/thoughts-cell/Property-Management-System/internal/core/session"
	"github.com/thoughts-cell/Property-Management-System/internal/pkg/secret"
)

const (
	subjectVerification = "Verification Code"
	subjectRecovery     = "Recovery Code"
)

// WorkflowService implements the login / registration / recovery state
// machine over a session state, a user directory and a notifier.
type WorkflowService struct {
	directory ports.UserDirectory
	notifier  ports.Notifier
	logger    zerolog.Logger
}

func NewWorkflowService(directory ports.UserDirectory, notifier ports.Notifier, logger zerolog.Logger) *WorkflowService {
	return &WorkflowService{directory: directory, notifier: notifier, logger: logger}
}

// Login checks the session's username/password against the directory. On
// success the session becomes authenticated and the user is bounced through
// a redirect so the page picks up the fresh session state.
func (s *WorkflowService) Login(ctx context.Context, state *session.State) (domain.Outcome, error) {
	user, err := s.directory.FindByUsername(ctx, state.Username)
	if err != nil {
		return domain.StayHere, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if user == nil {
		metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
		return domain.StayHere, domain.ErrUserNotFound
	}
	if !secret.VerifyPassword(state.Password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return domain.StayHere, domain.ErrBadCredential
	}

	state.Authenticated = true
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return domain.GoHome, nil
}

// StartRegistration verifies the session's email is unclaimed, issues a
// verification code and mails it out. The session moves into registering
// mode awaiting confirmation.
func (s *WorkflowService) StartRegistration(ctx context.Context, state *session.State) (domain.Outcome, error) {
	existing, err := s.directory.FindByEmail(ctx, state.Email)
	if err != nil {
		return domain.StayHere, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if existing != nil {
		// Clear the field so the form can be re-entered with a new address.
		state.Email = ""
		return domain.StayHere, domain.ErrEmailTaken
	}

	code, err := secret.GenerateCode()
	if err != nil {
		return domain.StayHere, err
	}
	state.IssuedCode = code
	state.Mode = session.ModeRegistering
	s.deliverCode(ctx, state.Email, subjectVerification, code)
	metrics.CodesIssuedTotal.WithLabelValues("registration").Inc()
	return domain.GoRegistration, nil
}

// ConfirmRegistration re-checks username and email availability (the inputs
// may have gone stale since the code was issued), validates password and
// code, then persists the new user. Registration success does not log the
// user in; they return to the entry page and log in themselves.
func (s *WorkflowService) ConfirmRegistration(ctx context.Context, state *session.State) (domain.Outcome, error) {
	byName, err := s.directory.FindByUsername(ctx, state.Username)
	if err != nil {
		return domain.StayHere, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	byEmail, err := s.directory.FindByEmail(ctx, state.Email)
	if err != nil {
		return domain.StayHere, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	// Username conflict wins when both lookups match.
	if byName != nil {
		return domain.StayHere, domain.ErrUsernameTaken
	}
	if byEmail != nil {
		// The email was claimed while the form sat open: drop the stale code
		// and send the user back to verify a different address.
		state.Code = ""
		return domain.GoVerification, domain.ErrEmailTaken
	}
	if state.Password != state.PasswordConfirm {
		return domain.StayHere, domain.ErrPasswordMismatch
	}
	if !secret.CodeMatches(state.Code, state.IssuedCode) {
		return domain.StayHere, domain.ErrCodeMismatch
	}

	user := &domain.User{
		FirstName:    state.FirstName,
		LastName:     state.LastName,
		Username:     state.Username,
		PasswordHash: secret.HashPassword(state.Password),
		Email:        state.Email,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.directory.Insert(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", user.Username).Msg("unable to create new user")
		return domain.StayHere, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	metrics.RegistrationsTotal.Inc()
	state.ClearFields()
	return domain.GoIndex, nil
}

// StartRecovery locates the account behind the session's email, issues a
// recovery code and mails it out. The matched record is pinned on the
// session until the new credential is committed.
func (s *WorkflowService) StartRecovery(ctx context.Context, state *session.State) (domain.Outcome, error) {
	user, err := s.directory.FindByEmail(ctx, state.Email)
	if err != nil {
		return domain.StayHere, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if user == nil {
		return domain.StayHere, domain.ErrEmailNotFound
	}

	code, err := secret.GenerateCode()
	if err != nil {
		return domain.StayHere, err
	}
	state.RecoveryUserID = user.ID
	state.IssuedCode = code
	state.Mode = session.ModeRecovering
	s.deliverCode(ctx, state.Email, subjectRecovery, code)
	metrics.CodesIssuedTotal.WithLabelValues("recovery").Inc()
	return domain.GoRecovery, nil
}

// ConfirmRecovery validates the new password and the recovery code, then
// rewrites the stored credential. The user must log in again with the new
// password.
func (s *WorkflowService) ConfirmRecovery(ctx context.Context, state *session.State) (domain.Outcome, error) {
	if state.Password != state.PasswordConfirm {
		return domain.StayHere, domain.ErrPasswordMismatch
	}
	if !secret.CodeMatches(state.Code, state.IssuedCode) {
		return domain.StayHere, domain.ErrCodeMismatch
	}

	user, err := s.directory.FindByID(ctx, state.RecoveryUserID)
	if err != nil || user == nil {
		s.logger.Error().Err(err).Int64("user_id", state.RecoveryUserID).Msg("recovery target missing")
		return domain.StayHere, fmt.Errorf("%w: recovery target missing", domain.ErrPersistence)
	}
	user.PasswordHash = secret.HashPassword(state.Password)
	if _, err := s.directory.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("unable to recover user")
		return domain.StayHere, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("credential recovered")
	metrics.RecoveriesTotal.Inc()
	state.ClearFields()
	return domain.GoIndex, nil
}

// deliverCode hands a code to the notifier. Delivery is best-effort: a
// failure is logged and counted but the workflow proceeds as though the code
// were sent.
func (s *WorkflowService) deliverCode(ctx context.Context, to, subject, code string) {
	body := fmt.Sprintf("The %s: %s", subject, code)
	if err := s.notifier.Send(ctx, to, subject, body); err != nil {
		metrics.NotifierFailuresTotal.Inc()
		s.logger.Error().Err(err).Str("to", to).Str("subject", subject).Msg("code delivery failed")
	}
}
