package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
	"github.com/thoughts-cell/Property-Management-System/internal/core/session"
	"github.com/thoughts-cell/Property-Management-System/internal/pkg/secret"
)

type stubDirectory struct {
	users      map[int64]*domain.User
	nextID     int64
	failInsert bool
	failUpdate bool
}

func newStubDirectory() *stubDirectory {
	return &stubDirectory{users: make(map[int64]*domain.User)}
}

func (d *stubDirectory) add(user *domain.User) *domain.User {
	d.nextID++
	clone := *user
	clone.ID = d.nextID
	d.users[clone.ID] = &clone
	return &clone
}

func (d *stubDirectory) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := d.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (d *stubDirectory) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range d.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (d *stubDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range d.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (d *stubDirectory) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if d.failInsert {
		return nil, errors.New("insert failed")
	}
	return d.add(user), nil
}

func (d *stubDirectory) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if d.failUpdate {
		return nil, errors.New("update failed")
	}
	if _, ok := d.users[user.ID]; !ok {
		return nil, errors.New("no such user")
	}
	clone := *user
	d.users[user.ID] = &clone
	return user, nil
}

type stubNotifier struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to, subject, body string
}

func (n *stubNotifier) Send(_ context.Context, to, subject, body string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func newWorkflow(dir *stubDirectory, notifier *stubNotifier) *WorkflowService {
	return NewWorkflowService(dir, notifier, zerolog.Nop())
}

func seedUser(dir *stubDirectory, username, password, email string) *domain.User {
	return dir.add(&domain.User{
		FirstName:    "Test",
		LastName:     "User",
		Username:     username,
		PasswordHash: secret.HashPassword(password),
		Email:        email,
	})
}

func TestLogin_UnknownUser(t *testing.T) {
	wf := newWorkflow(newStubDirectory(), &stubNotifier{})
	state := &session.State{Username: "ghost", Password: "pw"}

	outcome, err := wf.Login(context.Background(), state)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if outcome != domain.StayHere {
		t.Fatalf("expected StayHere, got %v", outcome)
	}
	if state.Authenticated {
		t.Fatal("authenticated must remain false")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	dir := newStubDirectory()
	seedUser(dir, "alice", "goodpass", "alice@example.com")
	wf := newWorkflow(dir, &stubNotifier{})
	state := &session.State{Username: "alice", Password: "badpass"}

	_, err := wf.Login(context.Background(), state)
	if !errors.Is(err, domain.ErrBadCredential) {
		t.Fatalf("expected ErrBadCredential, got %v", err)
	}
	if state.Authenticated {
		t.Fatal("authenticated must remain false")
	}
}

func TestLogin_Success(t *testing.T) {
	dir := newStubDirectory()
	seedUser(dir, "alice", "goodpass", "alice@example.com")
	wf := newWorkflow(dir, &stubNotifier{})
	state := &session.State{Username: "alice", Password: "goodpass"}

	outcome, err := wf.Login(context.Background(), state)
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if outcome != domain.GoHome {
		t.Fatalf("expected GoHome, got %v", outcome)
	}
	if !state.Authenticated {
		t.Fatal("expected authenticated session")
	}
}

func TestStartRegistration_EmailTaken(t *testing.T) {
	dir := newStubDirectory()
	seedUser(dir, "alice", "pw", "alice@example.com")
	notifier := &stubNotifier{}
	wf := newWorkflow(dir, notifier)
	state := &session.State{Email: "alice@example.com"}

	_, err := wf.StartRegistration(context.Background(), state)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if state.IssuedCode != "" {
		t.Fatal("no code may be issued for a taken email")
	}
	if len(notifier.sent) != 0 {
		t.Fatal("no mail may be sent for a taken email")
	}
	if state.Email != "" {
		t.Fatal("email field must be cleared so the form can be re-entered")
	}
}

func TestStartRegistration_IssuesCode(t *testing.T) {
	notifier := &stubNotifier{}
	wf := newWorkflow(newStubDirectory(), notifier)
	state := &session.State{Email: "bob@example.com"}

	outcome, err := wf.StartRegistration(context.Background(), state)
	if err != nil {
		t.Fatalf("StartRegistration returned error: %v", err)
	}
	if outcome != domain.GoRegistration {
		t.Fatalf("expected GoRegistration, got %v", outcome)
	}
	if len(state.IssuedCode) != secret.CodeLength {
		t.Fatalf("expected %d-char code, got %q", secret.CodeLength, state.IssuedCode)
	}
	if state.Mode != session.ModeRegistering {
		t.Fatalf("expected registering mode, got %q", state.Mode)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(notifier.sent))
	}
	mail := notifier.sent[0]
	if mail.to != "bob@example.com" || mail.subject != "Verification Code" {
		t.Fatalf("unexpected mail: %+v", mail)
	}
	if !strings.Contains(mail.body, state.IssuedCode) {
		t.Fatal("mail body must contain the issued code")
	}
}

func TestConfirmRegistration_UsernameConflictWins(t *testing.T) {
	dir := newStubDirectory()
	seedUser(dir, "taken", "pw", "taken@example.com")
	wf := newWorkflow(dir, &stubNotifier{})
	// Both username and email collide; username must be reported.
	state := &session.State{
		Username: "taken",
		Email:    "taken@example.com",
	}

	outcome, err := wf.ConfirmRegistration(context.Background(), state)
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if outcome != domain.StayHere {
		t.Fatalf("expected StayHere, got %v", outcome)
	}
}

func TestConfirmRegistration_EmailTakenReturnsToVerification(t *testing.T) {
	dir := newStubDirectory()
	seedUser(dir, "other", "pw", "claimed@example.com")
	wf := newWorkflow(dir, &stubNotifier{})
	state := &session.State{
		Username: "fresh",
		Email:    "claimed@example.com",
		Code:     "stale-code",
	}

	outcome, err := wf.ConfirmRegistration(context.Background(), state)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if outcome != domain.GoVerification {
		t.Fatalf("expected GoVerification, got %v", outcome)
	}
	if state.Code != "" {
		t.Fatal("entered code must be dropped when sent back to verify")
	}
}

func TestConfirmRegistration_PasswordMismatch(t *testing.T) {
	wf := newWorkflow(newStubDirectory(), &stubNotifier{})
	state := &session.State{
		Username:        "bob",
		Email:           "bob@example.com",
		Password:        "one",
		PasswordConfirm: "two",
		Code:            "code-20-chars-aaaaaa",
		IssuedCode:      "code-20-chars-aaaaaa",
	}

	// Mismatch is reported even though the code matches.
	_, err := wf.ConfirmRegistration(context.Background(), state)
	if !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestConfirmRegistration_CodeMismatch(t *testing.T) {
	dir := newStubDirectory()
	wf := newWorkflow(dir, &stubNotifier{})
	state := &session.State{
		Username:        "bob",
		Email:           "bob@example.com",
		Password:        "pw",
		PasswordConfirm: "pw",
		Code:            "wrong",
		IssuedCode:      "right",
	}

	_, err := wf.ConfirmRegistration(context.Background(), state)
	if !errors.Is(err, domain.ErrCodeMismatch) {
		t.Fatalf("expected ErrCodeMismatch, got %v", err)
	}
	if len(dir.users) != 0 {
		t.Fatal("no user may be inserted on code mismatch")
	}
}

func TestRegistration_EndToEnd(t *testing.T) {
	dir := newStubDirectory()
	notifier := &stubNotifier{}
	wf := newWorkflow(dir, notifier)
	ctx := context.Background()

	state := &session.State{Email: "carol@example.com"}
	if _, err := wf.StartRegistration(ctx, state); err != nil {
		t.Fatalf("StartRegistration: %v", err)
	}

	state.FirstName = "Carol"
	state.LastName = "Jones"
	state.Username = "carol"
	state.Password = "s3cret"
	state.PasswordConfirm = "s3cret"
	state.Code = state.IssuedCode // the user types the emailed code

	outcome, err := wf.ConfirmRegistration(ctx, state)
	if err != nil {
		t.Fatalf("ConfirmRegistration: %v", err)
	}
	if outcome != domain.GoIndex {
		t.Fatalf("expected GoIndex, got %v", outcome)
	}
	// Registration does not log the user in.
	if state.Authenticated {
		t.Fatal("registration must not authenticate the session")
	}
	if state.Username != "" || state.Password != "" || state.Email != "" || state.IssuedCode != "" {
		t.Fatalf("session fields not cleared: %+v", state)
	}

	created, err := dir.FindByUsername(ctx, "carol")
	if err != nil || created == nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if created.PasswordHash == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if created.PasswordHash != secret.HashPassword("s3cret") {
		t.Fatal("stored digest does not match the password")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("creation timestamp not set")
	}

	// The new user can now log in.
	login := &session.State{Username: "carol", Password: "s3cret"}
	if _, err := wf.Login(ctx, login); err != nil {
		t.Fatalf("login after registration failed: %v", err)
	}
	if !login.Authenticated {
		t.Fatal("expected authenticated session after login")
	}
}

func TestStartRecovery_EmailNotFound(t *testing.T) {
	wf := newWorkflow(newStubDirectory(), &stubNotifier{})
	state := &session.State{Email: "nobody@example.com"}

	_, err := wf.StartRecovery(context.Background(), state)
	if !errors.Is(err, domain.ErrEmailNotFound) {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
	if state.IssuedCode != "" || state.RecoveryUserID != 0 {
		t.Fatal("no recovery state may be recorded for an unknown email")
	}
}

func TestRecovery_EndToEnd(t *testing.T) {
	dir := newStubDirectory()
	notifier := &stubNotifier{}
	wf := newWorkflow(dir, notifier)
	ctx := context.Background()
	user := seedUser(dir, "dave", "oldpass", "dave@example.com")

	state := &session.State{Email: "dave@example.com"}
	outcome, err := wf.StartRecovery(ctx, state)
	if err != nil {
		t.Fatalf("StartRecovery: %v", err)
	}
	if outcome != domain.GoRecovery {
		t.Fatalf("expected GoRecovery, got %v", outcome)
	}
	if state.RecoveryUserID != user.ID {
		t.Fatalf("expected recovery target %d, got %d", user.ID, state.RecoveryUserID)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].subject != "Recovery Code" {
		t.Fatalf("unexpected mail: %+v", notifier.sent)
	}

	state.Password = "newpass"
	state.PasswordConfirm = "newpass"
	state.Code = state.IssuedCode

	outcome, err = wf.ConfirmRecovery(ctx, state)
	if err != nil {
		t.Fatalf("ConfirmRecovery: %v", err)
	}
	if outcome != domain.GoIndex {
		t.Fatalf("expected GoIndex, got %v", outcome)
	}
	if state.Authenticated {
		t.Fatal("recovery must not authenticate the session")
	}

	// New password works, old one is dead.
	login := &session.State{Username: "dave", Password: "newpass"}
	if _, err := wf.Login(ctx, login); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	old := &session.State{Username: "dave", Password: "oldpass"}
	if _, err := wf.Login(ctx, old); !errors.Is(err, domain.ErrBadCredential) {
		t.Fatalf("expected ErrBadCredential with old password, got %v", err)
	}
}

func TestConfirmRecovery_CodeMismatch(t *testing.T) {
	dir := newStubDirectory()
	user := seedUser(dir, "erin", "oldpass", "erin@example.com")
	wf := newWorkflow(dir, &stubNotifier{})
	state := &session.State{
		RecoveryUserID:  user.ID,
		Password:        "newpass",
		PasswordConfirm: "newpass",
		Code:            "wrong",
		IssuedCode:      "right",
	}

	_, err := wf.ConfirmRecovery(context.Background(), state)
	if !errors.Is(err, domain.ErrCodeMismatch) {
		t.Fatalf("expected ErrCodeMismatch, got %v", err)
	}
	stored, _ := dir.FindByID(context.Background(), user.ID)
	if stored.PasswordHash != secret.HashPassword("oldpass") {
		t.Fatal("credential must not change on code mismatch")
	}
}

func TestStartRegistration_NotifierFailureStillProceeds(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("smtp down")}
	wf := newWorkflow(newStubDirectory(), notifier)
	state := &session.State{Email: "frank@example.com"}

	outcome, err := wf.StartRegistration(context.Background(), state)
	if err != nil {
		t.Fatalf("delivery failure must not surface: %v", err)
	}
	if outcome != domain.GoRegistration {
		t.Fatalf("expected GoRegistration, got %v", outcome)
	}
	if state.IssuedCode == "" {
		t.Fatal("code must still be issued when delivery fails")
	}
}

func TestConfirmRegistration_PersistenceFailureKeepsState(t *testing.T) {
	dir := newStubDirectory()
	dir.failInsert = true
	wf := newWorkflow(dir, &stubNotifier{})
	state := &session.State{
		FirstName:       "Grace",
		LastName:        "Lee",
		Username:        "grace",
		Email:           "grace@example.com",
		Password:        "pw",
		PasswordConfirm: "pw",
		Code:            "match",
		IssuedCode:      "match",
		Mode:            session.ModeRegistering,
	}

	_, err := wf.ConfirmRegistration(context.Background(), state)
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	// State survives so the user can retry without re-entering everything.
	if state.Username != "grace" || state.IssuedCode != "match" || state.Mode != session.ModeRegistering {
		t.Fatalf("session state must be left unchanged: %+v", state)
	}
}
