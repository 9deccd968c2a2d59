// Package session gates the console behind a single shared-secret check and
// remembers a successful login across restarts of the same client instance.
//
// This is a UI gate, not an authentication system: the expected credential
// pair is static, build-time-known configuration, there is no lockout or
// backoff, and nothing here should be relied on as a security boundary.
package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync"

	"orderdeck/internal/logging"
	"orderdeck/internal/repositories/settings"
	"orderdeck/internal/ui"
)

// identityKey is the single durable-storage key the gate owns.
const identityKey = "admin_identity"

// ErrInvalidCredentials is returned for any credential pair that does not
// exactly equal the expected pair. Unknown user and wrong password are
// deliberately one failure class.
var ErrInvalidCredentials = errors.New("invalid credentials")

// State is the gate's position in its two-state machine.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Session is the local record of whether the operator has authenticated,
// and as whom.
type Session struct {
	State State
	Email string
}

// Credentials is the expected shared-secret pair.
type Credentials struct {
	Email    string
	Password string
}

// Gate owns the session state. All dashboard content is blocked until it
// reaches Authenticated; Logout returns it to Unauthenticated. The cycle
// repeats, there is no terminal state.
type Gate struct {
	settings   settings.Repository
	creds      Credentials
	signingKey []byte
	notify     ui.Notifier
	log        logging.Logger

	mu      sync.Mutex
	current Session
}

func NewGate(repo settings.Repository, creds Credentials, signingKey []byte, notify ui.Notifier, log logging.Logger) *Gate {
	return &Gate{
		settings:   repo,
		creds:      creds,
		signingKey: signingKey,
		notify:     notify,
		log:        log,
	}
}

// Restore inspects durable storage for a previously persisted identity and,
// if one is present and readable, silently transitions to Authenticated
// with no remote round-trip. It never fails: any problem reading or
// decoding the stored value leaves the session unauthenticated.
func (g *Gate) Restore(ctx context.Context) {
	value, err := g.settings.Get(ctx, identityKey)
	if err != nil {
		g.log.Warn(ctx, "failed to read persisted session", "error", err)
		return
	}
	if value == nil {
		return
	}

	email, err := decodeIdentity(string(value), g.signingKey)
	if err != nil {
		g.log.Warn(ctx, "ignoring unreadable persisted session", "error", err)
		return
	}

	g.setSession(Session{State: Authenticated, Email: email})
	g.log.Info(ctx, "session restored", "email", email)
}

// Authenticate compares the supplied pair against the expected pair in
// constant time. On match it persists the identity and transitions to
// Authenticated. On mismatch it emits exactly one error notification with
// no further detail and returns ErrInvalidCredentials, leaving the state
// unchanged.
func (g *Gate) Authenticate(ctx context.Context, email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(g.creds.Email))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.creds.Password))

	if emailOK&passwordOK != 1 {
		g.notify.Error("Error", "Invalid credentials")
		return ErrInvalidCredentials
	}

	token, err := encodeIdentity(email, g.signingKey)
	if err != nil {
		// The login itself succeeded; it just won't survive a restart.
		g.log.Warn(ctx, "failed to encode session for persistence", "error", err)
	} else if err := g.settings.Set(ctx, identityKey, []byte(token)); err != nil {
		g.log.Warn(ctx, "failed to persist session", "error", err)
	}

	g.setSession(Session{State: Authenticated, Email: email})
	g.log.Info(ctx, "operator authenticated", "email", email)
	return nil
}

// Logout clears the persisted identity and transitions to Unauthenticated.
// Calling it while already unauthenticated is a no-op.
func (g *Gate) Logout(ctx context.Context) error {
	g.setSession(Session{State: Unauthenticated})

	if err := g.settings.Delete(ctx, identityKey); err != nil {
		return err
	}
	return nil
}

// Session returns the current session value.
func (g *Gate) Session() Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Authenticated reports whether the gate currently admits the operator.
func (g *Gate) Authenticated() bool {
	return g.Session().State == Authenticated
}

func (g *Gate) setSession(s Session) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = s
}
