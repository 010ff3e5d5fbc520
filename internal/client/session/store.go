// Package session owns the client's belief about which user, if anyone, is
// currently authenticated. It reconciles a fast local snapshot with the
// slower authoritative server check and exposes the four lifecycle
// operations: Bootstrap, Login, Register, Logout.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Gilles-knd/galerebuddy/internal/client/api"
	"github.com/Gilles-knd/galerebuddy/internal/client/models"
	"github.com/Gilles-knd/galerebuddy/internal/client/repositories/credentials"
	"github.com/Gilles-knd/galerebuddy/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Phase describes how trustworthy the current identity is.
type Phase string

const (
	// PhaseAnonymous: no token, no user.
	PhaseAnonymous Phase = "anonymous"
	// PhaseOptimistic: identity restored from the local snapshot; the
	// server has not confirmed it (yet, or at all if it is unreachable).
	PhaseOptimistic Phase = "optimistic"
	// PhaseConfirmed: identity validated by the server.
	PhaseConfirmed Phase = "confirmed"
)

// ErrNoUser is returned when an auth flow succeeded at the transport level
// but the server response carried no usable identity.
var ErrNoUser = errors.New("auth response carried no user")

// Store is the single source of truth for the current session. One instance
// per running client; all consumers receive it by injection. Writes are
// serialized with a mutex, so overlapping calls from different goroutines
// cannot interleave their slot updates.
type Store struct {
	client api.Client
	creds  credentials.Repository
	log    logging.Logger

	mu       sync.Mutex
	user     *models.User
	phase    Phase
	tokenExp *time.Time
}

// NewStore builds a session store over the given API client and credential
// repository. The store starts anonymous; call Bootstrap to restore a
// persisted session.
func NewStore(client api.Client, creds credentials.Repository, log logging.Logger) *Store {
	return &Store{
		client: client,
		creds:  creds,
		log:    log.With("component", "session"),
		phase:  PhaseAnonymous,
	}
}

// CurrentUser returns the current identity, or nil when anonymous.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Phase reports the current session phase.
func (s *Store) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// IsAuthenticated reports whether a user is set, stale or confirmed.
func (s *Store) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// TokenExpiresAt returns the expiry claim of the stored token when it is a
// decodable JWT carrying one, nil otherwise. The claim is read without
// signature verification; it is informational only and never used to trust
// the token.
func (s *Store) TokenExpiresAt() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokenExp == nil {
		return nil
	}
	t := *s.tokenExp
	return &t
}

// Bootstrap restores a persisted session. It runs once at startup.
//
// Without a stored token it resolves to anonymous immediately, making no
// network call. With one, the cached snapshot (if any) becomes the current
// user synchronously, before the server is asked to validate the token, so
// a restart never shows a logged-out flash while a valid session is being
// re-checked. A successful validation overwrites the snapshot; a failed one
// is swallowed when a snapshot exists (the failure may be a transient
// network problem and a user is never eagerly logged out over it) and
// purges the token when none does.
//
// Only a storage failure is returned as an error.
func (s *Store) Bootstrap(ctx context.Context) error {
	token, err := s.creds.Get(ctx, credentials.KeyToken)
	if err != nil {
		return fmt.Errorf("read token slot: %w", err)
	}
	if len(token) == 0 {
		s.setAnonymous()
		return nil
	}

	exp := tokenExpiry(string(token))
	if exp != nil && exp.Before(time.Now()) {
		s.log.Warn(ctx, "stored token is past its expiry claim", "expired_at", exp.String())
	}

	cached := s.loadSnapshot(ctx)
	if cached != nil {
		s.setUser(cached, PhaseOptimistic, exp)
	}

	user, err := s.client.Me(ctx)
	if err != nil || user == nil {
		if cached == nil {
			s.log.Warn(ctx, "token rejected and no cached identity, dropping session")
			s.purge(ctx)
			return nil
		}
		s.log.Warn(ctx, "session verification failed, keeping cached identity",
			"user_id", cached.ID, "error", errString(err))
		return nil
	}

	if err := s.saveSnapshot(ctx, user); err != nil {
		s.log.Warn(ctx, "failed to refresh user snapshot", "error", err.Error())
	}
	s.setUser(user, PhaseConfirmed, exp)
	return nil
}

// Login authenticates with the server. On success the token and the fetched
// profile are persisted together and the returned user becomes current.
// On any failure the store's state, in memory and on disk, is unchanged.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := s.client.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return s.establish(ctx, resp.JWT)
}

// Register creates an account and logs it in, with the same success and
// failure contract as Login.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return s.establish(ctx, resp.JWT)
}

// Logout clears both persisted slots and the in-memory identity,
// unconditionally. It never fails: a storage error is logged and the
// in-memory state is cleared regardless. The token is not server-revoked;
// dropping it locally ends the session.
func (s *Store) Logout(ctx context.Context) {
	if err := s.creds.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted credentials", "error", err.Error())
	}
	s.setAnonymous()
}

// establish finishes an auth flow: stores the fresh token so the profile
// fetch goes out authenticated, fetches the authoritative user, then
// persists token and snapshot in one transaction. The previous token slot
// is restored if the profile fetch fails, leaving the store as it was.
func (s *Store) establish(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNoUser
	}

	prev, err := s.creds.Get(ctx, credentials.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("read token slot: %w", err)
	}
	if err := s.creds.Set(ctx, credentials.KeyToken, []byte(token)); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	user, err := s.client.CurrentUser(ctx)
	if err == nil && user == nil {
		err = ErrNoUser
	}
	if err != nil {
		s.restoreToken(ctx, prev)
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	snapshot, err := json.Marshal(user)
	if err != nil {
		s.restoreToken(ctx, prev)
		return nil, fmt.Errorf("encode user snapshot: %w", err)
	}
	if err := s.creds.SaveSession(ctx, token, snapshot); err != nil {
		s.restoreToken(ctx, prev)
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.setUser(user, PhaseConfirmed, tokenExpiry(token))
	return s.CurrentUser(), nil
}

// restoreToken puts the token slot back to its pre-login value. Best effort:
// a failure here is logged, there is nothing further to do about it.
func (s *Store) restoreToken(ctx context.Context, prev []byte) {
	var err error
	if len(prev) == 0 {
		err = s.creds.Delete(ctx, credentials.KeyToken)
	} else {
		err = s.creds.Set(ctx, credentials.KeyToken, prev)
	}
	if err != nil {
		s.log.Error(ctx, "failed to restore token slot", "error", err.Error())
	}
}

// purge drops both slots and resets to anonymous. Used when a stored token
// turns out to be unusable and there is no snapshot worth keeping.
func (s *Store) purge(ctx context.Context) {
	if err := s.creds.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to purge credentials", "error", err.Error())
	}
	s.setAnonymous()
}

// loadSnapshot decodes the persisted user snapshot. A missing or corrupt
// snapshot reads as nil; corruption is logged, not surfaced.
func (s *Store) loadSnapshot(ctx context.Context) *models.User {
	data, err := s.creds.Get(ctx, credentials.KeyUser)
	if err != nil {
		s.log.Warn(ctx, "failed to read user snapshot", "error", err.Error())
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.Warn(ctx, "corrupt user snapshot, ignoring", "error", err.Error())
		return nil
	}
	return &user
}

func (s *Store) saveSnapshot(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.creds.Set(ctx, credentials.KeyUser, data)
}

func (s *Store) setUser(user *models.User, phase Phase, exp *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.user = &u
	s.phase = phase
	s.tokenExp = exp
}

func (s *Store) setAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.phase = PhaseAnonymous
	s.tokenExp = nil
}

// tokenExpiry pulls the exp claim out of a JWT without verifying it.
// Returns nil for opaque tokens or tokens without an expiry.
func tokenExpiry(token string) *time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	t := claims.ExpiresAt.Time
	return &t
}

func errString(err error) string {
	if err == nil {
		return "empty identity"
	}
	return err.Error()
}
