package session

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/flashlingo/flashlingo-go/core/logger"
	"github.com/flashlingo/flashlingo-go/core/profile"
	"github.com/flashlingo/flashlingo-go/core/signal"
)

// ProfileResolver translates a bearer token into a user profile.
// *profile.Resolver satisfies it.
type ProfileResolver interface {
	Resolve(ctx context.Context, token string) (*profile.UserProfile, error)
}

// Store owns the client session. It is created once at application root and
// passed to consumers; all state transitions go through its methods and are
// serialized by an internal mutex.
type Store struct {
	mu        sync.Mutex
	token     string
	profile   *profile.UserProfile
	status    Status
	lastError string

	tokens   TokenStore
	resolver ProfileResolver
	bus      *signal.Bus
	log      *slog.Logger

	initOnce sync.Once
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger enables structured logging of session transitions.
func WithLogger(log *slog.Logger) StoreOption {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore creates a session store wired to the given resolver, durable token
// storage, and signal bus. The store starts uninitialized; call Initialize
// once at startup and run Listen in a goroutine to react to invalidation
// signals.
func NewStore(resolver ProfileResolver, tokens TokenStore, bus *signal.Bus, opts ...StoreOption) *Store {
	s := &Store{
		status:   StatusUninitialized,
		tokens:   tokens,
		resolver: resolver,
		bus:      bus,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns a race-free snapshot of the session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Session{
		Token:     s.token,
		Profile:   s.profile,
		Status:    s.status,
		LastError: s.lastError,
	}
}

// Token returns the current bearer token, empty when not authenticated or
// still loading. Satisfies apiclient.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusAuthenticated {
		return ""
	}
	return s.token
}

// Login stores the token durably, marks the session as loading, and resolves
// the profile. On success the session becomes authenticated; on any
// resolution failure the durable token is cleared and the session settles on
// anonymous with LastError populated. Failures are never retried.
//
// If a newer Login or Logout changes the session while resolution is in
// flight, the late result is discarded and ErrSuperseded returned.
func (s *Store) Login(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	s.token = token
	s.profile = nil
	s.status = StatusLoading
	s.lastError = ""

	// Persist while holding the lock so a delayed save from a concurrent
	// login cannot land after a newer token and desync durable storage.
	if err := s.tokens.Save(ctx, token); err != nil {
		s.token = ""
		s.status = StatusAnonymous
		s.lastError = "failed to persist credential"
		s.mu.Unlock()
		s.log.ErrorContext(ctx, "failed to persist session token", logger.Error(err))
		return err
	}
	s.mu.Unlock()

	prof, err := s.resolver.Resolve(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Staleness check: only apply the result if this login is still current.
	if s.token != token {
		s.log.DebugContext(ctx, "discarded stale profile resolution")
		return ErrSuperseded
	}

	if err != nil {
		// Both auth rejection and transient failures invalidate the session.
		if cerr := s.tokens.Clear(ctx); cerr != nil {
			s.log.ErrorContext(ctx, "failed to clear session token", logger.Error(cerr))
		}
		s.token = ""
		s.profile = nil
		s.status = StatusAnonymous
		s.lastError = "failed to authenticate user"
		s.log.WarnContext(ctx, "profile resolution failed", logger.Error(err))
		return err
	}

	s.profile = prof
	s.status = StatusAuthenticated
	s.lastError = ""
	s.log.InfoContext(ctx, "session authenticated",
		slog.Int64("user_id", prof.ID),
		slog.String("role", string(prof.Role)))
	return nil
}

// Logout clears the durable token and all session state, then publishes
// session-ended so independent parts of the application can reset. Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	return s.end(ctx, "logout")
}

// Initialize runs exactly once. With a durable token present it behaves like
// Login with that token; otherwise the session settles on anonymous without
// any network call. A durable storage read failure leaves the session in
// StatusError.
func (s *Store) Initialize(ctx context.Context) error {
	err := ErrAlreadyInitialized
	s.initOnce.Do(func() {
		err = s.initialize(ctx)
	})
	return err
}

func (s *Store) initialize(ctx context.Context) error {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		s.mu.Lock()
		s.status = StatusError
		s.lastError = "cannot read stored credential"
		s.mu.Unlock()
		s.log.ErrorContext(ctx, "failed to load session token", logger.Error(err))
		return err
	}

	if token == "" {
		s.mu.Lock()
		s.status = StatusAnonymous
		s.mu.Unlock()
		return nil
	}

	return s.Login(ctx, token)
}

// Listen subscribes to the signal bus and performs the equivalent of Logout
// whenever session-invalidated is received. It blocks until ctx is cancelled
// or the bus is closed; run it in a goroutine at application root.
func (s *Store) Listen(ctx context.Context) error {
	sub := s.bus.Subscribe(ctx)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-sub.Receive(ctx):
			if !ok {
				return nil
			}
			if msg.Data.Kind != signal.KindSessionInvalidated {
				continue
			}
			s.log.InfoContext(ctx, "session invalidated",
				logger.Event(string(msg.Data.Kind)),
				slog.String("reason", msg.Data.Reason))
			if err := s.end(ctx, msg.Data.Reason); err != nil {
				s.log.ErrorContext(ctx, "failed to clear invalidated session", logger.Error(err))
			}
		}
	}
}

// end clears all session state, clears durable storage, and publishes
// session-ended. State is fully cleared before the signal goes out, so any
// subscriber reading the session afterwards observes the anonymous state.
func (s *Store) end(ctx context.Context, reason string) error {
	s.mu.Lock()
	s.token = ""
	s.profile = nil
	s.status = StatusAnonymous
	s.lastError = ""
	err := s.tokens.Clear(ctx)
	s.mu.Unlock()

	if s.bus != nil {
		if perr := s.bus.Publish(ctx, signal.KindSessionEnded, reason); perr != nil {
			s.log.DebugContext(ctx, "failed to publish session-ended", logger.Error(perr))
		}
	}
	return err
}
