package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/flashlingo/flashlingo-go/core/apiclient"
	"github.com/flashlingo/flashlingo-go/core/config"
	"github.com/flashlingo/flashlingo-go/core/guard"
	"github.com/flashlingo/flashlingo-go/core/profile"
	"github.com/flashlingo/flashlingo-go/core/session"
	"github.com/flashlingo/flashlingo-go/core/signal"
)

// View names registered with the guard. The CLI maps each privileged command
// to a view, mirroring how the web client guards its routes.
const (
	viewDashboard = "dashboard"
	viewAdmin     = "admin"
)

type appFlags struct {
	tokenFile string
	logLevel  string
}

// App wires the session store, signal bus, API client, and guard registry
// together for one command invocation.
type App struct {
	Store  *session.Store
	Client *apiclient.Client
	Guards *guard.Registry

	bus    *signal.Bus
	cancel context.CancelFunc
}

// newApp builds the application root: loads configuration, restores any
// persisted session, and starts the invalidation listener.
func newApp(ctx context.Context, flags *appFlags) (*App, error) {
	var cfg apiclient.Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(flags.logLevel),
	}))

	tokens, err := session.NewFileTokenStore(flags.tokenFile)
	if err != nil {
		return nil, err
	}

	bus := signal.NewBus(16)
	resolver := profile.NewResolver(cfg.BaseURL,
		profile.WithUserAgent(appName+"/"+Version),
	)
	store := session.NewStore(resolver, tokens, bus, session.WithLogger(log))
	client := apiclient.New(cfg, store, bus,
		apiclient.WithLogger(log),
		apiclient.WithUserAgent(appName+"/"+Version),
	)

	guards := guard.NewRegistry()
	guards.Register(viewDashboard, guard.RequireAuthentication())
	guards.Register(viewAdmin, guard.RequireRole(profile.RoleAdmin))

	listenCtx, cancel := context.WithCancel(context.Background())
	go func() { _ = store.Listen(listenCtx) }()

	if err := store.Initialize(ctx); err != nil &&
		!errors.Is(err, profile.ErrAuthenticationFailed) &&
		!errors.Is(err, profile.ErrTransientFailure) {
		cancel()
		_ = bus.Close()
		return nil, fmt.Errorf("initialize session: %w", err)
	}

	return &App{
		Store:  store,
		Client: client,
		Guards: guards,
		bus:    bus,
		cancel: cancel,
	}, nil
}

// Close stops the invalidation listener and the signal bus.
func (a *App) Close() {
	a.cancel()
	_ = a.bus.Close()
}

// Authorize consults the guard for the given view and converts non-Show
// decisions into actionable errors. This is the presentation-boundary adapter
// around the pure guard.Decide.
func (a *App) Authorize(view string) error {
	req, err := a.Guards.For(view)
	if err != nil {
		return err
	}

	decision := guard.Decide(a.Store.Current(), req)
	switch decision.Action {
	case guard.ActionShow:
		return nil
	case guard.ActionRedirectToLogin:
		return errors.New("not logged in; run 'flashlingo login' first")
	case guard.ActionRedirectToRoleHome:
		return fmt.Errorf("this command is not available to the %s role", decision.Role)
	case guard.ActionPending:
		return errors.New("session state not resolved yet; try again")
	default:
		return fmt.Errorf("unexpected guard decision %q", decision.Action)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
