package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"managesalary/internal/domain/analytics"
	"managesalary/internal/domain/apikey"
	"managesalary/internal/domain/record"
	"managesalary/internal/domain/session"
	"managesalary/internal/domain/tag"
	"managesalary/internal/infrastructure/api"
	"managesalary/internal/infrastructure/cache"
	"managesalary/internal/shared/config"
	"managesalary/internal/shared/logging"
	"managesalary/internal/shared/swr"
	"managesalary/internal/shared/telemetry"
)

const usage = `Manage Salary CLI - personal finance tracking against the manage-salary API

Usage:
  salary <command> [options]

Commands:
  login        Sign in with email and password
  signup       Create an account
  logout       Clear the stored session
  whoami       Show the current session's identity
  records      List and mutate income/expense records
  tags         List and mutate categories
  apikeys      Manage long-lived API keys
  dashboard    Grouped totals by record type
  analytics    Spending aggregation for a date range
  insights     Server-computed trends, peaks and recommendations
  theme        Show or set the UI theme preference

Examples:
  salary login --email=me@example.com
  salary records list --from=2024-01-01 --to=2024-01-31 --type=out
  salary records add --type=out --amount=19.99 --tag=<tag-id> --description="lunch"
  salary analytics --from=2024-01-01 --to=2024-01-31 --local
  salary apikeys add --name=ci --permissions=create_records --expires=2025-06-01
`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]
	args := os.Args[2:]

	if command == "help" || command == "-h" || command == "--help" {
		fmt.Println(usage)
		return
	}

	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer app.close(ctx)

	switch command {
	case "login":
		err = app.runLogin(ctx, args)
	case "signup":
		err = app.runSignup(ctx, args)
	case "logout":
		err = app.runLogout(args)
	case "whoami":
		err = app.runWhoami(args)
	case "records":
		err = app.runRecords(ctx, args)
	case "tags":
		err = app.runTags(ctx, args)
	case "apikeys":
		err = app.runAPIKeys(ctx, args)
	case "dashboard":
		err = app.runDashboard(ctx, args)
	case "analytics":
		err = app.runAnalytics(ctx, args)
	case "insights":
		err = app.runInsights(ctx, args)
	case "theme":
		err = app.runTheme(args)
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		fmt.Println(usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app wires configuration, session state, the API client, the cache and the
// domain services behind each command.
type app struct {
	cfg    *config.Config
	logger *logrus.Logger

	store *session.FileStore
	prefs *session.Preferences

	client    *api.Client
	records   *record.Service
	tags      *tag.Service
	keys      *apikey.Service
	analytics *analytics.Service

	refreshDone chan struct{}
	closers     []func(context.Context) error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logging.New(cfg.Log.Level, cfg.Log.Environment)}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, telemetry.Config{
			ServiceName:  cfg.Telemetry.ServiceName,
			Environment:  cfg.Log.Environment,
			OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
			MetricsPort:  cfg.Telemetry.MetricsPort,
		}, a.logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, shutdown)
	}

	a.store, err = session.NewFileStore(cfg.Session.TokenPath)
	if err != nil {
		return nil, err
	}
	a.prefs, err = session.LoadPreferences(cfg.Session.PreferencesPath)
	if err != nil {
		return nil, err
	}

	a.client = api.NewClient(api.Options{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
		Tokens:     a.store,
		Logger:     a.logger,
		Instrument: cfg.Telemetry.Enabled,
	})

	backend, err := newCacheBackend(cfg.Cache)
	if err != nil {
		return nil, err
	}
	if closer, ok := backend.(interface{ Close() error }); ok {
		a.closers = append(a.closers, func(context.Context) error { return closer.Close() })
	}
	store := swr.New(backend, cfg.Cache.TTL)

	a.records = record.NewService(a.client, store)
	a.tags = tag.NewService(a.client, store)
	a.keys = apikey.NewService(a.client)
	a.analytics = analytics.NewService(a.client, store)

	// Silent refresh, off the command's path. close waits for it so a
	// refreshed token is not lost on fast commands.
	manager := session.NewManager(a.store, a.client, a.logger)
	a.refreshDone = make(chan struct{})
	go func() {
		defer close(a.refreshDone)
		manager.Refresh(ctx)
	}()

	return a, nil
}

func newCacheBackend(cfg config.CacheConfig) (swr.Backend, error) {
	switch cfg.Backend {
	case "redis":
		return cache.NewRedis(cfg.RedisURL)
	default:
		return cache.NewMemory(), nil
	}
}

func (a *app) close(ctx context.Context) {
	<-a.refreshDone
	for _, closer := range a.closers {
		if err := closer(ctx); err != nil {
			a.logger.WithError(err).Warn("shutdown error")
		}
	}
}
