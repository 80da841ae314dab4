package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hev-builder/internal/catalog"
	"github.com/KirkDiggler/hev-builder/internal/engine"
	"github.com/KirkDiggler/hev-builder/internal/errors"
	"github.com/KirkDiggler/hev-builder/internal/orchestrators/roster"
	"github.com/KirkDiggler/hev-builder/internal/pkg/clock"
	"github.com/KirkDiggler/hev-builder/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/hev-builder/internal/redis"
	rosterrepo "github.com/KirkDiggler/hev-builder/internal/repositories/roster"
)

// app holds the flags and the services built from them for one invocation
type app struct {
	catalogPath string
	redisAddr   string
	memory      bool
	verbose     bool

	out     io.Writer
	logger  *slog.Logger
	catalog *catalog.Catalog
	engine  engine.Engine

	repo    rosterrepo.Repository
	redis   redisclient.Client
	closers []func() error
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "hevbuilder",
		Short:         "HE-V unit builder",
		Long:          `hevbuilder configures HE-V units against a catalog, prices and validates them, and manages rosters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.catalogPath, "catalog", "", "catalog YAML file (default: built-in catalog)")
	flags.StringVar(&a.redisAddr, "redis", redisclient.DefaultAddr, "Redis address for the roster store")
	flags.BoolVar(&a.memory, "memory", false, "keep rosters in memory for this invocation only")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCatalogCmd(a),
		newBuildCmd(a),
		newRandomCmd(a),
		newRosterCmd(a),
	)

	return root
}

func (a *app) setup() error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cat, err := a.loadCatalog()
	if err != nil {
		return err
	}
	a.catalog = cat

	eng, err := engine.New(&engine.Config{
		Catalog: cat,
		Logger:  a.logger,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create engine")
	}
	a.engine = eng

	return nil
}

func (a *app) loadCatalog() (*catalog.Catalog, error) {
	if a.catalogPath == "" {
		return catalog.Default()
	}

	cat, err := catalog.LoadFile(a.catalogPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", a.catalogPath)
	}
	a.logger.Debug("loaded catalog",
		"path", a.catalogPath,
		"classes", len(cat.Classes),
		"weapons", len(cat.Weapons),
		"upgrades", len(cat.Upgrades))
	return cat, nil
}

// rosterService connects the roster store on first use so catalog and build
// commands never need Redis
func (a *app) rosterService(ctx context.Context) (roster.Service, error) {
	if a.repo == nil {
		repo, err := a.openRepository(ctx)
		if err != nil {
			return nil, err
		}
		a.repo = repo
	}

	return roster.NewOrchestrator(&roster.Config{
		Engine:           a.engine,
		Repository:       a.repo,
		IDGenerator:      idgen.NewUUID("roster"),
		AssetIDGenerator: idgen.NewUUID("asset"),
		Clock:            clock.New(),
		Logger:           a.logger,
	})
}

func (a *app) openRepository(ctx context.Context) (rosterrepo.Repository, error) {
	if a.memory {
		return rosterrepo.NewInMemory(), nil
	}

	client, err := a.redisClient(ctx)
	if err != nil {
		return nil, err
	}
	return rosterrepo.NewRedis(&rosterrepo.RedisConfig{Client: client, Logger: a.logger})
}

func (a *app) auditor(ctx context.Context) (*rosterrepo.Auditor, error) {
	if a.memory {
		return nil, errors.FailedPrecondition("audit needs the Redis roster store")
	}

	client, err := a.redisClient(ctx)
	if err != nil {
		return nil, err
	}
	return rosterrepo.NewAuditor(&rosterrepo.RedisConfig{Client: client, Logger: a.logger})
}

func (a *app) redisClient(ctx context.Context) (redisclient.Client, error) {
	if a.redis != nil {
		return a.redis, nil
	}

	client, err := redisclient.NewClient(a.redisAddr, &redisclient.Options{
		DialTimeout: 2 * time.Second,
		MaxRetries:  1,
	})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)

	if err := redisclient.Ping(ctx, client); err != nil {
		return nil, errors.Wrapf(err, "roster store at %s is unavailable (use --memory to run without Redis)", a.redisAddr)
	}

	a.redis = client
	return client, nil
}

func (a *app) close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
