package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/alicebob/miniredis/v2"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/narrative"
	"github.com/KirkDiggler/rpg-sheet/internal/clients/portrait"
	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/checks"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/chronicle"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/kvstore"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/services/pathbuilder"
)

// appDeps lets tests swap the outside world
type appDeps struct {
	Narrative narrative.Client
	Portrait  portrait.Client
	Roller    dice.Roller
}

// app is the wired service graph
type app struct {
	handler   *v1alpha1.Handler
	sheets    sheet.Service
	chronicle chronicle.Service
	closers   []io.Closer
}

// Close releases stores and connections in reverse order
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			slog.Warn("failed to close resource", "error", err)
		}
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// newApp wires config into stores, repositories, the engine, the event bus,
// orchestrators and the handler
func newApp(ctx context.Context, cfg *config.Config, deps *appDeps) (*app, error) {
	if deps == nil {
		deps = &appDeps{}
	}
	a := &app{}

	tables, err := rules.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rule tables")
	}

	store, rollClient, err := a.openStores(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	clk := clock.New()

	sheetRepo, err := sheetrepo.New(&sheetrepo.Config{
		Store:    store,
		Defaults: tables.Defaults,
		IDGen:    idgen.NewUUID("gear"),
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create sheet repository")
	}

	rollRepo, err := rolllog.NewRedisRepository(&rolllog.Config{
		Client:     rollClient,
		Clock:      clk,
		TTL:        cfg.RollLog.TTL,
		MaxEntries: cfg.RollLog.Size,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create roll log repository")
	}

	calc, err := engine.New(&engine.Config{
		Progression: tables.Progression,
		Catalog:     tables.Catalog,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create rules engine")
	}

	converter, err := pathbuilder.New(&pathbuilder.Config{
		Engine:      calc,
		Progression: tables.Progression,
		IDGen:       idgen.NewUUID("gear"),
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create pathbuilder converter")
	}

	narrator := deps.Narrative
	if narrator == nil {
		narrator, err = narrative.New(&narrative.Config{
			BaseURL: cfg.Narrative.BaseURL,
			APIKey:  cfg.Narrative.APIKey,
			Model:   cfg.Narrative.Model,
			Timeout: cfg.Narrative.Timeout,
		})
		if err != nil {
			a.Close()
			return nil, errors.Wrap(err, "failed to create narrative client")
		}
	}

	portraits := deps.Portrait
	if portraits == nil {
		portraits, err = portrait.New(&portrait.Config{
			BaseURL: cfg.Portrait.BaseURL,
			APIKey:  cfg.Portrait.APIKey,
			Model:   cfg.Portrait.Model,
			Size:    cfg.Portrait.Size,
		})
		if err != nil {
			a.Close()
			return nil, errors.Wrap(err, "failed to create portrait client")
		}
	}

	roller := deps.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	bus := rpgevents.NewBus()

	a.sheets, err = sheet.NewOrchestrator(&sheet.Config{
		SheetRepo:          sheetRepo,
		Engine:             calc,
		Progression:        tables.Progression,
		Converter:          converter,
		PortraitClient:     portraits,
		EventBus:           bus,
		IDGen:              idgen.NewUUID("spell"),
		Clock:              clk,
		DefaultCharacterID: cfg.DefaultCharacterID,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create sheet orchestrator")
	}

	checksService, err := checks.NewOrchestrator(&checks.Config{
		SheetService:       a.sheets,
		RollLogRepo:        rollRepo,
		DiceRoller:         roller,
		IDGenerator:        idgen.NewUUID("roll"),
		Clock:              clk,
		DefaultCharacterID: cfg.DefaultCharacterID,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create checks orchestrator")
	}

	a.chronicle, err = chronicle.NewOrchestrator(&chronicle.Config{
		EventBus:        bus,
		SheetService:    a.sheets,
		NarrativeClient: narrator,
		Window:          cfg.Narrative.Debounce,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create chronicle")
	}

	a.handler, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SheetService:  a.sheets,
		ChecksService: checksService,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create sheet handler")
	}

	return a, nil
}

// openStores opens the character store and the Redis the roll log lives
// in. With the SQLite store the roll log runs on an in-process Redis, so it
// lasts only as long as the server.
func (a *app) openStores(ctx context.Context, cfg *config.Config) (kvstore.Store, redisclient.Client, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		store, err := kvstore.NewSQLite(ctx, &kvstore.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to open sqlite store")
		}
		a.closers = append(a.closers, store)

		mr := miniredis.NewMiniRedis()
		if err := mr.Start(); err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to start in-process roll log")
		}
		a.closers = append(a.closers, closerFunc(func() error {
			mr.Close()
			return nil
		}))

		client, err := redisclient.NewClient(mr.Addr(), nil)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create roll log client")
		}
		a.closers = append(a.closers, client)

		slog.InfoContext(ctx, "using sqlite store", "path", cfg.SQLitePath, "roll_log", mr.Addr())
		return store, client, nil

	default:
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			PoolSize:     10,
			MinIdleConns: 2,
			MaxRetries:   3,
		})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis client")
		}
		a.closers = append(a.closers, client)

		if err := redisclient.Ping(ctx, client); err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis unreachable")
		}

		store, err := kvstore.NewRedis(&kvstore.RedisConfig{Client: client})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis store")
		}

		slog.InfoContext(ctx, "using redis store", "addr", cfg.RedisAddr)
		return store, client, nil
	}
}
