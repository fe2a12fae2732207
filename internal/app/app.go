package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"example.com/sketchspy/internal/config"
	"example.com/sketchspy/internal/game"
	"example.com/sketchspy/internal/httpapi"
	"example.com/sketchspy/internal/migrate"
	"example.com/sketchspy/internal/session"
	"example.com/sketchspy/internal/store"
	"example.com/sketchspy/internal/words"
)

const pingTimeout = 10 * time.Second

type App struct {
	cfg config.Config
	log *slog.Logger

	db  *pgxpool.Pool
	rdb *redis.Client

	hub *session.Hub
	srv *http.Server
}

// wordSource is what the game draws from and the lobby lists.
type wordSource interface {
	game.WordSupplier
	httpapi.CategoryLister
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	a := &App{cfg: cfg, log: log}

	src, err := a.openWords(ctx)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	a.hub = session.NewHub(session.Config{
		RoleRevealDelay:     cfg.Game.RoleRevealDelay,
		VotingDuration:      cfg.Game.VotingDuration,
		GuessDuration:       cfg.Game.GuessDuration,
		TurnTimeoutEnforced: cfg.Game.TurnTimeoutEnforced,
		MaxRooms:            cfg.Game.MaxRooms,
		SessionSecret:       []byte(cfg.Session.Secret),
		SessionTTL:          cfg.Session.TTL,
		InboundRate:         cfg.Game.InboundRate,
		InboundBurst:        cfg.Game.InboundBurst,
	}, src, log, nil)

	rooms := &httpapi.RoomsHandler{Rooms: a.hub, Categories: src, Log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	session.NewServer(a.hub).RegisterRoutes(mux)

	mux.HandleFunc("GET /api/categories", rooms.ListCategories)
	mux.Handle("GET /api/rooms/{code}",
		httpapi.SessionMiddleware([]byte(cfg.Session.Secret))(http.HandlerFunc(rooms.Room)))

	a.srv = &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}
	return a, nil
}

// openWords connects the configured word backend, seeding it when asked.
func (a *App) openWords(ctx context.Context) (wordSource, error) {
	cfg := a.cfg
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	switch cfg.Words.Backend {
	case config.WordsRedis:
		a.rdb = redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err := a.rdb.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping (%s db=%d): %w", cfg.Redis.Addr, cfg.Redis.DB, err)
		}
		bank := words.NewRedisBank(a.rdb)
		if cfg.Redis.SeedWords {
			if err := bank.Seed(ctx); err != nil {
				return nil, err
			}
			a.log.Info("redis word bank seeded")
		}
		return bank, nil

	case config.WordsPostgres:
		if cfg.Postgres.RunMigrations {
			if err := migrate.Up(cfg.Postgres.URL, cfg.Postgres.MigrationsDir, a.log); err != nil {
				return nil, err
			}
		}
		db, err := pgxpool.New(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		a.db = db
		if err := db.Ping(pingCtx); err != nil {
			return nil, fmt.Errorf("postgres ping: %w", err)
		}
		ws := store.NewWordStore(db)
		if err := ws.Seed(ctx, words.Builtin()); err != nil {
			return nil, err
		}
		return ws, nil

	default:
		return words.NewBank(nil), nil
	}
}

// Handler exposes the routes, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.srv.Handler
}

func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	a.log.Info("http server starting", "addr", a.cfg.HTTP.Addr, "words", a.cfg.Words.Backend)

	g.Go(func() error {
		err := a.srv.ListenAndServe()
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		a.log.Info("http server shutting down")
		_ = a.srv.Shutdown(shutdownCtx)
		return nil
	})

	err := g.Wait()
	_ = a.Close(context.Background())
	return err
}

// Close is best-effort and safe to call more than once.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.hub != nil {
		a.hub.Close()
	}
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
	if a.rdb != nil {
		errs = append(errs, a.rdb.Close())
		a.rdb = nil
	}
	return errors.Join(errs...)
}
