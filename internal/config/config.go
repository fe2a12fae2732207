package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devSecret = "dev-secret-change-me"

// Word backends.
const (
	WordsMemory   = "memory"
	WordsRedis    = "redis"
	WordsPostgres = "postgres"
)

// Config describes all runtime settings for the server. Load it once in
// main, validate, and pass it down.
type Config struct {
	Env string // dev|stage|prod

	Log struct {
		Format string // text|json
		Level  string // debug|info|warn|error
	}

	HTTP struct {
		Addr              string
		ReadHeaderTimeout time.Duration
		ReadTimeout       time.Duration
		WriteTimeout      time.Duration
		IdleTimeout       time.Duration
		ShutdownTimeout   time.Duration
	}

	Words struct {
		Backend string // memory|redis|postgres
	}

	Postgres struct {
		URL           string
		RunMigrations bool
		MigrationsDir string // empty => migrations built into the binary
	}

	Redis struct {
		Addr      string
		DB        int
		SeedWords bool
	}

	Session struct {
		Secret string
		TTL    time.Duration
	}

	Game struct {
		RoleRevealDelay     time.Duration
		VotingDuration      time.Duration
		GuessDuration       time.Duration
		TurnTimeoutEnforced bool
		MaxRooms            int
		InboundRate         float64
		InboundBurst        int
	}
}

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

func LoadFromEnv() (Config, error) {
	var c Config

	c.Env = envString("APP_ENV", "dev")
	c.Log.Format = envString("LOG_FORMAT", "text")
	c.Log.Level = envString("LOG_LEVEL", "info")

	port := envString("PORT", "8080")
	c.HTTP.Addr = envString("HTTP_ADDR", ":"+port)
	c.HTTP.ReadHeaderTimeout = envDuration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second)
	c.HTTP.ReadTimeout = envDuration("HTTP_READ_TIMEOUT", 0)
	c.HTTP.WriteTimeout = envDuration("HTTP_WRITE_TIMEOUT", 0)
	c.HTTP.IdleTimeout = envDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)
	c.HTTP.ShutdownTimeout = envDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second)

	c.Words.Backend = envString("WORDS_BACKEND", WordsMemory)

	c.Postgres.URL = envString("DATABASE_URL", "")
	c.Postgres.RunMigrations = envBool("RUN_MIGRATIONS", true)
	c.Postgres.MigrationsDir = envString("MIGRATIONS_DIR", "")

	c.Redis.Addr = envString("REDIS_ADDR", "localhost:6379")
	c.Redis.DB = envInt("REDIS_DB", 0)
	c.Redis.SeedWords = envBool("REDIS_SEED_WORDS", true)

	c.Session.Secret = envString("SESSION_SECRET", devSecret)
	c.Session.TTL = envDuration("SESSION_TTL", 12*time.Hour)

	c.Game.RoleRevealDelay = envDuration("ROLE_REVEAL_DELAY", 5*time.Second)
	c.Game.VotingDuration = envDuration("VOTING_DURATION", 30*time.Second)
	c.Game.GuessDuration = envDuration("GUESS_DURATION", 20*time.Second)
	c.Game.TurnTimeoutEnforced = envBool("TURN_TIMEOUT_ENFORCED", false)
	c.Game.MaxRooms = envInt("MAX_ROOMS", 10000)
	c.Game.InboundRate = envFloat("INBOUND_RATE", 30)
	c.Game.InboundBurst = envInt("INBOUND_BURST", 60)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("HTTP addr is empty")
	}
	switch c.Words.Backend {
	case WordsMemory:
	case WordsRedis:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is empty")
		}
	case WordsPostgres:
		if c.Postgres.URL == "" {
			return errors.New("DATABASE_URL is empty")
		}
	default:
		return fmt.Errorf("unsupported WORDS_BACKEND=%q (want memory|redis|postgres)", c.Words.Backend)
	}
	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET is empty")
	}
	if c.Env != "dev" && c.Session.Secret == devSecret {
		return fmt.Errorf("refuse to run with default SESSION_SECRET in %s", c.Env)
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	if c.Game.RoleRevealDelay < 0 || c.Game.VotingDuration < 0 || c.Game.GuessDuration < 0 {
		return errors.New("game durations must not be negative")
	}
	if c.Game.MaxRooms < 0 {
		return errors.New("MAX_ROOMS must not be negative")
	}
	if c.Game.InboundRate < 0 || c.Game.InboundBurst < 0 {
		return errors.New("INBOUND_RATE and INBOUND_BURST must not be negative")
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
