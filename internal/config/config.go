package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Draft    DraftConfig
	Board    BoardConfig
	Seed     SeedConfig
	Mail     MailConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMaxConnIdleTime time.Duration
	MigrationsDir       string
}

func (c DatabaseConfig) DSN() string {
	sslMode := c.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode,
	)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type DraftStore string

const (
	DraftStoreMemory   DraftStore = "memory"
	DraftStoreRedis    DraftStore = "redis"
	DraftStorePostgres DraftStore = "postgres"
	DraftStoreSQLite   DraftStore = "sqlite"
)

type DraftConfig struct {
	Store      DraftStore
	Key        string
	TTL        time.Duration
	SQLitePath string
}

type BoardConfig struct {
	Debounce time.Duration
	PageSize int
}

type SeedConfig struct {
	Candidates int
	Seed       int64
}

type MailConfig struct {
	RatePerSecond int
	Workers       int
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// LoadEnvFile loads variables from path (default .env) without overriding
// ones already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optInt := func(key string, def int) int {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := time.ParseDuration(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Draft = DraftConfig{
		Store:      DraftStore(strings.ToLower(opt("DRAFT_STORE", string(DraftStoreMemory)))),
		Key:        opt("DRAFT_KEY", "draft-candidate"),
		TTL:        optDuration("DRAFT_TTL", 7*24*time.Hour),
		SQLitePath: opt("SQLITE_PATH", "hireboard.db"),
	}
	switch cfg.Draft.Store {
	case DraftStoreMemory, DraftStoreRedis, DraftStorePostgres, DraftStoreSQLite:
	default:
		invalid = append(invalid, "DRAFT_STORE")
	}

	dbOpt := func(key string) string {
		if cfg.Draft.Store == DraftStorePostgres {
			return req(key)
		}
		return opt(key, "")
	}
	cfg.Database = DatabaseConfig{
		DBHost:              dbOpt("DB_HOST"),
		DBPort:              dbOpt("DB_PORT"),
		DBName:              dbOpt("DB_NAME"),
		DBUser:              dbOpt("DB_USER"),
		DBPassword:          opt("DB_PASSWORD", ""),
		DBSSLMode:           opt("DB_SSL_MODE", "disable"),
		ConnectTimeout:      optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:        int32(optInt("DB_POOL_MAX_CONNS", 4)),
		PoolMaxConnIdleTime: optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 5*time.Minute),
		MigrationsDir:       opt("MIGRATIONS_DIR", ""),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
	}

	cfg.Session = SessionConfig{
		Secret: req("SESSION_SECRET"),
		TTL:    optDuration("SESSION_TTL", 12*time.Hour),
	}

	cfg.Board = BoardConfig{
		Debounce: optDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
		PageSize: optInt("PAGE_SIZE", 50),
	}

	cfg.Seed = SeedConfig{
		Candidates: optInt("SEED_CANDIDATES", 50),
		Seed:       int64(optInt("SEED_VALUE", 1)),
	}

	cfg.Mail = MailConfig{
		RatePerSecond: optInt("EMAIL_RATE", 5),
		Workers:       optInt("EMAIL_WORKERS", 2),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
