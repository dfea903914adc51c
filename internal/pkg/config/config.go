package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendFile   = "file"
	SessionBackendRedis  = "redis"

	CredentialBackendMemory = "memory"
	CredentialBackendMongo  = "mongo"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	AuthDelay time.Duration `env:"AUTH_DELAY, default=1500ms"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=8h"`

	Session    SessionConfig
	Credential CredentialConfig
	Notify     NotifyConfig
	Mongo      MongoConfig
	Redis      RedisConfig
}

type SessionConfig struct {
	Backend string `env:"SESSION_BACKEND, default=memory"`
	File    string `env:"SESSION_FILE,    default=data/session.json"`
}

type CredentialConfig struct {
	Backend string `env:"CREDENTIAL_BACKEND, default=memory"`
}

type NotifyConfig struct {
	Redis     bool `env:"NOTIFY_REDIS,   default=false"`
	Workers   int  `env:"NOTIFY_WORKERS, default=2"`
	InboxSize int  `env:"INBOX_SIZE,     default=50"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=mediguard"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads an optional .env file, then the process environment.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper(), ".env")
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom resolves configuration through lookuper after loading dotenv files.
// Missing dotenv files are ignored; variables already set are not overridden.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper, dotenv ...string) (*Config, error) {
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Backend {
	case SessionBackendMemory, SessionBackendFile, SessionBackendRedis:
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.Session.Backend)
	}
	switch c.Credential.Backend {
	case CredentialBackendMemory, CredentialBackendMongo:
	default:
		return fmt.Errorf("unknown CREDENTIAL_BACKEND %q", c.Credential.Backend)
	}
	if c.AuthDelay < 0 {
		return errors.New("AUTH_DELAY must not be negative")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesRedis reports whether any configured component needs a redis client.
func (c *Config) UsesRedis() bool {
	return c.Session.Backend == SessionBackendRedis || c.Notify.Redis
}
