package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenStrategyJWT  = "jwt"
	TokenStrategyHMAC = "hmac"
)

// Config holds application level configuration loaded from a TOML file, environment and flags.
type Config struct {
	RunAddress       string        `toml:"run_address"`
	DatabaseURI      string        `toml:"database_uri"`
	JWTSecret        string        `toml:"jwt_secret"`
	TokenStrategy    string        `toml:"token_strategy"`
	TokenTTL         time.Duration `toml:"token_ttl"`
	PasswordHashCost int           `toml:"password_hash_cost"`
	RequestTimeout   time.Duration `toml:"request_timeout"`
	ShutdownTimeout  time.Duration `toml:"shutdown_timeout"`
	LogLevel         string        `toml:"log_level"`
	StaticDir        string        `toml:"static_dir"`

	RedisAddr       string        `toml:"redis_addr"`
	RedisPassword   string        `toml:"redis_password"`
	RedisDB         int           `toml:"redis_db"`
	ProfileCacheTTL time.Duration `toml:"profile_cache_ttl"`

	AMQPURL      string `toml:"amqp_url"`
	EventsQueue  string `toml:"events_queue"`
	EventWorkers int    `toml:"event_workers"`
	EventBuffer  int    `toml:"event_buffer"`

	ResumeParserCommand string        `toml:"resume_parser_command"`
	ResumeParserURL     string        `toml:"resume_parser_url"`
	ResumeParserTimeout time.Duration `toml:"resume_parser_timeout"`
	UploadDir           string        `toml:"upload_dir"`
	MaxUploadSize       int64         `toml:"max_upload_size"`
}

const (
	defaultRunAddress          = ":10000"
	defaultTokenTTL            = 30 * 24 * time.Hour
	defaultRequestTimeout      = 5 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
	defaultLogLevel            = "info"
	defaultProfileCacheTTL     = 5 * time.Minute
	defaultEventsQueue         = "careerpath.user.events"
	defaultEventWorkers        = 2
	defaultEventBuffer         = 64
	defaultResumeParserTimeout = 30 * time.Second
	defaultUploadDir           = "uploads"
	defaultMaxUploadSize       = 10 << 20
)

// Load parses configuration from the optional CONFIG_FILE, environment variables and flags.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func defaults() *Config {
	return &Config{
		RunAddress:          defaultRunAddress,
		TokenStrategy:       TokenStrategyJWT,
		TokenTTL:            defaultTokenTTL,
		PasswordHashCost:    bcrypt.DefaultCost,
		RequestTimeout:      defaultRequestTimeout,
		ShutdownTimeout:     defaultShutdownTimeout,
		LogLevel:            defaultLogLevel,
		ProfileCacheTTL:     defaultProfileCacheTTL,
		EventsQueue:         defaultEventsQueue,
		EventWorkers:        defaultEventWorkers,
		EventBuffer:         defaultEventBuffer,
		ResumeParserTimeout: defaultResumeParserTimeout,
		UploadDir:           defaultUploadDir,
		MaxUploadSize:       defaultMaxUploadSize,
	}
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := defaults()

	if path, ok := lookup("CONFIG_FILE"); ok && path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config file: %w", err)
		}
	}

	env := &envReader{lookup: lookup}
	cfg.RunAddress = env.getString("RUN_ADDRESS", cfg.RunAddress)
	cfg.DatabaseURI = env.getString("DATABASE_URI", cfg.DatabaseURI)
	cfg.JWTSecret = env.getString("JWT_SECRET", cfg.JWTSecret)
	cfg.TokenStrategy = env.getString("TOKEN_STRATEGY", cfg.TokenStrategy)
	cfg.TokenTTL = env.getDuration("TOKEN_TTL", cfg.TokenTTL)
	cfg.PasswordHashCost = env.getInt("PASSWORD_HASH_COST", cfg.PasswordHashCost)
	cfg.RequestTimeout = env.getDuration("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.ShutdownTimeout = env.getDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.LogLevel = env.getString("LOG_LEVEL", cfg.LogLevel)
	cfg.StaticDir = env.getString("STATIC_DIR", cfg.StaticDir)
	cfg.RedisAddr = env.getString("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = env.getString("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = env.getInt("REDIS_DB", cfg.RedisDB)
	cfg.ProfileCacheTTL = env.getDuration("PROFILE_CACHE_TTL", cfg.ProfileCacheTTL)
	cfg.AMQPURL = env.getString("AMQP_URL", cfg.AMQPURL)
	cfg.EventsQueue = env.getString("EVENTS_QUEUE", cfg.EventsQueue)
	cfg.EventWorkers = env.getInt("EVENT_WORKERS", cfg.EventWorkers)
	cfg.EventBuffer = env.getInt("EVENT_BUFFER", cfg.EventBuffer)
	cfg.ResumeParserCommand = env.getString("RESUME_PARSER_COMMAND", cfg.ResumeParserCommand)
	cfg.ResumeParserURL = env.getString("RESUME_PARSER_URL", cfg.ResumeParserURL)
	cfg.ResumeParserTimeout = env.getDuration("RESUME_PARSER_TIMEOUT", cfg.ResumeParserTimeout)
	cfg.UploadDir = env.getString("UPLOAD_DIR", cfg.UploadDir)
	cfg.MaxUploadSize = env.getInt64("MAX_UPLOAD_SIZE", cfg.MaxUploadSize)

	if err := env.err(); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("careerpath", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		requestTimeoutStr  = cfg.RequestTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.TokenStrategy, "token-strategy", cfg.TokenStrategy, "Token format: jwt or hmac")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued tokens")
	fs.IntVar(&cfg.PasswordHashCost, "hash-cost", cfg.PasswordHashCost, "bcrypt cost factor")
	fs.StringVar(&requestTimeoutStr, "request-timeout", requestTimeoutStr, "Per-request deadline")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.StaticDir, "static-dir", cfg.StaticDir, "Directory with frontend assets")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for the profile cache")
	fs.StringVar(&cfg.AMQPURL, "amqp", cfg.AMQPURL, "RabbitMQ URL for domain events")
	fs.IntVar(&cfg.EventWorkers, "event-workers", cfg.EventWorkers, "Number of event publishing workers")
	fs.StringVar(&cfg.ResumeParserCommand, "resume-parser", cfg.ResumeParserCommand, "Command used to parse resumes")
	fs.StringVar(&cfg.ResumeParserURL, "resume-parser-url", cfg.ResumeParserURL, "Base URL of the resume parsing service")
	fs.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "Directory for temporary uploads")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	normalize(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func normalize(cfg *Config) {
	d := defaults()

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = d.TokenTTL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = d.RequestTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = d.ShutdownTimeout
	}
	if cfg.ProfileCacheTTL <= 0 {
		cfg.ProfileCacheTTL = d.ProfileCacheTTL
	}
	if cfg.EventWorkers <= 0 {
		cfg.EventWorkers = d.EventWorkers
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = d.EventBuffer
	}
	if cfg.ResumeParserTimeout <= 0 {
		cfg.ResumeParserTimeout = d.ResumeParserTimeout
	}
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = d.MaxUploadSize
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = d.UploadDir
	}
	cfg.TokenStrategy = strings.ToLower(strings.TrimSpace(cfg.TokenStrategy))
	if cfg.TokenStrategy == "" {
		cfg.TokenStrategy = d.TokenStrategy
	}
}

func (c *Config) validate() error {
	if c.DatabaseURI == "" {
		return errors.New("database URI must be provided")
	}

	if c.JWTSecret == "" {
		return errors.New("jwt secret must be provided")
	}

	if c.TokenStrategy != TokenStrategyJWT && c.TokenStrategy != TokenStrategyHMAC {
		return fmt.Errorf("unknown token strategy %q", c.TokenStrategy)
	}

	if c.PasswordHashCost < bcrypt.MinCost || c.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password hash cost must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

// ParserArgs splits the configured resume parser command into argv form.
func (c *Config) ParserArgs() []string {
	return strings.Fields(c.ResumeParserCommand)
}

// envReader reads typed values from the environment and collects every value it cannot parse.
type envReader struct {
	lookup envLookup
	errs   []error
}

func (r *envReader) getString(key, def string) string {
	if v, ok := r.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (r *envReader) getInt(key string, def int) int {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s %q: %w", key, v, err))
		return def
	}
	return n
}

func (r *envReader) getInt64(key string, def int64) int64 {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s %q: %w", key, v, err))
		return def
	}
	return n
}

func (r *envReader) getDuration(key string, def time.Duration) time.Duration {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s %q: %w", key, v, err))
		return def
	}
	return d
}

func (r *envReader) err() error {
	return errors.Join(r.errs...)
}
