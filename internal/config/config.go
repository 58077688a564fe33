package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Discord
	DiscordToken       string `validate:"required"`
	DiscordAppID       string `validate:"required,numeric"`
	OwnerID            string `validate:"omitempty,numeric"`
	DevGuildID         string `validate:"omitempty,numeric"`
	ForceCommandUpdate bool

	// Database
	DBUser            string `validate:"required"`
	DBPassword        string
	DBHost            string        `validate:"required"`
	DBPort            string        `validate:"required,numeric"`
	DBName            string        `validate:"required"`
	DBMaxConns        int           `validate:"min=1,max=200"`
	DBMaxConnIdleTime time.Duration `validate:"min=0"`
	DBMaxConnLifetime time.Duration `validate:"min=0"`
	StoreTimeout      time.Duration `validate:"min=100ms"`

	// Logging
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string
	Environment string `validate:"required"`
	Version     string

	// HTTP
	Port           int    `validate:"min=0,max=65535"`
	APIKey         string // optional; protects /api/v1 when set
	TrustedProxies []string

	// Commands
	DefaultPrefix string `validate:"required,max=15"`

	// Leveling
	XPCooldown          time.Duration `validate:"min=0"`
	XPMin               int           `validate:"min=1"`
	XPMax               int           `validate:"gtefield=XPMin"`
	LeaderboardCacheTTL time.Duration `validate:"min=0"`
	LeaderboardSize     int           `validate:"min=1,max=50"`

	// Profile rendering
	BackgroundsDir     string
	AvatarFetchTimeout time.Duration `validate:"min=0"`

	// Background work
	ReminderPollInterval time.Duration `validate:"min=1s"`
	StatusRotateInterval time.Duration `validate:"min=1m"`
	AnnounceRate         float64       `validate:"gt=0"`
	AnnounceBurst        int           `validate:"min=1"`
	DeadLetterPath       string
	EventLogRetention    int `validate:"min=1"` // days
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var errs []error
	portStr := getEnv("PORT", getEnv("HTTP_PORT", "8080"))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid PORT value: %w", err))
	}

	cfg := &Config{
		DiscordToken:       getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:       getEnv("DISCORD_APP_ID", ""),
		OwnerID:            getEnv("OWNER_ID", ""),
		DevGuildID:         getEnv("DISCORD_DEV_GUILD_ID", ""),
		ForceCommandUpdate: getEnvAsBool("DISCORD_FORCE_COMMAND_UPDATE", false),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "minesoc"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		StoreTimeout:      getEnvAsDuration("STORE_TIMEOUT", DefaultStoreTimeout),

		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),

		Port:           port,
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DefaultPrefix: getEnv("DEFAULT_PREFIX", DefaultPrefix),

		XPCooldown:          getEnvAsDuration("XP_COOLDOWN", DefaultXPCooldown),
		XPMin:               getEnvAsInt("XP_MIN", DefaultXPMin),
		XPMax:               getEnvAsInt("XP_MAX", DefaultXPMax),
		LeaderboardCacheTTL: getEnvAsDuration("LEADERBOARD_CACHE_TTL", DefaultLeaderboardCacheTTL),
		LeaderboardSize:     getEnvAsInt("LEADERBOARD_SIZE", DefaultLeaderboardSize),

		BackgroundsDir:     getEnv("BACKGROUNDS_DIR", DefaultBackgroundsDir),
		AvatarFetchTimeout: getEnvAsDuration("AVATAR_FETCH_TIMEOUT", DefaultAvatarFetchTimeout),

		ReminderPollInterval: getEnvAsDuration("REMINDER_POLL_INTERVAL", DefaultReminderPollInterval),
		StatusRotateInterval: getEnvAsDuration("STATUS_ROTATE_INTERVAL", DefaultStatusRotateInterval),
		AnnounceRate:         getEnvAsFloat("ANNOUNCE_RATE", DefaultAnnounceRate),
		AnnounceBurst:        getEnvAsInt("ANNOUNCE_BURST", DefaultAnnounceBurst),
		DeadLetterPath:       getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		EventLogRetention:    getEnvAsInt("EVENT_LOG_RETENTION_DAYS", DefaultEventLogRetention),
	}

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return cfg, nil
}

// Validate checks struct constraints and reports every failing field at once
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(msgs, ", "))
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration accepts Go duration syntax ("90s") or a bare number of seconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
