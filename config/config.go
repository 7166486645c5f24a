package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DirectoryDriverPostgres = "postgres"
	DirectoryDriverMemory   = "memory"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Directory DirectoryConfig
	Webhook   WebhookConfig
}

type AppConfig struct {
	Port     string
	Env      string
	Version  string
	LogLevel string
}

type DBConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MigrateOnStart bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// DirectoryConfig points the service at its doctor directory
type DirectoryConfig struct {
	Driver   string
	Table    string
	SeedFile string
	CacheTTL time.Duration
}

// WebhookConfig names the routing tag and session parameters the agent sends
type WebhookConfig struct {
	SearchTag      string
	SpecialtyParam string
	LocationParam  string
	CityKey        string
	DateParam      string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_VERSION", "dev")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "medical_directory")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MIGRATE_ON_START", false)

	v.SetDefault("REDIS_ENABLED", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("DIRECTORY_DRIVER", DirectoryDriverPostgres)
	v.SetDefault("DIRECTORY_TABLE", "doctors")
	v.SetDefault("DIRECTORY_CACHE_TTL", "30s")

	v.SetDefault("WEBHOOK_SEARCH_TAG", "search-doctors")
	v.SetDefault("WEBHOOK_PARAM_SPECIALTY", "specialty")
	v.SetDefault("WEBHOOK_PARAM_LOCATION", "location")
	v.SetDefault("WEBHOOK_PARAM_CITY", "city")
	v.SetDefault("WEBHOOK_PARAM_DATE", "date")
}

// LoadConfig reads .env when present, then the environment, which wins
func LoadConfig() (*Config, error) {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, envFile string) (*Config, error) {
	setDefaults(v)

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read %s: %w", envFile, err)
			}
		}
	}
	// Cloud Run and similar platforms hand out the listen port as PORT
	_ = v.BindEnv("APP_PORT", "APP_PORT", "PORT")
	v.AutomaticEnv()

	cacheTTL, err := time.ParseDuration(v.GetString("DIRECTORY_CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid DIRECTORY_CACHE_TTL: %w", err)
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			Version:  v.GetString("APP_VERSION"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			SSLMode:        v.GetString("DB_SSLMODE"),
			MigrateOnStart: v.GetBool("DB_MIGRATE_ON_START"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Directory: DirectoryConfig{
			Driver:   strings.ToLower(v.GetString("DIRECTORY_DRIVER")),
			Table:    v.GetString("DIRECTORY_TABLE"),
			SeedFile: v.GetString("DIRECTORY_SEED_FILE"),
			CacheTTL: cacheTTL,
		},
		Webhook: WebhookConfig{
			SearchTag:      strings.TrimSpace(v.GetString("WEBHOOK_SEARCH_TAG")),
			SpecialtyParam: v.GetString("WEBHOOK_PARAM_SPECIALTY"),
			LocationParam:  v.GetString("WEBHOOK_PARAM_LOCATION"),
			CityKey:        v.GetString("WEBHOOK_PARAM_CITY"),
			DateParam:      v.GetString("WEBHOOK_PARAM_DATE"),
		},
	}

	if config.Webhook.SearchTag == "" {
		return nil, errors.New("WEBHOOK_SEARCH_TAG must not be empty")
	}

	switch config.Directory.Driver {
	case DirectoryDriverPostgres:
	case DirectoryDriverMemory:
		if config.Directory.SeedFile == "" {
			return nil, errors.New("DIRECTORY_SEED_FILE is required for the memory directory driver")
		}
	default:
		return nil, fmt.Errorf("unknown DIRECTORY_DRIVER %q", config.Directory.Driver)
	}

	return config, nil
}

// DSN builds the key/value connection string used by gorm
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// URL builds the postgres:// form used by migrations
func (c DBConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

