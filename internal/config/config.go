package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application level configuration loaded from environment variables
// and, when CONFIG_FILE is set, from a YAML file layered on top.
type Config struct {
	ServerPort  string        `yaml:"server_port"`
	JWTSecret   string        `yaml:"jwt_secret"`
	SwaggerHost string        `yaml:"swagger_host"`
	SeedOnStart bool          `yaml:"seed_on_start"`
	Storage     StorageConfig `yaml:"storage"`
	Cache       CacheConfig   `yaml:"cache"`
	Logger      LoggerConfig  `yaml:"logger"`
	Metrics     MetricsConfig `yaml:"metrics"`
}

// StorageConfig selects and configures the key-value backend holding the records.
type StorageConfig struct {
	Type      string      `yaml:"type"`      // memory, file, redis, sql
	Namespace string      `yaml:"namespace"` // key prefix, e.g. cleartrack
	Dir       string      `yaml:"dir"`       // directory for the file backend
	SQL       SQLConfig   `yaml:"sql"`
	Redis     RedisConfig `yaml:"redis"`
}

// SQLConfig configures the SQL backend.
type SQLConfig struct {
	Driver string `yaml:"driver"` // sqlite, mysql, postgres
	DSN    string `yaml:"dsn"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// CacheConfig configures the report cache. An empty address disables caching.
type CacheConfig struct {
	Redis RedisConfig `yaml:"redis"`
}

// LoggerConfig represents the logger configuration
type LoggerConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	Format     string `yaml:"format"`      // json, console
	Output     string `yaml:"output"`      // stdout, stderr, file
	FilePath   string `yaml:"file_path"`   // path to log file when output is file
	MaxSize    int    `yaml:"max_size"`    // max size of log file in MB
	MaxBackups int    `yaml:"max_backups"` // max number of backup files
	MaxAge     int    `yaml:"max_age"`     // max age of backup files in days
	Compress   bool   `yaml:"compress"`
}

// MetricsConfig configures prometheus metrics.
type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		SeedOnStart: getEnvBool("SEED_ON_START", true),
		Storage: StorageConfig{
			Type:      getEnv("STORAGE_TYPE", "file"),
			Namespace: getEnv("STORAGE_NAMESPACE", "cleartrack"),
			Dir:       getEnv("STORAGE_DIR", "data"),
			SQL: SQLConfig{
				Driver: getEnv("STORAGE_SQL_DRIVER", "sqlite"),
				DSN:    getEnv("STORAGE_SQL_DSN", "data/cleartrack.db"),
			},
			Redis: RedisConfig{
				Addr:     getEnv("STORAGE_REDIS_ADDR", "localhost:6379"),
				Password: os.Getenv("STORAGE_REDIS_PASSWORD"),
				DB:       getEnvInt("STORAGE_REDIS_DB", 0),
				Prefix:   os.Getenv("STORAGE_REDIS_PREFIX"),
			},
		},
		Cache: CacheConfig{
			Redis: RedisConfig{
				Addr:     os.Getenv("CACHE_REDIS_ADDR"),
				Password: os.Getenv("CACHE_REDIS_PASSWORD"),
				DB:       getEnvInt("CACHE_REDIS_DB", 0),
			},
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Format:   getEnv("LOG_FORMAT", "json"),
			Output:   getEnv("LOG_OUTPUT", "stdout"),
			FilePath: getEnv("LOG_FILE", "logs/cleartrack.log"),
		},
		Metrics: MetricsConfig{
			Namespace: getEnv("METRICS_NAMESPACE", "cleartrack"),
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// overlayFile unmarshals a YAML file over cfg. Fields absent from the file keep their values.
func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(resolveEnv(data), c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([^}]*))?\}`)

// resolveEnv replaces ${VAR} and ${VAR:default} with values from the environment.
func resolveEnv(content []byte) []byte {
	return envPattern.ReplaceAllFunc(content, func(match []byte) []byte {
		parts := envPattern.FindSubmatch(match)
		if v, ok := os.LookupEnv(string(parts[1])); ok {
			return []byte(v)
		}
		return parts[2]
	})
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
