package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages service configuration using Viper. Defaults can be
// overridden by a config file or by environment variables (prefix ASSORT,
// dots replaced by underscores, e.g. ASSORT_SERVER_ADDRESS).
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults.
func New() *Config {
	v := viper.New()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("jobs.max_workers", 4)
	v.SetDefault("jobs.result_ttl", time.Hour)
	v.SetDefault("jobs.cleanup_interval", 5*time.Minute)

	v.SetDefault("datasets.max_upload_bytes", int64(100*1024*1024))

	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix("ASSORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from a file on top of the defaults.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

func (c *Config) ServerAddress() string             { return c.v.GetString("server.address") }
func (c *Config) ServerReadTimeout() time.Duration  { return c.v.GetDuration("server.read_timeout") }
func (c *Config) ServerWriteTimeout() time.Duration { return c.v.GetDuration("server.write_timeout") }
func (c *Config) ShutdownTimeout() time.Duration    { return c.v.GetDuration("server.shutdown_timeout") }

func (c *Config) MaxWorkers() int                { return c.v.GetInt("jobs.max_workers") }
func (c *Config) ResultTTL() time.Duration       { return c.v.GetDuration("jobs.result_ttl") }
func (c *Config) CleanupInterval() time.Duration { return c.v.GetDuration("jobs.cleanup_interval") }

func (c *Config) MaxUploadBytes() int64 { return c.v.GetInt64("datasets.max_upload_bytes") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a zerolog logger based on config.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Str("service", "assortativity").Logger()
}
