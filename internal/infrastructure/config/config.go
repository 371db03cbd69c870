package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App    AppConfig
	Log    LogConfig
	HTTP   HTTPConfig
	Assets AssetsConfig
	Output OutputConfig
	Render RenderConfig
	Chrome ChromeConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string `validate:"required"`
	Env  string `validate:"required,oneof=development production test"`
	Port string `validate:"required"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"required"` // debug, info, warn, error
	Format string `validate:"required,oneof=json console"`
	Output string `validate:"required"` // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout  time.Duration `validate:"min=0"`
	WriteTimeout time.Duration `validate:"min=0"`
	IdleTimeout  time.Duration `validate:"min=0"`
	MaxBodySize  int64         `validate:"min=1"`
}

// AssetsConfig holds the product image directory settings
type AssetsConfig struct {
	ImageDir string `validate:"required"`
}

// OutputConfig holds the generated artifact settings
type OutputConfig struct {
	Dir string `validate:"required"`
}

// RenderConfig holds grid rendering settings
type RenderConfig struct {
	Columns int `validate:"min=1,max=12"`
}

// ChromeConfig holds headless Chrome settings for PDF export
type ChromeConfig struct {
	RemoteURL string
	NoSandbox bool
	Timeout   time.Duration `validate:"min=0"`
}

// Load loads configuration from TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with PRICESHEET_ prefix (e.g. PRICESHEET_APP_PORT)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("PRICESHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
			IdleTimeout:  v.GetDuration("http.idle_timeout"),
			MaxBodySize:  v.GetInt64("http.max_body_size"),
		},
		Assets: AssetsConfig{
			ImageDir: v.GetString("assets.image_dir"),
		},
		Output: OutputConfig{
			Dir: v.GetString("output.dir"),
		},
		Render: RenderConfig{
			Columns: v.GetInt("render.columns"),
		},
		Chrome: ChromeConfig{
			RemoteURL: v.GetString("chrome.remote_url"),
			NoSandbox: v.GetBool("chrome.no_sandbox"),
			Timeout:   v.GetDuration("chrome.timeout"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults registers built-in defaults for every setting
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pricesheet")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("http.read_timeout", "30s")
	// PDF export through Chrome dominates request latency
	v.SetDefault("http.write_timeout", "120s")
	v.SetDefault("http.idle_timeout", "60s")
	v.SetDefault("http.max_body_size", 10*1024*1024)

	v.SetDefault("assets.image_dir", "./images")
	v.SetDefault("output.dir", "./generated")

	v.SetDefault("render.columns", 3)

	v.SetDefault("chrome.remote_url", "")
	v.SetDefault("chrome.no_sandbox", false)
	v.SetDefault("chrome.timeout", "30s")
}
