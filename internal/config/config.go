package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is built once at startup and passed by value to the components
// that need it. Nothing reads the environment after Load returns.
type Config struct {
	HTTP     HTTP     `yaml:"http"`
	Database Database `yaml:"database"`
	JWT      JWT      `yaml:"jwt"`
	Gemini   Gemini   `yaml:"gemini"`
	Redis    Redis    `yaml:"redis"`
	Email    Email    `yaml:"email"`
	Log      Log      `yaml:"log"`
}

type HTTP struct {
	Addr            string        `yaml:"addr"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Database struct {
	Driver string `yaml:"driver"`
	URL    string `yaml:"url"`
}

type JWT struct {
	Secret     string        `yaml:"secret"`
	Issuer     string        `yaml:"issuer"`
	Audience   string        `yaml:"audience"`
	Expiration time.Duration `yaml:"expiration"`
}

type Gemini struct {
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

type Redis struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Email struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	Sender         string `yaml:"sender"`
	SenderName     string `yaml:"sender_name"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		HTTP: HTTP{
			Addr:            ":8080",
			RateLimitRPS:    1,
			RateLimitBurst:  5,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: Database{
			Driver: "sqlite",
			URL:    "taskgenius.db",
		},
		JWT: JWT{
			Issuer:     "TaskGeniusApi",
			Audience:   "TaskGeniusClients",
			Expiration: 30 * time.Minute,
		},
		Gemini: Gemini{
			BaseURL: "https://generativelanguage.googleapis.com/v1beta/models/",
			Model:   "gemini-2.0-flash:generateContent",
			Timeout: 30 * time.Second,
		},
		Redis: Redis{
			Port: "6379",
		},
		Email: Email{
			SenderName: "TaskGenius",
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads an optional .env file, then the optional YAML file at path,
// then lets environment variables override individual keys.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	c.HTTP.Addr = GetEnvAsString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.CORSOrigins = GetEnvAsList("CORS_ORIGINS", c.HTTP.CORSOrigins)
	c.HTTP.RateLimitRPS = GetEnvAsFloat("RATE_LIMIT_RPS", c.HTTP.RateLimitRPS)
	c.HTTP.RateLimitBurst = GetEnvAsInt("RATE_LIMIT_BURST", c.HTTP.RateLimitBurst)
	c.HTTP.ShutdownTimeout = GetEnvAsDuration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)

	c.Database.Driver = GetEnvAsString("DB_DRIVER", c.Database.Driver)
	c.Database.URL = GetEnvAsString("DATABASE_URL", c.Database.URL)

	c.JWT.Secret = GetEnvAsString("JWT_SECRET", c.JWT.Secret)
	c.JWT.Issuer = GetEnvAsString("JWT_ISSUER", c.JWT.Issuer)
	c.JWT.Audience = GetEnvAsString("JWT_AUDIENCE", c.JWT.Audience)
	c.JWT.Expiration = GetEnvAsDuration("JWT_EXPIRATION", c.JWT.Expiration)

	c.Gemini.BaseURL = GetEnvAsString("GEMINI_BASE_URL", c.Gemini.BaseURL)
	c.Gemini.Model = GetEnvAsString("GEMINI_MODEL", c.Gemini.Model)
	c.Gemini.APIKey = GetEnvAsString("GEMINI_API_KEY", c.Gemini.APIKey)
	c.Gemini.Timeout = GetEnvAsDuration("GEMINI_TIMEOUT", c.Gemini.Timeout)

	c.Redis.URL = GetEnvAsString("REDIS_URL", c.Redis.URL)
	c.Redis.Host = GetEnvAsString("REDIS_HOST", c.Redis.Host)
	c.Redis.Port = GetEnvAsString("REDIS_PORT", c.Redis.Port)
	c.Redis.Password = GetEnvAsString("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = GetEnvAsInt("REDIS_DB", c.Redis.DB)

	c.Email.SendGridAPIKey = GetEnvAsString("SENDGRID_API_KEY", c.Email.SendGridAPIKey)
	c.Email.Sender = GetEnvAsString("EMAIL_SENDER", c.Email.Sender)
	c.Email.SenderName = GetEnvAsString("EMAIL_SENDER_NAME", c.Email.SenderName)

	c.Log.Level = GetEnvAsString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = GetEnvAsString("LOG_FORMAT", c.Log.Format)
}

func (c Config) Validate() error {
	var errs []error
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	} else if len(c.JWT.Secret) < 32 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 32 characters"))
	}
	if c.JWT.Expiration <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRATION must be positive"))
	}
	if c.Gemini.Timeout <= 0 {
		errs = append(errs, errors.New("GEMINI_TIMEOUT must be positive"))
	}
	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver))
	}
	return errors.Join(errs...)
}

// Enabled reports whether any Redis location was configured.
func (r Redis) Enabled() bool {
	return r.URL != "" || r.Host != ""
}
