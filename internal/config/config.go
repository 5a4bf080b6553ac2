package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Session   SessionConfig   `yaml:"session"`
	Auth      AuthConfig      `yaml:"auth"`
	Uploads   UploadsConfig   `yaml:"uploads"`
	Bootstrap BootstrapConfig `yaml:"bootstrap"`
	Log       LogConfig       `yaml:"log"`
}

type AppConfig struct {
	Name string `yaml:"name"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// DatabaseConfig: DSN vacío => store en memoria.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type SessionConfig struct {
	Secret     string        `yaml:"secret"`
	CookieName string        `yaml:"cookie_name"`
	TTL        time.Duration `yaml:"ttl"`
	Secure     bool          `yaml:"secure"`
}

type AuthConfig struct {
	BcryptCost         int `yaml:"bcrypt_cost"`
	LoginRatePerMinute int `yaml:"login_rate_per_minute"`
	LoginBurst         int `yaml:"login_burst"`
}

// UploadsConfig: si S3.Bucket viene, las imágenes van a S3; si no, a Dir.
type UploadsConfig struct {
	Dir      string   `yaml:"dir"`
	MaxBytes int64    `yaml:"max_bytes"`
	S3       S3Config `yaml:"s3"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Prefix    string `yaml:"prefix"`
}

// Account es una cuenta sembrada al arrancar.
type Account struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type BootstrapConfig struct {
	Accounts []Account `yaml:"accounts"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const devSessionSecret = "dev-only-change-me"

// Defaults devuelve una config completa para modo dev.
func Defaults() Config {
	return Config{
		App: AppConfig{Name: "pet-hub"},
		Server: ServerConfig{
			Host:         "",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Session: SessionConfig{
			Secret:     devSessionSecret,
			CookieName: "pethub_session",
			TTL:        7 * 24 * time.Hour,
		},
		Auth: AuthConfig{
			BcryptCost:         10,
			LoginRatePerMinute: 10,
			LoginBurst:         5,
		},
		Uploads: UploadsConfig{
			Dir:      "static/images/pets",
			MaxBytes: 10 << 20,
		},
		Bootstrap: BootstrapConfig{
			Accounts: []Account{
				{Name: "Super Admin", Email: "admin@janvar.com", Password: "admin123", Role: "admin"},
				{Name: "Dr. Meow Bark", Email: "vet@example.com", Password: "vet123", Role: "vet"},
			},
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load lee .env (si existe), el YAML en path (si existe) y aplica overrides de env.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := Defaults()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
			// opcional
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	setStr := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	setStr("APP_NAME", &cfg.App.Name)
	setStr("DB_DSN", &cfg.Database.DSN)
	setStr("LOG_LEVEL", &cfg.Log.Level)
	setStr("LOG_FORMAT", &cfg.Log.Format)
	setStr("SESSION_SECRET", &cfg.Session.Secret)
	setStr("UPLOAD_DIR", &cfg.Uploads.Dir)
	setStr("S3_BUCKET", &cfg.Uploads.S3.Bucket)
	setStr("S3_REGION", &cfg.Uploads.S3.Region)
	setStr("S3_ENDPOINT", &cfg.Uploads.S3.Endpoint)
	return nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("session secret is required")
	}
	if c.Session.TTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	if c.Uploads.MaxBytes <= 0 {
		return errors.New("uploads max_bytes must be positive")
	}
	for _, a := range c.Bootstrap.Accounts {
		if strings.TrimSpace(a.Email) == "" || a.Password == "" {
			return errors.New("bootstrap accounts need email and password")
		}
	}
	return nil
}

// UsesDevSecret avisa si el secreto de sesión es el default.
func (c *Config) UsesDevSecret() bool {
	return c.Session.Secret == devSessionSecret
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
