package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config contiene la configuración de la aplicación
type Config struct {
	Port            string        `yaml:"port"`
	Env             string        `yaml:"env"`
	LogLevel        string        `yaml:"log_level"`
	APIBaseURL      string        `yaml:"api_base_url"`
	APIToken        string        `yaml:"api_token"`
	APITimeout      time.Duration `yaml:"api_timeout"`
	MemcachedHost   string        `yaml:"memcached_host"`
	CatalogCacheTTL time.Duration `yaml:"catalog_cache_ttl"`
	RabbitMQURL     string        `yaml:"rabbitmq_url"`
	PropertiesQueue string        `yaml:"properties_queue"`
	BookingFee      float64       `yaml:"booking_fee"`
	SessionLifetime time.Duration `yaml:"session_lifetime"`
	FormTTL         time.Duration `yaml:"form_ttl"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

// Defaults devuelve la configuración por defecto
func Defaults() *Config {
	return &Config{
		Port:            "8080",
		Env:             "development",
		LogLevel:        "info",
		APIBaseURL:      "http://localhost:8081",
		APITimeout:      30 * time.Second,
		CatalogCacheTTL: 5 * time.Minute,
		PropertiesQueue: "properties_queue",
		BookingFee:      65,
		SessionLifetime: 24 * time.Hour,
		FormTTL:         30 * time.Minute,
		AllowedOrigins:  []string{"http://localhost:3000"},
	}
}

// LoadConfig carga la configuración: valores por defecto, después el archivo
// YAML (si path no está vacío) y por último las variables de entorno, que
// pueden venir de un .env.
func LoadConfig(path string) (*Config, error) {
	// El .env es opcional
	_ = godotenv.Load()

	cfg := Defaults()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.Env = getEnv("APP_ENV", c.Env)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.APIBaseURL = strings.TrimSuffix(getEnv("API_BASE_URL", c.APIBaseURL), "/")
	c.APIToken = getEnv("API_TOKEN", c.APIToken)
	c.MemcachedHost = getEnv("MEMCACHED_HOST", c.MemcachedHost)
	c.RabbitMQURL = getEnv("RABBITMQ_URL", c.RabbitMQURL)
	c.PropertiesQueue = getEnv("PROPERTIES_QUEUE", c.PropertiesQueue)

	var err error
	if c.APITimeout, err = getDuration("API_TIMEOUT", c.APITimeout); err != nil {
		return err
	}
	if c.CatalogCacheTTL, err = getDuration("CATALOG_CACHE_TTL", c.CatalogCacheTTL); err != nil {
		return err
	}
	if c.SessionLifetime, err = getDuration("SESSION_LIFETIME", c.SessionLifetime); err != nil {
		return err
	}
	if c.FormTTL, err = getDuration("FORM_TTL", c.FormTTL); err != nil {
		return err
	}
	if v := os.Getenv("BOOKING_FEE"); v != "" {
		fee, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid BOOKING_FEE %q: %w", v, err)
		}
		c.BookingFee = fee
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}
	return nil
}

// Validate revisa valores que no tienen sentido
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url cannot be empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be positive")
	}
	if c.BookingFee < 0 {
		return fmt.Errorf("booking_fee cannot be negative")
	}
	if c.CatalogCacheTTL < 0 {
		return fmt.Errorf("catalog_cache_ttl cannot be negative")
	}
	return nil
}

// IsProduction indica si corremos en producción
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv obtiene una variable de entorno o retorna un valor por defecto
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
