package config

import (
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort        int           `yaml:"http_port" validate:"required,min=1,max=65535"`
	JwtTTL          time.Duration `yaml:"jwt_ttl" validate:"required"` // hours
	LogLevel        string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON         bool          `yaml:"log_json"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	Https           bool          `yaml:"https"`            // served behind TLS, enables HSTS
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // seconds, 5 if unset
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password" validate:"required"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Private struct {
	Pg     Pg     `yaml:"pg" validate:"required"`
	JwtKey string `yaml:"jwt_key" validate:"required"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL * time.Hour
}

func (c *Config) ShutdownTimeout() time.Duration {
	if c.Public.ShutdownTimeout <= 0 {
		return 5 * time.Second
	}
	return c.Public.ShutdownTimeout * time.Second
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + configPath)
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder and panics if
// either is missing, malformed or lacks a required field.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}
