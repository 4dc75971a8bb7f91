// Package config carga la configuración desde variables de entorno.
//
// Las variables usan el prefijo DOGS_ y el primer "_" después del prefijo
// separa el bloque del campo: DOGS_SERVER_READ_TIMEOUT -> server.read_timeout.
// Si existe un .env en el directorio de trabajo se carga antes de leer env.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "DOGS_"

const (
	EnvTest = "test"

	DefaultPort     = 3000
	DefaultTestPort = 3001
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverGorm     = "gorm"
)

type Config struct {
	Env    string       `koanf:"env" validate:"required"`
	Server ServerConfig `koanf:"server"`
	Store  StoreConfig  `koanf:"store"`
	Log    LogConfig    `koanf:"log"`
}

type ServerConfig struct {
	// Port 0 => 3001 en test, 3000 en el resto.
	Port         int `koanf:"port" validate:"gte=0,lte=65535"`
	ReadTimeout  int `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout int `koanf:"write_timeout" validate:"gte=0"`

	// StrictHTTP usa 404/200 en vez del contrato histórico 204/201.
	StrictHTTP bool `koanf:"strict_http"`
}

type StoreConfig struct {
	Driver         string `koanf:"driver" validate:"required,oneof=memory postgres gorm"`
	DSN            string `koanf:"dsn" validate:"required_unless=Driver memory"`
	SkipMigrations bool   `koanf:"skip_migrations"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

func (c *Config) IsTest() bool {
	return strings.EqualFold(c.Env, EnvTest)
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// Load lee DOGS_* del entorno, aplica defaults y valida.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Env) == "" {
		c.Env = "development"
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
		if c.IsTest() {
			c.Server.Port = DefaultTestPort
		}
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 5
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if strings.TrimSpace(c.Store.Driver) == "" {
		c.Store.Driver = DriverMemory
	}
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
}
