// Package config предоставляет структуры и функции для загрузки конфигурации
// из YAML-файла (CONFIG_PATH) и переменных окружения.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local" validate:"required"`
	Storage    `yaml:"storage"`
	HTTPServer `yaml:"http_server"`
	Peer       `yaml:"peer"`
}

// Storage структура для настройки хранилища записей о продажах
type Storage struct {
	Driver           string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite" validate:"oneof=sqlite postgres"`
	Path             string `yaml:"path" env:"DB_PATH" env-default:"salesDatabase.db"`
	ConnectionString string `yaml:"connection_string" env:"STORAGE_CONNECTION_STRING"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"address" env:"HTTP_ADDRESS"`
	Port        string        `yaml:"port" env:"PORT" env-default:"3001"`
	TimeoutHTTP time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Peer структура для настройки клиента /all-statistics
type Peer struct {
	BaseURL     string        `yaml:"base_url" env:"THIRD_PARTY_API_BASE_URL" env-default:"https://backendof.onrender.com" validate:"required,url"`
	PeerTimeout time.Duration `yaml:"timeout" env:"PEER_TIMEOUT" env-default:"0s" validate:"min=0"`
}

// MustLoad загружает конфиг и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает .env (если есть), затем YAML из CONFIG_PATH (если задан)
// и переменные окружения. Переменные окружения имеют приоритет над файлом.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("file: %s - does not exist", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	if cfg.AddressHTTP == "" {
		cfg.AddressHTTP = ":" + cfg.Port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch c.Driver {
	case "sqlite":
		if c.Path == "" {
			return errors.New("invalid config: DB_PATH is empty")
		}
	case "postgres":
		if c.ConnectionString == "" {
			return errors.New("invalid config: STORAGE_CONNECTION_STRING is required for postgres")
		}
	}
	return nil
}

// StorageDSN возвращает строку подключения для выбранного драйвера.
func (c *Config) StorageDSN() string {
	if c.Driver == "postgres" {
		return c.ConnectionString
	}
	return c.Path
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Storage:\n"+
			"  Driver: %s\n"+
			"  Path: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Peer:\n"+
			"  BaseURL: %s\n"+
			"  Timeout: %s\n",
		c.Env,
		c.Driver,
		c.Path,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.BaseURL,
		c.PeerTimeout,
	)
}
