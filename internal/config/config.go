// Package config содержит логику чтения конфигурации магазина путеводителей.
package config

import (
	"flag"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
)

const (
	defaultRunAddress     = "localhost:8080"
	defaultPaymentAPIURL  = "https://sandbox-merchant.revolut.com"
	defaultPaymentVersion = "2025-12-04"
	defaultPublicBaseURL  = "http://localhost:8080"
	defaultFilesRoot      = "./files"
	defaultStaticRoot     = "./static"
)

// Config содержит параметры конфигурации сервиса.
type Config struct {
	RunAddress        string `env:"RUN_ADDRESS"`
	DatabaseURI       string `env:"DATABASE_URI"`
	PaymentAPIURL     string `env:"PAYMENT_API_URL"`
	PaymentKey        string `env:"PAYMENT_KEY"`
	PaymentAPIVersion string `env:"PAYMENT_API_VERSION" envDefault:"2025-12-04"`
	PublicBaseURL     string `env:"PUBLIC_BASE_URL"`
	FilesRoot         string `env:"FILES_ROOT"`
	StaticRoot        string `env:"STATIC_ROOT"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile           string `env:"LOG_FILE"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Значения из окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURI := cfg.DatabaseURI
	envPaymentAPIURL := cfg.PaymentAPIURL
	envPaymentKey := cfg.PaymentKey
	envPublicBaseURL := cfg.PublicBaseURL
	envFilesRoot := cfg.FilesRoot
	envStaticRoot := cfg.StaticRoot

	flag.StringVar(&cfg.RunAddress, "a", defaultRunAddress, "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.PaymentAPIURL, "p", defaultPaymentAPIURL, "payment provider base URL")
	flag.StringVar(&cfg.PaymentKey, "k", "", "payment provider secret key")
	flag.StringVar(&cfg.PublicBaseURL, "b", defaultPublicBaseURL, "public base URL for redirect links")
	flag.StringVar(&cfg.FilesRoot, "f", defaultFilesRoot, "root directory of downloadable files")
	flag.StringVar(&cfg.StaticRoot, "s", defaultStaticRoot, "directory served under /static/")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if envPaymentAPIURL != "" {
		cfg.PaymentAPIURL = envPaymentAPIURL
	}
	if envPaymentKey != "" {
		cfg.PaymentKey = envPaymentKey
	}
	if envPublicBaseURL != "" {
		cfg.PublicBaseURL = envPublicBaseURL
	}
	if envFilesRoot != "" {
		cfg.FilesRoot = envFilesRoot
	}
	if envStaticRoot != "" {
		cfg.StaticRoot = envStaticRoot
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = defaultRunAddress
	}
	if cfg.PaymentAPIVersion == "" {
		cfg.PaymentAPIVersion = defaultPaymentVersion
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	return cfg, nil
}

// BaseURL хранит публичный адрес сервиса, который можно заменить во время работы.
type BaseURL struct {
	v atomic.Value
}

// NewBaseURL создаёт хранилище публичного адреса с начальным значением.
func NewBaseURL(initial string) *BaseURL {
	b := &BaseURL{}
	b.Set(initial)
	return b
}

// Get возвращает текущий публичный адрес без завершающего слэша.
func (b *BaseURL) Get() string {
	s, _ := b.v.Load().(string)
	return s
}

// Set заменяет публичный адрес.
func (b *BaseURL) Set(u string) {
	b.v.Store(strings.TrimRight(u, "/"))
}

// Reload перечитывает PUBLIC_BASE_URL из окружения. Пустое значение
// оставляет текущий адрес.
func (b *BaseURL) Reload() (string, error) {
	var c struct {
		PublicBaseURL string `env:"PUBLIC_BASE_URL"`
	}
	if err := env.Parse(&c); err != nil {
		return b.Get(), fmt.Errorf("parse env: %w", err)
	}
	if c.PublicBaseURL != "" {
		b.Set(c.PublicBaseURL)
	}
	return b.Get(), nil
}
