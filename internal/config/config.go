package config

import (
	"errors"
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config — настройки сервиса. Источники: .env файл, переменные окружения,
// затем флаги (флаги работают только если env не задан).
type Config struct {
	AppName    string `env:"APP_NAME" envDefault:"Fabrika"`
	RunAddress string `env:"RUN_ADDRESS" envDefault:"localhost:8080"`

	DatabaseDSN string `env:"DATABASE_DSN"`

	JWTSecret        string `env:"JWT_SECRET"`
	JWTAlgorithm     string `env:"JWT_ALGORITHM" envDefault:"HS256"`
	JWTExpireMinutes int    `env:"JWT_EXPIRE_MINUTES" envDefault:"30"`

	BaseImagePath string `env:"BASE_IMAGE_PATH"`
	PDFDir        string `env:"GENERATED_PDF_DIR"`
}

// NewConfig загружает настройки. Обязательные значения (DSN базы, секрет
// подписи, путь к базовой картинке, каталог артефактов) без умолчаний:
// их отсутствие — ошибка старта, а не тихий дефолт.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	flag.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "адрес и порт сервера")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.BaseImagePath, "base-image", cfg.BaseImagePath, "путь к базовому изображению")
	flag.StringVar(&cfg.PDFDir, "pdf-dir", cfg.PDFDir, "каталог сгенерированных PDF")
	flag.Parse()

	if cfg.DatabaseDSN == "" {
		return nil, errors.New("config: DATABASE_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	if cfg.JWTAlgorithm != "HS256" {
		return nil, errors.New("config: unsupported JWT_ALGORITHM, only HS256 is supported")
	}
	if cfg.JWTExpireMinutes <= 0 {
		return nil, errors.New("config: JWT_EXPIRE_MINUTES must be positive")
	}
	if cfg.BaseImagePath == "" {
		return nil, errors.New("config: BASE_IMAGE_PATH is required")
	}
	if cfg.PDFDir == "" {
		return nil, errors.New("config: GENERATED_PDF_DIR is required")
	}

	return cfg, nil
}
