package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config агрегирует конфигурацию приложения (чтение через Viper из env и опционально файла).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Store StoreConfig
}

// AppConfig общая конфигурация приложения.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig конфигурация HTTP-сервера.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr возвращает адрес прослушивания (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig конфигурация локального хранилища снапшотов.
type StoreConfig struct {
	// Path путь к файлу bbolt. Каталог должен существовать.
	Path string
	// Seed при первом запуске (пустая база) заполняет демо-справочники и стандартные шаблоны.
	Seed bool
}

// Load читает конфигурацию из переменных окружения (и опционально из файла .env).
// Env-переменные имеют приоритет. Ожидаемые имена: APP_ENV, HTTP_PORT, STORE_PATH и т.д.
func Load() (*Config, error) {
	v := viper.New()

	// Опционально: файл конфигурации .env рядом с бинарником
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // отсутствие файла не ошибка

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "mbdocs-api")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("STORE_PATH", "mbdocs.db")
	v.SetDefault("STORE_SEED", true)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Store: StoreConfig{
			Path: v.GetString("STORE_PATH"),
			Seed: v.GetBool("STORE_SEED"),
		},
	}

	if cfg.Store.Path == "" {
		return nil, fmt.Errorf("config: STORE_PATH не может быть пустым")
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: некорректный HTTP_PORT %d", cfg.HTTP.Port)
	}

	return cfg, nil
}
