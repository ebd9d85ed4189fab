package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	StoreDriver string

	WebPort    string
	APIBaseURL string
	APITimeout time.Duration

	LogLevel  string
	LogFormat string
	LogFile   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "admin")
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("WEB_PORT", "5173")
	v.SetDefault("API_BASE_URL", "http://localhost:3000")
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_FILE", "")
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	// Load .env (ignore error in production, env vars set directly)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:        v.GetString("PORT"),
		MongoURI:    v.GetString("MONGODB_URI"),
		DBName:      v.GetString("DB_NAME"),
		StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
		WebPort:     v.GetString("WEB_PORT"),
		APIBaseURL:  strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		APITimeout:  v.GetDuration("API_TIMEOUT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		LogFile:     v.GetString("LOG_FILE"),
	}

	switch cfg.StoreDriver {
	case DriverMongo, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.StoreDriver == DriverMongo && cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MONGODB_URI is required for the mongo store")
	}
	if cfg.APITimeout <= 0 {
		return Config{}, fmt.Errorf("API_TIMEOUT must be positive")
	}
	return cfg, nil
}
