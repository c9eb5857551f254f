package config

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Auth   Auth
}

type DB struct {
	DatabaseURI string
	Migrations  string
}

type Server struct {
	RunAddress string
}

type Auth struct {
	Secret string
}

// Load reads configuration from the environment (optionally seeded from a
// .env file) into an explicit Config. The signing secret has no default:
// without it the service must not start.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	cfg := Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{RunAddress: viper.GetString("run_address")},
		Auth:   Auth{Secret: viper.GetString("jwt_secret")},
	}

	if cfg.Env == "" {
		cfg.Env = EnvLocal
	}
	if cfg.Server.RunAddress == "" {
		cfg.Server.RunAddress = ":5000"
	}
	if cfg.DB.Migrations == "" {
		cfg.DB.Migrations = "migrations"
	}

	if cfg.Auth.Secret == "" {
		return nil, errors.New("jwt_secret is required")
	}
	if cfg.DB.DatabaseURI == "" {
		return nil, errors.New("database_uri is required")
	}

	return &cfg, nil
}
