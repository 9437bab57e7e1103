package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type (
	Cfg struct {
		LogLevel string
		Postgres Postgres
		// networks mirrored by the dashboard, e.g. "mainnet-beta,testnet"
		Networks []string
	}

	Postgres struct {
		Host     string
		Port     string
		User     string
		Password string
		DbName   string
		SslMode  string
		Timezone string
	}
)

func initConfig() (*Cfg, error) {
	if err := godotenv.Load(); err != nil {
		return nil, err
	}

	networks := strings.Split(os.Getenv("NETWORKS"), ",")
	if len(networks) == 1 && networks[0] == "" {
		networks = []string{"mainnet-beta"}
	}

	cfg := Cfg{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Networks: networks,
		Postgres: Postgres{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DbName:   os.Getenv("POSTGRES_DB_NAME"),
			SslMode:  os.Getenv("POSTGRES_SSLMODE"),
			Timezone: os.Getenv("POSTGRES_TIMEZONE"),
		},
	}

	return &cfg, nil
}
