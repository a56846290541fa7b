package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	// MaxEmployeeAssignments caps active assignments per employee.
	MaxEmployeeAssignments int
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:                  os.Getenv("DB_DSN"),
		ServerPort:             os.Getenv("SERVER_PORT"),
		SessionSecret:          os.Getenv("SESSION_SECRET"),
		MaxEmployeeAssignments: 5,
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	if v := os.Getenv("MAX_EMPLOYEE_ASSIGNMENTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("invalid MAX_EMPLOYEE_ASSIGNMENTS: %q", v)
		}
		cfg.MaxEmployeeAssignments = n
	}

	return cfg
}
