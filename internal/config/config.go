package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogMode    string
	ServerPort string

	SogniAPIURL string
	SogniAppID  string

	RedisAddr string

	MaxActiveRequests int
	ImageTimeout      time.Duration
	VideoTimeout      time.Duration
	URLCacheTTL       time.Duration
	PollInterval      time.Duration
	StoragePath       string
}

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	} else {
		return nil
	}
}

func validateEnv() error {
	err := checkEnv([]string{
		"LOG_MODE",
		"SERVER_PORT",
		"SOGNI_API_URL",
		"SOGNI_APP_ID",
	})
	if err != nil {
		return err
	}

	return nil
}

func envInt(name string, fallback int) (int, error) {
	raw, exists := os.LookupEnv(name)
	if !exists || raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return value, nil
}

func envString(name, fallback string) string {
	if value, exists := os.LookupEnv(name); exists && value != "" {
		return value
	}
	return fallback
}

func LoadConfig(envFile string) (*Config, error) {
	err := godotenv.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load cofiguration file: %w", err)
	}

	err = validateEnv()
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	maxActive, err := envInt("MAX_ACTIVE_REQUESTS", 10)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}
	imageTimeout, err := envInt("IMAGE_TIMEOUT_SECONDS", 300)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}
	videoTimeout, err := envInt("VIDEO_TIMEOUT_SECONDS", 600)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}
	cacheTTL, err := envInt("URL_CACHE_TTL_MINUTES", 55)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}
	pollInterval, err := envInt("POLL_INTERVAL_SECONDS", 2)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	return &Config{
		LogMode:           os.Getenv("LOG_MODE"),
		ServerPort:        os.Getenv("SERVER_PORT"),
		SogniAPIURL:       os.Getenv("SOGNI_API_URL"),
		SogniAppID:        os.Getenv("SOGNI_APP_ID"),
		RedisAddr:         envString("REDIS_ADDR", ""),
		MaxActiveRequests: maxActive,
		ImageTimeout:      time.Duration(imageTimeout) * time.Second,
		VideoTimeout:      time.Duration(videoTimeout) * time.Second,
		URLCacheTTL:       time.Duration(cacheTTL) * time.Minute,
		PollInterval:      time.Duration(pollInterval) * time.Second,
		StoragePath:       envString("STORAGE_PATH", "./storage"),
	}, nil
}
