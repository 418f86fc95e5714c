package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Mail    MailConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Port string
}

type DBConfig struct {
	URL string
}

type MailConfig struct {
	User     string
	Password string
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

// Load reads configuration from the environment, after loading .env if one
// exists. Call once at startup.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		DB: DBConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Mail: MailConfig{
			User:     os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASS"),
		},
		Storage: StorageConfig{
			Endpoint:  os.Getenv("STORAGE_ENDPOINT"),
			AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
			SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
			Bucket:    os.Getenv("STORAGE_BUCKET"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Mail.User == "" || c.Mail.Password == "" {
		return fmt.Errorf("EMAIL_USER and EMAIL_PASS are required")
	}

	if c.Storage.Endpoint == "" || c.Storage.AccessKey == "" ||
		c.Storage.SecretKey == "" || c.Storage.Bucket == "" {
		return fmt.Errorf("STORAGE_ENDPOINT, STORAGE_ACCESS_KEY, STORAGE_SECRET_KEY and STORAGE_BUCKET are required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
