// Plik: pkg/config/config.go
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	UploadsDir string
}

type GeocoderConfig struct {
	// Pusty klucz oznacza pracę na wbudowanej atrapie (mock).
	APIKey string
}

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	JWT      JWTConfig
	Geocoder GeocoderConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Ostrzeżenie: plik .env nie został znaleziony lub nie dało się go wczytać.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Storage: StorageConfig{
			UploadsDir: getEnv("UPLOADS_DIR", "uploads"),
		},
		JWT: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET_KEY", "9A4D2AD385B2BAA8DC78F558B548F"),
			AccessTokenTTL:  time.Hour * 24,
			RefreshTokenTTL: time.Hour * 24 * 30,
		},
		Geocoder: GeocoderConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
