package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs. It is assembled once at startup
// and passed explicitly to the database and routes; nothing reads the
// environment after Load returns.
type Config struct {
	MongoURI       string
	MongoDB        string
	Port           string
	AllowedOrigins string
}

// Load reads .env (when present) and the environment into a Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	cfg := Config{
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        getEnv("MONGO_DB", "studentsDB"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
