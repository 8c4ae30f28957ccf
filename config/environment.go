package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Environment struct {
	IsDevelopment bool
	Port          string

	DBDriver string
	DBURL    string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	OpenRouterKey     string
	OpenRouterURL     string
	OpenRouterModel   string
	GenerationTimeout time.Duration

	AllowedOrigins []string
}

// LoadDotEnv loads a .env file unless running on Railway, where variables
// come from the platform.
func LoadDotEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") != "" {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
	}
}

// Load reads the environment through viper, applying development defaults.
func Load() Environment {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_URL", "flashlearn.db")
	v.SetDefault("JWT_ISSUER", "flashlearn")
	v.SetDefault("JWT_AUDIENCE", "flashlearn-api")
	v.SetDefault("OPENROUTER_URL", "https://openrouter.ai/api/v1")
	v.SetDefault("OPENROUTER_MODEL", "openai/gpt-3.5-turbo")
	v.SetDefault("GENERATION_TIMEOUT", "60s")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	return Environment{
		IsDevelopment: v.GetString("RAILWAY_ENVIRONMENT_NAME") == "",
		Port:          v.GetString("PORT"),

		DBDriver: v.GetString("DB_DRIVER"),
		DBURL:    v.GetString("DB_URL"),

		JWTSecret:   v.GetString("JWT_SECRET_KEY"),
		JWTIssuer:   v.GetString("JWT_ISSUER"),
		JWTAudience: v.GetString("JWT_AUDIENCE"),

		OpenRouterKey:     v.GetString("OPENROUTER_API_KEY"),
		OpenRouterURL:     v.GetString("OPENROUTER_URL"),
		OpenRouterModel:   v.GetString("OPENROUTER_MODEL"),
		GenerationTimeout: v.GetDuration("GENERATION_TIMEOUT"),

		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
