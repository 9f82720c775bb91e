package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Qdrant   QdrantConfig
	Gemini   GeminiConfig
	Auth     AuthConfig
	Scoring  ScoringConfig
}

type ServerConfig struct {
	Port        string
	Env         string
	MaxBodySize int64
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type GeminiConfig struct {
	APIKey            string
	RequestsPerMinute int
}

type AuthConfig struct {
	JWTSecret string
}

type ScoringConfig struct {
	// Defaults applied when the caller supplies no weights. They are not
	// required to sum to 1; the blend uses them as given.
	KeywordWeight  float64
	SemanticWeight float64

	// Score returned when the embedding provider fails mid-request.
	SemanticFallbackScore float64

	// Documents are truncated to this many words before embedding.
	MaxEmbedWords int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "5000"),
			Env:         getEnv("ENV", "development"),
			MaxBodySize: getEnvAsInt64("MAX_BODY_SIZE", 52428800),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "talentfit"),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", "http://localhost:6333"),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "talentfit_resumes"),
		},
		Gemini: GeminiConfig{
			APIKey:            getEnv("GEMINI_API_KEY", ""),
			RequestsPerMinute: getEnvAsInt("AI_REQUESTS_PER_MINUTE", 60),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Scoring: ScoringConfig{
			KeywordWeight:         getEnvAsFloat("KEYWORD_WEIGHT", 0.5),
			SemanticWeight:        getEnvAsFloat("SEMANTIC_WEIGHT", 0.5),
			SemanticFallbackScore: getEnvAsFloat("SEMANTIC_FALLBACK_SCORE", 50.0),
			MaxEmbedWords:         getEnvAsInt("MAX_EMBED_WORDS", 500),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
