package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GroqAPIKey string
	GroqBase   string
	GroqModel  string

	CohereAPIKey string
	CohereBase   string
	CohereModel  string

	// SupabaseJWTSecret verifies access tokens minted by the frontend's
	// sign-in flow; when empty, requests stay anonymous.
	SupabaseJWTSecret string

	LLMTimeout     time.Duration
	LLMMaxAttempts int
	LLMBaseDelay   time.Duration
	LLMMaxDelay    time.Duration

	CacheTTL time.Duration
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		GroqAPIKey: os.Getenv("GROQ_API_KEY"),
		GroqBase:   getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:  getEnv("GROQ_MODEL", "llama3-8b-8192"),

		CohereAPIKey: os.Getenv("COHERE_API_KEY"),
		CohereBase:   getEnv("COHERE_BASE_URL", "https://api.cohere.ai/v1"),
		CohereModel:  getEnv("COHERE_MODEL", "embed-english-light-v3.0"),

		SupabaseJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),

		LLMTimeout:     getEnvDuration("LLM_TIMEOUT", 25*time.Second),
		LLMMaxAttempts: getEnvInt("LLM_MAX_ATTEMPTS", 3),
		LLMBaseDelay:   getEnvDuration("LLM_BASE_DELAY", 500*time.Millisecond),
		LLMMaxDelay:    getEnvDuration("LLM_MAX_DELAY", 5*time.Second),

		CacheTTL: getEnvDuration("CACHE_TTL", 6*time.Hour),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
