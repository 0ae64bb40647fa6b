package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Rag      RagConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	// Connection is a postgres DSN. Empty means the in-memory stores are
	// used instead, which is the single-binary default.
	Connection string

	// VectorSearch selects where similarity ranking happens: "memory"
	// (in-process cosine) or "pgvector" (store-side, postgres only).
	VectorSearch string
}

type AIConfig struct {
	EmbeddingProvider  string // "gemini" or "frequency"
	GeminiAPIKey       string
	HuggingFaceAPIKey  string
	HuggingFaceModel   string
	HuggingFaceBaseURL string
	LLMProviders       []string // fallback order, e.g. gemini,huggingface
	ProviderTimeout    time.Duration
}

type RagConfig struct {
	ChunkSize     int
	ChunkOverlap  int
	TopK          int
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection:   getEnv("DB_CONNECTION_STRING", ""),
			VectorSearch: getEnv("VECTOR_SEARCH", "memory"),
		},
		Ai: AIConfig{
			EmbeddingProvider:  getEnv("EMBEDDING_PROVIDER", "gemini"),
			GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
			HuggingFaceAPIKey:  getEnv("HUGGING_FACE_API_KEY", ""),
			HuggingFaceModel:   getEnv("HUGGING_FACE_MODEL", "meta-llama/Llama-3.2-3B-Instruct"),
			HuggingFaceBaseURL: getEnv("HUGGING_FACE_BASE_URL", ""),
			LLMProviders:       getEnvAsList("LLM_PROVIDERS", "gemini,huggingface"),
			ProviderTimeout:    getEnvAsDuration("PROVIDER_TIMEOUT", 30*time.Second),
		},
		Rag: RagConfig{
			ChunkSize:     getEnvAsInt("CHUNK_SIZE", 1000),
			ChunkOverlap:  getEnvAsInt("CHUNK_OVERLAP", 200),
			TopK:          getEnvAsInt("RETRIEVAL_TOP_K", 5),
			SessionTTL:    getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			SweepInterval: getEnvAsDuration("SWEEP_INTERVAL", 10*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
