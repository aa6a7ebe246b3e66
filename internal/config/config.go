package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Chat     ChatConfig
	Rag      RagConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

// ChatConfig holds the per-session knobs of the dispatch pipeline. Values
// are read once at bootstrap and fixed for the session lifecycle.
type ChatConfig struct {
	MaxHistoryTurns int
	// ArchiveTranscripts mirrors finished turns into Redis when a Redis URL
	// is configured, so transcripts survive process restarts.
	ArchiveTranscripts bool
}

type RagConfig struct {
	Enabled       bool
	TopK          int
	OllamaBaseURL string
	OllamaModel   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Chat: ChatConfig{
			MaxHistoryTurns:    getEnvAsInt("MAX_HISTORY_TURNS", 10),
			ArchiveTranscripts: getEnvAsBool("ARCHIVE_TRANSCRIPTS", true),
		},
		Rag: RagConfig{
			Enabled:       getEnvAsBool("ENABLE_RAG", true),
			TopK:          getEnvAsInt("RAG_TOP_K", 3),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
