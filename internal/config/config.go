package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ServerPort string
	JwtSecret  string
	Issuer     string

	// PostgREST backend
	APIBaseURL  string
	APIToken    string
	APIUsername string

	// Console admin credential
	AdminUsername     string
	AdminPasswordHash string

	// AI question generation
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Answer audio storage
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// Optional question bank override (prompt template + fallback set)
	QuestionBankFile string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "readysethire")

	APIBaseURL = getEnv("API_BASE_URL", "http://localhost:3000")
	APIToken = getEnv("API_TOKEN", "")
	APIUsername = getEnv("API_USERNAME", "")

	AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")

	OpenAIAPIKey = getEnv("OPENAI_API_KEY", "")
	OpenAIBaseURL = getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1/")
	OpenAIModel = getEnv("OPENAI_MODEL", "gpt-4o-mini")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "recordings")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	QuestionBankFile = getEnv("QUESTION_BANK_FILE", "")

	warnPlaceholder("API_TOKEN", APIToken)
	warnPlaceholder("API_USERNAME", APIUsername)
	warnPlaceholder("JWT_SECRET", JwtSecret)
}

// warnPlaceholder flags unset or obviously-template values. Startup still
// proceeds; backend calls will fail with 401 until the value is fixed.
func warnPlaceholder(key, value string) {
	if value == "" || value == "defaultsecret" ||
		strings.Contains(value, "CHANGE_ME") || strings.Contains(value, "your-") {
		log.Printf("Warning: %s is missing or a placeholder value", key)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
