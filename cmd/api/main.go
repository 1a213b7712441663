package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/readysethire/readysethire/internal/api/middleware"
	"github.com/readysethire/readysethire/internal/api/routes"
	"github.com/readysethire/readysethire/internal/application"
	"github.com/readysethire/readysethire/internal/config"
	"github.com/readysethire/readysethire/internal/objectstore"
	"github.com/readysethire/readysethire/internal/postgrest"
	"github.com/readysethire/readysethire/internal/repository"
	"github.com/readysethire/readysethire/internal/titlecache"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	client := postgrest.New(config.APIBaseURL, config.APIToken, config.APIUsername)
	repos := repository.New(client)
	cache := titlecache.NewMemoryCache()

	bank := application.LoadQuestionBank(config.QuestionBankFile)
	generator := application.NewGeneratorService(config.OpenAIAPIKey, config.OpenAIBaseURL, config.OpenAIModel, bank)

	services := application.New(repos, cache, generator)

	// Audio storage is optional: uploads are refused if MinIO is down but
	// interviews still complete without them.
	store, err := objectstore.New(config.MinioEndpoint, config.MinioAccessKey,
		config.MinioSecretKey, config.MinioBucket, config.MinioUseSSL)
	if err != nil {
		log.Printf("Warning: audio storage unavailable: %v", err)
		store = nil
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, services, store)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
