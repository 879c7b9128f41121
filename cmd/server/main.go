package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/harshit2786/pdf-chat-be/internal/api"
	"github.com/harshit2786/pdf-chat-be/internal/auth"
	"github.com/harshit2786/pdf-chat-be/internal/chat"
	"github.com/harshit2786/pdf-chat-be/internal/config"
	"github.com/harshit2786/pdf-chat-be/internal/database/mysql"
	"github.com/harshit2786/pdf-chat-be/internal/embedding"
	"github.com/harshit2786/pdf-chat-be/internal/llm"
	"github.com/harshit2786/pdf-chat-be/internal/models"
	"github.com/harshit2786/pdf-chat-be/internal/queue"
	"github.com/harshit2786/pdf-chat-be/internal/service"
	"github.com/harshit2786/pdf-chat-be/internal/storage"
	"github.com/harshit2786/pdf-chat-be/internal/store"
	"github.com/harshit2786/pdf-chat-be/internal/vector"
	"github.com/harshit2786/pdf-chat-be/pkg/logger"
)

func main() {
	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.Init(level)
	appLogger := logger.New("server")
	appLogger.Info("Logger initialized")

	ctx := context.Background()

	db, err := mysql.Connect(&cfg.MySQL)
	if err != nil {
		appLogger.Fatal(err.Error())
	}
	defer mysql.Close(db)
	if err := mysql.HealthCheck(ctx, db); err != nil {
		appLogger.Fatal(err.Error())
	}
	appLogger.Info("Database connection established")

	if err := db.AutoMigrate(&models.User{}, &models.Folder{}, &models.PDF{}); err != nil {
		appLogger.Fatal(err.Error())
	}
	appLogger.Info("Database migration completed")

	objects, err := storage.NewClient(ctx, &cfg.MinIO)
	if err != nil {
		appLogger.Fatal(err.Error())
	}
	appLogger.Info("Object storage ready")

	index, err := vector.NewIndex(&cfg.Qdrant)
	if err != nil {
		appLogger.Fatal(err.Error())
	}
	defer index.Close()
	if err := index.EnsureCollection(ctx, cfg.Qdrant.VectorDim); err != nil {
		appLogger.Fatal(err.Error())
	}
	appLogger.Info("Vector index ready")

	publisher := queue.NewIngestionPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger.New("queue"))
	defer publisher.Close()
	appLogger.Info("Ingestion queue ready")

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret)
	dataStore := store.NewStore(db)

	authService := service.NewAuthService(dataStore, tokens)
	folderService := service.NewFolderService(dataStore, objects, index, logger.New("folder"))
	pdfService := service.NewPDFService(dataStore, objects, index, publisher, logger.New("pdf"))

	embedder := embedding.NewOpenAIModel(cfg.OpenAI.APIKey, cfg.OpenAI.EmbeddingModel)
	generator := llm.NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.ChatModel)
	retriever := chat.NewRetriever(embedder, index, cfg.Retrieval.TopK)
	chatHandler := chat.NewHandler(retriever, generator, logger.New("chat"))

	handler := api.NewHandler(authService, folderService, pdfService, logger.New("api"))
	router := api.SetupRouter(handler, chatHandler, tokens, &cfg.RateLimiter)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	appLogger.Info("Server is running on " + addr)
	if err := router.Run(addr); err != nil {
		appLogger.Fatal(err.Error())
	}
}
