package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"` // listen port, defaults to 8000
}

// AuthConfig holds the token signing settings.
type AuthConfig struct {
	JWTSecret string `yaml:"jwtSecret"` // HS256 signing secret
}

// MySQLConfig holds the MySQL connection settings.
type MySQLConfig struct {
	Address         string `yaml:"address"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	Database        string `yaml:"database"`
	MaxOpenConns    int    `yaml:"maxOpenConns"`
	MaxIdleConns    int    `yaml:"maxIdleConns"`
	ConnMaxLifetime int    `yaml:"connMaxLifetime"` // seconds
}

// MinIOConfig holds the object storage settings.
type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Secure    bool   `yaml:"secure"`
}

// QdrantConfig holds the vector index settings.
type QdrantConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Collection string `yaml:"collection"`
	VectorDim  int    `yaml:"vectorDim"` // embedding dimension for collection bootstrap
}

// KafkaConfig holds the ingestion queue settings.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"` // topic the embedding worker consumes
}

// OpenAIConfig holds the LLM and embedding provider settings.
type OpenAIConfig struct {
	APIKey         string `yaml:"apiKey"`
	ChatModel      string `yaml:"chatModel"`
	EmbeddingModel string `yaml:"embeddingModel"`
}

// RetrievalConfig holds the retrieval settings for the chat pipeline.
type RetrievalConfig struct {
	TopK int `yaml:"topK"` // number of chunks retrieved per query
}

// RateLimiterConfig holds the API rate limiter settings.
type RateLimiterConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Rate     float64 `yaml:"rate"` // tokens per second
	Capacity int     `yaml:"capacity"`
}

// LoggerConfig holds the logger settings.
type LoggerConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// AppConfig is the root configuration for the service.
type AppConfig struct {
	Server      ServerConfig      `yaml:"server"`
	Auth        AuthConfig        `yaml:"auth"`
	MySQL       MySQLConfig       `yaml:"mysql"`
	MinIO       MinIOConfig       `yaml:"minio"`
	Qdrant      QdrantConfig      `yaml:"qdrant"`
	Kafka       KafkaConfig       `yaml:"kafka"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Retrieval   RetrievalConfig   `yaml:"retrieval"`
	RateLimiter RateLimiterConfig `yaml:"rateLimiter"`
	Logger      LoggerConfig      `yaml:"logger"`
}

// LoadConfig reads the YAML configuration file at path, applies environment
// overrides for secrets and returns the parsed configuration.
func LoadConfig(path string) (*AppConfig, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	return &cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Qdrant.Collection == "" {
		c.Qdrant.Collection = "pdf_embeddings"
	}
	if c.Qdrant.VectorDim == 0 {
		c.Qdrant.VectorDim = 1536 // text-embedding-3-small
	}
	if c.OpenAI.ChatModel == "" {
		c.OpenAI.ChatModel = "gpt-3.5-turbo"
	}
	if c.OpenAI.EmbeddingModel == "" {
		c.OpenAI.EmbeddingModel = "text-embedding-3-small"
	}
	if c.Retrieval.TopK == 0 {
		c.Retrieval.TopK = 4
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
}

// applyEnvOverrides lets deployment secrets win over whatever is checked into
// the config file.
func (c *AppConfig) applyEnvOverrides() {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		c.MinIO.AccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		c.MinIO.SecretKey = v
	}
	if v := os.Getenv("MYSQL_PASSWORD"); v != "" {
		c.MySQL.Password = v
	}
	if v := os.Getenv("BUCKET_NAME"); v != "" {
		c.MinIO.Bucket = v
	}
	if v := os.Getenv("QDRANT_COLLECTION"); v != "" {
		c.Qdrant.Collection = v
	}
}
