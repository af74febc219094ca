package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is built once at startup and injected into every component.
type Config struct {
	Server      ServerConfig
	Gemini      GeminiConfig
	Upload      UploadConfig
	RedisConfig RedisConfig
	CacheEnable bool `env:"CACHE_ENABLE"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"5000"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"2m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

type GeminiConfig struct {
	APIKey          string  `env:"GOOGLE_API_KEY"`
	Model           string  `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Temperature     float32 `env:"GEMINI_TEMPERATURE" envDefault:"0.9"`
	TopP            float32 `env:"GEMINI_TOP_P" envDefault:"0.95"`
	MaxOutputTokens int32   `env:"GEMINI_MAX_OUTPUT_TOKENS" envDefault:"2048"`
}

type UploadConfig struct {
	Dir         string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxFileSize int64  `env:"MAX_FILE_SIZE" envDefault:"10485760"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

// Load reads .env when present and parses environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
