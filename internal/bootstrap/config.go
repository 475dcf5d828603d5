package bootstrap

import (
	"os"
	"strconv"
)

// Config is the top level configuration for the banking service, loaded
// from the environment once at startup.
type Config struct {
	ServerAddress    string `env:"SERVER_ADDRESS"`
	LogLevel         string `env:"LOG_LEVEL"`
	GatewayBuffer    int    `env:"GATEWAY_BUFFER_SIZE"`
	CompletionBuffer int    `env:"COMPLETION_BUFFER_SIZE"`
}

// NewConfigFromEnv reads Config from the environment, applying the same
// defaults the teacher's env-tag Config structs document via envDefault.
func NewConfigFromEnv() *Config {
	return &Config{
		ServerAddress:   getEnv("SERVER_ADDRESS", ":3000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		GatewayBuffer:    getEnvInt("GATEWAY_BUFFER_SIZE", 256),
		CompletionBuffer: getEnvInt("COMPLETION_BUFFER_SIZE", 256),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}
