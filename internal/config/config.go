package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProberIdentify = "identify"
	ProberNative   = "native"
)

type Config struct {
	Tools     ToolsConfig
	Watermark WatermarkConfig
	Log       LogConfig
}

type ToolsConfig struct {
	ConvertBin  string
	IdentifyBin string
	Prober      string
	Timeout     time.Duration
}

// WatermarkConfig holds defaults for flags the user did not set. Empty
// values leave the library defaults in place.
type WatermarkConfig struct {
	Colour   string
	Position string
	FontSize int
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Tools: ToolsConfig{
			ConvertBin:  getEnv("WATERMARK_CONVERT_BIN", "convert"),
			IdentifyBin: getEnv("WATERMARK_IDENTIFY_BIN", "identify"),
			Prober:      getEnv("WATERMARK_PROBER", ProberIdentify),
			Timeout:     getDuration("WATERMARK_TIMEOUT", 0),
		},
		Watermark: WatermarkConfig{
			Colour:   getEnv("WATERMARK_COLOUR", ""),
			Position: getEnv("WATERMARK_POSITION", ""),
			FontSize: getEnvAsInt("WATERMARK_FONT_SIZE", 0),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	switch cfg.Tools.Prober {
	case ProberIdentify, ProberNative:
	default:
		return nil, fmt.Errorf("unknown WATERMARK_PROBER %q", cfg.Tools.Prober)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}
