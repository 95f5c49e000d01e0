package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting, sourced from the environment.
type Config struct {
	Addr              string
	DatabasePath      string
	SarvamAPIKey      string
	SummarizerURL     string
	SummarizerModel   string
	SummarizerWorkers int
	MaxUploadMB       int64
	AllowedOrigins    []string
}

// Load reads a local .env file if present, then the process environment.
// An empty SARVAM_API_KEY is a valid operating mode: every summary is
// produced by the frequency fallback.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Addr:              ":" + getenv("PORT", "8001"),
		DatabasePath:      getenv("DATABASE_PATH", "documents.db"),
		SarvamAPIKey:      os.Getenv("SARVAM_API_KEY"),
		SummarizerURL:     getenv("SUMMARIZER_URL", "https://api.sarvam.ai/v1"),
		SummarizerModel:   getenv("SUMMARIZER_MODEL", "sarvam-m"),
		SummarizerWorkers: getenvInt("SUMMARIZER_WORKERS", 4),
		MaxUploadMB:       int64(getenvInt("MAX_UPLOAD_MB", 10)),
		AllowedOrigins:    splitList(getenv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
