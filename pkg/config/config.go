package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Scoring weights for the final score blend. Must sum to a positive
	// value; invalid combinations fall back to defaults.
	SkillWeight      float64
	SimilarityWeight float64

	// Penalty applied when the resume reports fewer years of experience
	// than the vacancy requires.
	ExperiencePenaltyPerYear float64
	ExperiencePenaltyMax     float64

	// Optional path to a JSON file overriding the built-in skill vocabulary.
	SkillsPath string

	// Upload limit for resume files, megabytes.
	MaxUploadMB int64

	LogJSON bool
	Debug   bool

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:                     getEnv("PORT", "8080"),
		SkillWeight:              getEnvFloat("SKILL_WEIGHT", 0.7),
		SimilarityWeight:         getEnvFloat("SIMILARITY_WEIGHT", 0.3),
		ExperiencePenaltyPerYear: getEnvFloat("EXPERIENCE_PENALTY_PER_YEAR", 5),
		ExperiencePenaltyMax:     getEnvFloat("EXPERIENCE_PENALTY_MAX", 15),
		SkillsPath:               os.Getenv("SKILLS_PATH"),
		MaxUploadMB:              int64(getEnvInt("MAX_UPLOAD_MB", 15)),
		LogJSON:                  getEnvBool("LOG_JSON", false),
		Debug:                    getEnvBool("DEBUG", false),
		OpenRouterAPIKey:         os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:           os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:          getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterAppTitle:       getEnv("OPENROUTER_APP_TITLE", "resume-match"),
		OpenRouterReferer:        os.Getenv("OPENROUTER_REFERER"),
	}
	if cfg.SkillWeight < 0 || cfg.SimilarityWeight < 0 || cfg.SkillWeight+cfg.SimilarityWeight <= 0 {
		cfg.SkillWeight = 0.7
		cfg.SimilarityWeight = 0.3
	}
	if cfg.ExperiencePenaltyPerYear < 0 {
		cfg.ExperiencePenaltyPerYear = 5
	}
	if cfg.ExperiencePenaltyMax < 0 {
		cfg.ExperiencePenaltyMax = 15
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
