package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Turnstile (CAPTCHA) Configuration
	TurnstileSecretKey string
	TurnstileVerifyURL string
	TurnstileBypassDev bool // Development-only bypass, never enable in production
	// Resend (transactional email) Configuration
	ResendAPIKey    string
	ResendFromEmail string
	// Telegram notification channel (optional)
	TelegramBotToken string
	TelegramChatID   string
	// Admin API
	AdminJWTSecret string
	// Locale Configuration
	DefaultLocale    string
	SupportedLocales []string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Turnstile Configuration
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		TurnstileVerifyURL: getEnv("TURNSTILE_VERIFY_URL", "https://challenges.cloudflare.com/turnstile/v0/siteverify"),
		TurnstileBypassDev: getEnvBool("TURNSTILE_BYPASS_DEV", false),
		// Resend Configuration
		ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
		ResendFromEmail: getEnv("RESEND_FROM_EMAIL", "noreply@fmemije.com"),
		// Telegram Configuration (both values required for the channel to be active)
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		// Admin API
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
		// Locale Configuration
		DefaultLocale:    getEnv("DEFAULT_LOCALE", "en"),
		SupportedLocales: []string{"en", "es"},
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5), // 5 submissions per window per IP
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	// Surface misconfiguration at startup, not mid-request
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Submissions will not be persisted.")
	}
	if cfg.TurnstileSecretKey == "" && !cfg.TurnstileBypassDev {
		log.Println("WARNING: TURNSTILE_SECRET_KEY is missing. All CAPTCHA verifications will fail closed.")
	}
	if cfg.TurnstileBypassDev {
		log.Println("WARNING: TURNSTILE_BYPASS_DEV is enabled. CAPTCHA verification is skipped.")
	}
	if cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY not configured. Confirmation emails will not be sent.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
