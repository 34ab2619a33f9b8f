package configs

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver string
	DBSource string

	JWTSecret string
	JWTTTL    time.Duration

	// admin seed + operator inbox for admin-notify mails
	AdminEmail    string
	AdminPassword string
	AdminName     string
	AdminPhone    string

	MailHost    string
	MailPort    int
	MailUser    string
	MailPass    string
	MailWorkers int
	MailQueue   int
	MailRetries int

	UploadDir   string
	SiteConfig  string
	CORSOrigins []string
}

func LoadConfig() *Config {
	// .env เป็น optional; ใน container ใช้ env จริง
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file, using process environment")
	}

	return &Config{
		Port:    getEnv("PORT", "4056"),
		GinMode: getEnv("GIN_MODE", "debug"),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBSource: getEnv("DB_SOURCE", "royalmeal.db"),

		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,

		AdminEmail:    strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", ""))),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminName:     getEnv("ADMIN_NAME", "Royal Admin"),
		AdminPhone:    getEnv("ADMIN_PHONE", "00000000000"),

		MailHost:    getEnv("MAIL_HOST", ""),
		MailPort:    getEnvInt("MAIL_PORT", 587),
		MailUser:    getEnv("MAIL_USER", ""),
		MailPass:    getEnv("MAIL_PASS", ""),
		MailWorkers: getEnvInt("MAIL_WORKERS", 2),
		MailQueue:   getEnvInt("MAIL_QUEUE", 256),
		MailRetries: getEnvInt("MAIL_RETRIES", 3),

		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		SiteConfig:  getEnv("SITE_CONFIG", "configs/site.toml"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("invalid integer env, using default", "key", key, "default", fallback)
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
