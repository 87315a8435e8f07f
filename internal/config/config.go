package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Env               string
	AppSecret         string
	DatabaseURL       string
	JWTExpiry         time.Duration
	Port              string
	SiteUrl           string
	UploadDir         string
	SeedData          bool
	DevAuthBypass     bool // 仅开发环境生效，默认关闭
	DevFallbackUserID int
}

// Load 加载配置
func Load() *Config {
	// Token 有效期默认 7 天（168 小时）
	expiryHours, _ := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "168"))

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "filmhub")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	appSecret := getEnv("APP_SECRET", getEnv("JWT_SECRET", "your-secret-key-change-in-production"))

	env := getEnv("APP_ENV", "development")
	if env == "production" && appSecret == "your-secret-key-change-in-production" {
		fmt.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 APP_SECRET 环境变量。")
	}

	fallbackID, _ := strconv.Atoi(getEnv("DEV_FALLBACK_USER_ID", "1"))

	return &Config{
		Env:               env,
		AppSecret:         appSecret,
		DatabaseURL:       dbURL,
		JWTExpiry:         time.Duration(expiryHours) * time.Hour,
		Port:              getEnv("PORT", "5000"),
		SiteUrl:           getEnv("SITE_URL", "http://localhost:5000"),
		UploadDir:         getEnv("UPLOAD_DIR", "./static"),
		SeedData:          getEnv("SEED_DATA", "false") == "true",
		DevAuthBypass:     env == "development" && getEnv("DEV_AUTH_BYPASS", "false") == "true",
		DevFallbackUserID: fallbackID,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
