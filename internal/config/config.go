package config

import (
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	MapboxToken   string
	MapboxBaseURL string
	CDNBase       string
	FakeMode      bool // 使用内置模拟数据
	RateLimit     int  // 每分钟每 IP 最大请求数
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/foodtour.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	mapboxBase := os.Getenv("MAPBOX_BASE_URL")
	if mapboxBase == "" {
		mapboxBase = "https://api.mapbox.com"
	}

	rateLimit := 300
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateLimit = n
		}
	}

	return &Config{
		Port:          port,
		DBPath:        dbPath,
		JWTSecret:     jwtSecret,
		MapboxToken:   os.Getenv("MAPBOX_TOKEN"),
		MapboxBaseURL: mapboxBase,
		CDNBase:       os.Getenv("CDN_BASE"),
		FakeMode:      os.Getenv("FAKE_MODE") == "1" || os.Getenv("FAKE_MODE") == "true",
		RateLimit:     rateLimit,
	}
}
