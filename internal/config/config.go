package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 服务进程配置
type Config struct {
	Port            int
	RedisAddr       string // 为空时使用进程内缓存
	CacheTTL        time.Duration
	LogLevel        string
	LogFormat       string
	OTELEndpoint    string
	OTELServiceName string
}

// Load 从环境变量读取配置，.env 文件存在时一并加载（加载失败忽略）
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 8080),
		RedisAddr:       getEnvString("REDIS_ADDR", ""),
		CacheTTL:        time.Duration(getEnvInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
		LogLevel:        getEnvString("LOG_LEVEL", "info"),
		LogFormat:       getEnvString("LOG_FORMAT", "json"),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "canamort"),
	}
	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
