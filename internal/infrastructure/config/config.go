package config

import (
	"os"
	"strconv"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// 天气数据提供方类型
const (
	ProviderOpenWeather = "openweather"
	ProviderSeniverse   = "seniverse"
)

// Config stores all configuration of the application
type Config struct {
	// Server
	ServerPort string

	// 天气数据提供方: "openweather" 或 "seniverse"
	WeatherProvider string

	// OpenWeatherMap v2.5
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string // 天气接口根地址
	GeocodingBaseURL   string // 地理编码接口根地址

	// 心知天气 v3
	SeniverseAPIKey  string
	SeniverseBaseURL string

	// HTML 渲染服务（HTML -> 图片）
	RenderAPIURL string

	// 默认城市，命令未携带城市参数时使用
	DefaultCity string

	// 出站请求超时（秒）
	HTTPTimeoutSeconds int
}

// LoadConfig loads config from environment variables
func LoadConfig() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		WeatherProvider: getEnv("WEATHER_PROVIDER", ProviderOpenWeather),

		OpenWeatherAPIKey:  getEnv("OPENWEATHER_API_KEY", ""),
		OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"),
		GeocodingBaseURL:   getEnv("GEOCODING_BASE_URL", "https://api.openweathermap.org"),

		SeniverseAPIKey:  getEnv("SENIVERSE_API_KEY", ""),
		SeniverseBaseURL: getEnv("SENIVERSE_BASE_URL", "https://api.seniverse.com"),

		RenderAPIURL: getEnv("RENDER_API_URL", "http://localhost:9966/render"),

		DefaultCity: getEnv("DEFAULT_CITY", "北京"),

		HTTPTimeoutSeconds: getEnvAsInt("HTTP_TIMEOUT_SECONDS", 10),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
