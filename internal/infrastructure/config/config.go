package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 支援的生成式後端
const (
	ProviderGemini     = "gemini"
	ProviderGeminiSDK  = "gemini-sdk"
	ProviderOpenRouter = "openrouter"
)

// 支援的食譜目錄來源
const (
	CatalogSourceFile   = "file"
	CatalogSourceRedis  = "redis"
	CatalogSourceMemory = "memory"
)

// Config 應用配置
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	AI         AIConfig         `mapstructure:"ai"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	LogLevel   string           `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
}

// AIConfig 生成式後端共用設定
type AIConfig struct {
	Provider        string        `mapstructure:"provider"`
	Timeout         time.Duration `mapstructure:"timeout"`
	Temperature     float64       `mapstructure:"temperature"`
	MaxOutputTokens int           `mapstructure:"max_output_tokens"`
}

// GeminiConfig Gemini 配置
type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// OpenRouterConfig OpenRouter 配置
type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// CatalogConfig 食譜目錄來源設定
type CatalogConfig struct {
	Source   string      `mapstructure:"source"`
	Path     string      `mapstructure:"path"`
	WarnSize int         `mapstructure:"warn_size"`
	Redis    RedisConfig `mapstructure:"redis"`
}

// RedisConfig Redis 連線設定
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// .env 不存在時直接使用環境變數
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// 設定環境變數前綴
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 綁定環境變量
	_ = v.BindEnv("ai.provider", "AI_PROVIDER")
	_ = v.BindEnv("ai.timeout", "AI_TIMEOUT")
	_ = v.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("gemini.model", "GEMINI_MODEL")
	_ = v.BindEnv("gemini.base_url", "GEMINI_BASE_URL")
	_ = v.BindEnv("openrouter.api_key", "OPENROUTER_API_KEY")
	_ = v.BindEnv("openrouter.model", "OPENROUTER_MODEL")
	_ = v.BindEnv("catalog.source", "CATALOG_SOURCE")
	_ = v.BindEnv("catalog.path", "CATALOG_PATH")
	_ = v.BindEnv("catalog.redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("catalog.redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	_ = v.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	_ = v.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// 讀取設定檔
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// logger 尚未初始化，直接寫到 stderr
	fmt.Fprintln(os.Stderr, "Loading configuration",
		"ai_provider:", v.GetString("ai.provider"),
		"gemini_api_key:", MaskAPIKey(v.GetString("gemini.api_key")),
		"catalog_source:", v.GetString("catalog.source"),
	)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// MaskAPIKey 遮罩 API Key，只顯示前後各 4 個字符
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 設定預設值
func setDefaults(v *viper.Viper) {
	// 應用程式設定
	v.SetDefault("app.env", "development")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.name", "recipe-chatbot")

	// 伺服器設定
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.request_timeout", "60s")
	v.SetDefault("server.max_body_bytes", 1<<20)

	// 生成式後端設定
	v.SetDefault("ai.provider", ProviderGemini)
	v.SetDefault("ai.timeout", "30s")
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.max_output_tokens", 1000)

	v.SetDefault("gemini.model", "gemini-2.5-flash-lite")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")

	v.SetDefault("openrouter.model", "google/gemini-2.5-flash-lite")
	v.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")

	// 食譜目錄設定
	v.SetDefault("catalog.source", CatalogSourceFile)
	v.SetDefault("catalog.path", "data/recipes.yaml")
	v.SetDefault("catalog.warn_size", 500)
	v.SetDefault("catalog.redis.addr", "localhost:6379")
	v.SetDefault("catalog.redis.db", 0)
	v.SetDefault("catalog.redis.key", "catalog:recipes")

	// 限流設定
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("log_level", "info")
}

// validateConfig 驗證設定
// API Key 不在這裡驗證，缺少時由後端在呼叫時回報 ConfigurationError
func validateConfig(config *Config) error {
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	switch config.AI.Provider {
	case ProviderGemini, ProviderGeminiSDK, ProviderOpenRouter:
	default:
		return fmt.Errorf("unknown ai provider %q", config.AI.Provider)
	}
	if config.AI.Timeout <= 0 {
		return fmt.Errorf("invalid ai timeout")
	}
	if config.AI.MaxOutputTokens <= 0 {
		return fmt.Errorf("invalid ai max output tokens")
	}

	switch config.Catalog.Source {
	case CatalogSourceFile:
		if config.Catalog.Path == "" {
			return fmt.Errorf("catalog path is required for file source")
		}
	case CatalogSourceRedis:
		if config.Catalog.Redis.Addr == "" || config.Catalog.Redis.Key == "" {
			return fmt.Errorf("catalog redis addr and key are required")
		}
	case CatalogSourceMemory:
	default:
		return fmt.Errorf("unknown catalog source %q", config.Catalog.Source)
	}

	if config.RateLimit.Enabled {
		if config.RateLimit.Requests <= 0 {
			return fmt.Errorf("invalid rate limit requests")
		}
		if config.RateLimit.Window <= 0 {
			return fmt.Errorf("invalid rate limit window")
		}
	}

	return nil
}

// Default 回傳只含預設值的設定，供測試與 CLI 使用
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}
