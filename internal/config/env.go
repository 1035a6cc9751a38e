package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Env struct {
	Port string `mapstructure:"PORT" validate:"required,numeric"`

	DBDriver        string `mapstructure:"DB_DRIVER" validate:"oneof=mongodb postgres sqlite"`
	MongoURI        string `mapstructure:"MONGO_URI" validate:"required_if=DBDriver mongodb"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE"`
	MongoCollection string `mapstructure:"MONGO_COLLECTION"`
	DatabaseURL     string `mapstructure:"DATABASE_URL" validate:"required_if=DBDriver postgres"`

	HFToken           string `mapstructure:"HF_TOKEN"`
	InferenceProvider string `mapstructure:"INFERENCE_PROVIDER" validate:"oneof=openai gemini anthropic"`
	InferenceBaseURL  string `mapstructure:"INFERENCE_BASE_URL"`
	InferenceModel    string `mapstructure:"INFERENCE_MODEL"`

	RedisAddress  string        `mapstructure:"REDIS_ADDRESS"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL" validate:"gt=0"`

	PublicDir string `mapstructure:"PUBLIC_DIR"`
	AppEnv    string `mapstructure:"APP_ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
}

var envDefaults = map[string]interface{}{
	"PORT":               "5000",
	"DB_DRIVER":          "mongodb",
	"MONGO_DATABASE":     "blog_generator",
	"MONGO_COLLECTION":   "blogs",
	"INFERENCE_PROVIDER": "openai",
	"INFERENCE_BASE_URL": "https://router.huggingface.co/v1",
	"REDIS_DB":           0,
	"CACHE_TTL":          "5m",
	"PUBLIC_DIR":         "./public",
	"APP_ENV":            "development",
	"LOG_LEVEL":          "debug",
}

// keys with no default still have to be known to viper for Unmarshal
var envRequired = []string{
	"MONGO_URI",
	"DATABASE_URL",
	"HF_TOKEN",
	"INFERENCE_MODEL",
	"REDIS_ADDRESS",
	"REDIS_PASSWORD",
}

// LoadEnv reads configuration from the process environment. Empty variables
// count as unset.
func LoadEnv() (*Env, error) {
	v := viper.New()
	v.AutomaticEnv()

	for key, value := range envDefaults {
		v.SetDefault(key, value)
	}
	for _, key := range envRequired {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	env.DBDriver = strings.ToLower(strings.TrimSpace(env.DBDriver))
	env.InferenceProvider = strings.ToLower(strings.TrimSpace(env.InferenceProvider))

	if err := validator.New().Struct(env); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &env, nil
}
