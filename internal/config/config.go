package config

import (
	"strings"

	"github.com/spf13/viper"
)

const defaultBaseURL = "https://parallelum.com.br/fipe/api/v1"

type Config struct {
	BaseURL  string
	LogLevel string
}

// Load le a configuracao das variaveis de ambiente FIPE_BASE_URL e LOG_LEVEL
func Load() *Config {
	v := viper.New()
	v.SetDefault("fipe_base_url", defaultBaseURL)
	v.SetDefault("log_level", "warn")
	v.AutomaticEnv()

	baseURL := strings.TrimRight(v.GetString("fipe_base_url"), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Config{
		BaseURL:  baseURL,
		LogLevel: strings.ToLower(v.GetString("log_level")),
	}
}
