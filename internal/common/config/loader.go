// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like APIS_WEATHER_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored when absent
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads .env from the usual locations relative to where the
// process was started.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// overrideEmptyConfig applies the well-known environment variables when the
// config file left the corresponding fields empty.
func overrideEmptyConfig(cfg *Config) {
	if cfg.APIs.Weather.APIKey == "" {
		if val := os.Getenv("OPENWEATHER_API_KEY"); val != "" {
			cfg.APIs.Weather.APIKey = strings.TrimSpace(val)
		}
	}
	if cfg.APIs.News.APIKey == "" {
		if val := os.Getenv("NEWS_API_KEY"); val != "" {
			cfg.APIs.News.APIKey = strings.TrimSpace(val)
		}
	}
	if cfg.APIs.Movies.APIKey == "" {
		if val := os.Getenv("OMDB_API_KEY"); val != "" {
			cfg.APIs.Movies.APIKey = strings.TrimSpace(val)
		}
	}
	if cfg.APIs.Recipes.APIKey == "" {
		if val := os.Getenv("SPOONACULAR_API_KEY"); val != "" {
			cfg.APIs.Recipes.APIKey = strings.TrimSpace(val)
		}
	}

	if val := os.Getenv("PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			cfg.Server.Port = port
		}
	}

	if cfg.Cache.Address == "" {
		if val := os.Getenv("REDIS_ADDRESS"); val != "" {
			cfg.Cache.Address = val
			cfg.Cache.Enabled = true
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "rulecraft-chat"
	}

	// Server defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}

	// Every outbound API call is bounded by this timeout
	if cfg.APIs.Timeout == 0 {
		cfg.APIs.Timeout = 6000
	}

	// External service endpoints
	if cfg.APIs.Weather.BaseURL == "" {
		cfg.APIs.Weather.BaseURL = "http://api.openweathermap.org/data/2.5/weather"
	}
	if cfg.APIs.News.BaseURL == "" {
		cfg.APIs.News.BaseURL = "https://newsapi.org/v2/top-headlines"
	}
	if cfg.APIs.Movies.BaseURL == "" {
		cfg.APIs.Movies.BaseURL = "http://www.omdbapi.com/"
	}
	if cfg.APIs.Recipes.BaseURL == "" {
		cfg.APIs.Recipes.BaseURL = "https://api.spoonacular.com/recipes/complexSearch"
	}
	if cfg.APIs.Dictionary.BaseURL == "" {
		cfg.APIs.Dictionary.BaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	}
	if cfg.APIs.Currency.BaseURL == "" {
		cfg.APIs.Currency.BaseURL = "https://api.exchangerate.host/convert"
	}
	if cfg.APIs.Jokes.BaseURL == "" {
		cfg.APIs.Jokes.BaseURL = "https://api.chucknorris.io/jokes/random"
	}
	if cfg.APIs.Quotes.BaseURL == "" {
		cfg.APIs.Quotes.BaseURL = "https://api.quotable.io/random"
	}
	if cfg.APIs.Translate.BaseURL == "" {
		cfg.APIs.Translate.BaseURL = "https://libretranslate.com/translate"
	}
	if cfg.APIs.CatFacts.BaseURL == "" {
		cfg.APIs.CatFacts.BaseURL = "https://meowfacts.herokuapp.com/"
	}
	if cfg.APIs.DogImages.BaseURL == "" {
		cfg.APIs.DogImages.BaseURL = "https://dog.ceo/api/breeds/image/random"
	}
	if cfg.APIs.Wiki.BaseURL == "" {
		cfg.APIs.Wiki.BaseURL = "https://en.wikipedia.org/api/rest_v1/page/summary"
	}

	// Cache defaults
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 60000
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if cfg.APIs.Timeout <= 0 {
		return fmt.Errorf("apis.timeout must be positive")
	}
	if cfg.Cache.Enabled && cfg.Cache.Address == "" {
		return fmt.Errorf("cache.address is required when cache is enabled")
	}
	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
