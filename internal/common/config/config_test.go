package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "rulecraft-chat", cfg.App.Name)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 6000, cfg.APIs.Timeout)
	assert.Equal(t, 60000, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.Equal(t, "http://api.openweathermap.org/data/2.5/weather", cfg.APIs.Weather.BaseURL)
	assert.Equal(t, "https://newsapi.org/v2/top-headlines", cfg.APIs.News.BaseURL)
	assert.Equal(t, "http://www.omdbapi.com/", cfg.APIs.Movies.BaseURL)
	assert.Equal(t, "https://en.wikipedia.org/api/rest_v1/page/summary", cfg.APIs.Wiki.BaseURL)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.APIs.Timeout = 2500
	cfg.APIs.Weather.BaseURL = "http://localhost:9999/weather"

	applyDefaults(cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 2500, cfg.APIs.Timeout)
	assert.Equal(t, "http://localhost:9999/weather", cfg.APIs.Weather.BaseURL)
}

func TestOverrideEmptyConfig_APIKeys(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "  weather-key \n")
	t.Setenv("NEWS_API_KEY", "news-key")
	t.Setenv("OMDB_API_KEY", "omdb-key")
	t.Setenv("SPOONACULAR_API_KEY", "spoon-key")

	cfg := &Config{}
	overrideEmptyConfig(cfg)

	assert.Equal(t, "weather-key", cfg.APIs.Weather.APIKey)
	assert.Equal(t, "news-key", cfg.APIs.News.APIKey)
	assert.Equal(t, "omdb-key", cfg.APIs.Movies.APIKey)
	assert.Equal(t, "spoon-key", cfg.APIs.Recipes.APIKey)
}

func TestOverrideEmptyConfig_DoesNotClobber(t *testing.T) {
	t.Setenv("NEWS_API_KEY", "env-key")

	cfg := &Config{}
	cfg.APIs.News.APIKey = "file-key"
	overrideEmptyConfig(cfg)

	assert.Equal(t, "file-key", cfg.APIs.News.APIKey)
}

func TestOverrideEmptyConfig_Port(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg := &Config{}
	overrideEmptyConfig(cfg)
	assert.Equal(t, 9090, cfg.Server.Port)

	t.Setenv("PORT", "not-a-number")
	cfg = &Config{}
	cfg.Server.Port = 5000
	overrideEmptyConfig(cfg)
	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestOverrideEmptyConfig_RedisAddressEnablesCache(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	cfg := &Config{}
	overrideEmptyConfig(cfg)

	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Cache.Address)
}

func TestValidateConfig(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	require.NoError(t, validateConfig(cfg))

	bad := &Config{}
	applyDefaults(bad)
	bad.Server.Port = 70000
	assert.Error(t, validateConfig(bad))

	bad = &Config{}
	applyDefaults(bad)
	bad.APIs.Timeout = -1
	assert.Error(t, validateConfig(bad))

	bad = &Config{}
	applyDefaults(bad)
	bad.Cache.Enabled = true
	bad.Cache.Address = ""
	assert.Error(t, validateConfig(bad))
}

func TestServerConfigAddr(t *testing.T) {
	s := ServerConfig{Host: "", Port: 5000}
	assert.Equal(t, ":5000", s.Addr())

	s = ServerConfig{Host: "127.0.0.1", Port: 8080}
	assert.Equal(t, "127.0.0.1:8080", s.Addr())
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 6*time.Second, GetDuration(6000))
	assert.Equal(t, 500*time.Millisecond, GetDuration(500))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
