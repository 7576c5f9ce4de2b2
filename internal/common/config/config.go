// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	APIs    APIsConfig    `mapstructure:"apis"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIsConfig holds settings for all external information services.
// Timeout applies to every outbound call.
type APIsConfig struct {
	Timeout int `mapstructure:"timeout"` // milliseconds

	Weather ServiceConfig `mapstructure:"weather"`
	News    ServiceConfig `mapstructure:"news"`
	Movies  ServiceConfig `mapstructure:"movies"`
	Recipes ServiceConfig `mapstructure:"recipes"`

	Dictionary EndpointConfig `mapstructure:"dictionary"`
	Currency   EndpointConfig `mapstructure:"currency"`
	Jokes      EndpointConfig `mapstructure:"jokes"`
	Quotes     EndpointConfig `mapstructure:"quotes"`
	Translate  EndpointConfig `mapstructure:"translate"`
	CatFacts   EndpointConfig `mapstructure:"cat_facts"`
	DogImages  EndpointConfig `mapstructure:"dog_images"`
	Wiki       EndpointConfig `mapstructure:"wiki"`
}

// ServiceConfig describes a keyed external service. A missing APIKey is a
// normal runtime condition, never a startup failure.
type ServiceConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

// EndpointConfig describes an external service that needs no credential.
type EndpointConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig holds Redis settings for the gateway result cache.
type CacheConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTL      int    `mapstructure:"ttl"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
