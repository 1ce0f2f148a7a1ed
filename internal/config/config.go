package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Backend   BackendConfig   `mapstructure:"backend"`
	Warehouse WarehouseConfig `mapstructure:"warehouse"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Search    SearchConfig    `mapstructure:"search"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int    `mapstructure:"port"`
	Host            string `mapstructure:"host"`
	APIKey          string `mapstructure:"api_key"`
	CORSAllowOrigin string `mapstructure:"cors_allow_origin"`
}

// BackendConfig holds search backend API configuration
type BackendConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	ServingConfig        string `mapstructure:"serving_config"`
	AuthToken            string `mapstructure:"auth_token"`
	LanguageCode         string `mapstructure:"language_code"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
}

// WarehouseConfig holds product warehouse database configuration
type WarehouseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Table    string `mapstructure:"table"`
}

// RedisConfig holds Redis connection details for the lookup cache
type RedisConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Password       string `mapstructure:"password"`
	Database       int    `mapstructure:"database"`
	NameTTLMinutes int    `mapstructure:"name_ttl_minutes"`
}

// SearchConfig holds query validation limits and pagination bounds
type SearchConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size"`
	MaxPageSize     int `mapstructure:"max_page_size"`
	MaxFetchSize    int `mapstructure:"max_fetch_size"`
	MinQueryLength  int `mapstructure:"min_query_length"`
	MaxQueryLength  int `mapstructure:"max_query_length"`
	MinIDLength     int `mapstructure:"min_id_length"`
	MaxIDLength     int `mapstructure:"max_id_length"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config.yaml file not found in current directory")
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := viper.MergeInConfig(); err != nil {
		return nil, fmt.Errorf("error merging config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.api_key", "")
	viper.SetDefault("server.cors_allow_origin", "*")

	viper.SetDefault("backend.base_url", "https://discoveryengine.googleapis.com")
	viper.SetDefault("backend.serving_config", "")
	viper.SetDefault("backend.auth_token", "")
	viper.SetDefault("backend.language_code", "th")
	viper.SetDefault("backend.timeout", 60)
	viper.SetDefault("backend.max_retries", 3)
	viper.SetDefault("backend.max_requests_per_second", 10)

	viper.SetDefault("warehouse.host", "localhost")
	viper.SetDefault("warehouse.port", 5432)
	viper.SetDefault("warehouse.name", "shopchannel")
	viper.SetDefault("warehouse.user", "shopchannel_user")
	viper.SetDefault("warehouse.password", "shopchannel_pass")
	viper.SetDefault("warehouse.table", "products")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.database", 0)
	viper.SetDefault("redis.name_ttl_minutes", 1440)

	viper.SetDefault("search.default_page_size", 10)
	viper.SetDefault("search.max_page_size", 50)
	viper.SetDefault("search.max_fetch_size", 1000)
	viper.SetDefault("search.min_query_length", 1)
	viper.SetDefault("search.max_query_length", 1000)
	viper.SetDefault("search.min_id_length", 1)
	viper.SetDefault("search.max_id_length", 20)
}
