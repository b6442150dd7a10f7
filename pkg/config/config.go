package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/deepx/semspace/pkg/common"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Embedding  EmbeddingConfig  `mapstructure:"embedding"`
	Generation GenerationConfig `mapstructure:"generation"`
	Projector  ProjectorConfig  `mapstructure:"projector"`
	Explore    ExploreConfig    `mapstructure:"explore"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	Host        string `mapstructure:"host"`
	CORSOrigin  string `mapstructure:"cors_origin"`
	BodyLimit   int    `mapstructure:"body_limit"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type EmbeddingConfig struct {
	Provider string        `mapstructure:"provider"`
	Model    string        `mapstructure:"model"`
	BaseURL  string        `mapstructure:"base_url"`
	ApiKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type ProjectorConfig struct {
	Default    string `mapstructure:"default"`
	Iterations int    `mapstructure:"iterations"`
	Seed       int64  `mapstructure:"seed"`
}

type ExploreConfig struct {
	EmbedConcurrency int `mapstructure:"embed_concurrency"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}
	setDefaultValues(&globalConfig)
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.MetricsPort == 0 {
		cfg.Server.MetricsPort = 9090
	}
	if cfg.Server.CORSOrigin == "" {
		cfg.Server.CORSOrigin = common.DefaultCORSOrigin
	}
	if cfg.Server.BodyLimit == 0 {
		cfg.Server.BodyLimit = 1024 * 1024
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Embedding.Provider == "" {
		cfg.Embedding.Provider = "ollama"
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "tinyllama"
	}
	if cfg.Embedding.Timeout == 0 {
		cfg.Embedding.Timeout = 30 * time.Second
	}
	if cfg.Generation.Provider == "" {
		cfg.Generation.Provider = "ollama"
	}
	if cfg.Generation.Model == "" {
		cfg.Generation.Model = "tinyllama"
	}
	if cfg.Generation.Timeout == 0 {
		cfg.Generation.Timeout = 120 * time.Second
	}
	if cfg.Generation.Breaker.MaxFailures == 0 {
		cfg.Generation.Breaker.MaxFailures = 5
	}
	if cfg.Generation.Breaker.Timeout == 0 {
		cfg.Generation.Breaker.Timeout = 30 * time.Second
	}
	cfg.Generation.Profiles = mergeProfiles(DefaultProfiles(), cfg.Generation.Profiles)
	if cfg.Projector.Default == "" {
		cfg.Projector.Default = "umap"
	}
	if cfg.Projector.Iterations == 0 {
		cfg.Projector.Iterations = 500
	}
	if cfg.Projector.Seed == 0 {
		cfg.Projector.Seed = 42
	}
	if cfg.Explore.EmbedConcurrency == 0 {
		cfg.Explore.EmbedConcurrency = 4
	}
}

func GetConfig() *Config {
	return &globalConfig
}

// Default returns a configuration with every default applied and no file read.
func Default() *Config {
	cfg := &Config{}
	setDefaultValues(cfg)
	return cfg
}
