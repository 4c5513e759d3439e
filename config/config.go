// Package config assembles the process configuration from defaults, a .env
// file, an optional YAML file, an optional SSM parameter and the environment.
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"hrmslite.com/hrms/infrastructure/communication"
	"hrmslite.com/hrms/infrastructure/devops"
)

type Config struct {
	Addr     string                    `yaml:"addr"`
	Database DatabaseConfig            `yaml:"database"`
	CORS     CORSConfig                `yaml:"cors"`
	Slack    communication.SlackOption `yaml:"slack"`
}

type DatabaseConfig struct {
	Driver         string `yaml:"driver"`
	DSN            string `yaml:"dsn"`
	MaxConnections int    `yaml:"max_connections"`
	LogLevel       string `yaml:"log_level"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

func Default() Config {
	return Config{
		Addr: ":8001",
		Database: DatabaseConfig{
			Driver:         "sqlite",
			DSN:            "hrms.db",
			MaxConnections: 10,
			LogLevel:       "warn",
		},
		CORS: CORSConfig{AllowOrigins: []string{"*"}},
	}
}

// Load reads .env (if present) then resolves the configuration.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return load(ctx, os.Getenv, func(ctx context.Context) (devops.ParameterGetter, error) {
		return devops.NewParameterClient(ctx)
	})
}

type parameterClientFunc func(ctx context.Context) (devops.ParameterGetter, error)

func load(ctx context.Context, getenv func(string) string, newClient parameterClientFunc) (*Config, error) {
	cfg := Default()

	if path := getenv("HRMS_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if name := getenv("HRMS_CONFIG_PARAMETER"); name != "" {
		client, err := newClient(ctx)
		if err != nil {
			return nil, err
		}
		if err := devops.LoadYAMLParameter(ctx, client, name, &cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if port := getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if addr := getenv("HRMS_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if driver := getenv("DB_DRIVER"); driver != "" {
		cfg.Database.Driver = driver
	}
	if dsn := getenv("DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if v := getenv("DB_MAX_CONNECTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DB_MAX_CONNECTIONS: %w", err)
		}
		cfg.Database.MaxConnections = n
	}
	if level := getenv("DB_LOG_LEVEL"); level != "" {
		cfg.Database.LogLevel = level
	}
	if origins := getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		cfg.CORS.AllowOrigins = splitList(origins)
	}
	if token := getenv("SLACK_BOT_TOKEN"); token != "" {
		cfg.Slack.Token = token
	}
	if ch := getenv("SLACK_INFO_CHANNEL"); ch != "" {
		cfg.Slack.InfoChannelID = ch
	}
	if ch := getenv("SLACK_ERROR_CHANNEL"); ch != "" {
		cfg.Slack.ErrorChannelID = ch
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
