package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"push-notifications-poc"`
	Version     string `env:"VERSION"      envDefault:"1.0.0"`

	Server   ServerConfig   `envPrefix:"SERVER_"`
	Registry RegistryConfig `envPrefix:"REGISTRY_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	DB       DBConfig       `envPrefix:"DB_"`
	Push     PushConfig     `envPrefix:"PUSH_"`
	Jaeger   JaegerConfig   `envPrefix:"JAEGER_"`
	Agent    AgentConfig    `envPrefix:"AGENT_"`
}

type ServerConfig struct {
	Mode        string `env:"MODE"         envDefault:"dev"`
	Port        int    `env:"PORT"         envDefault:"3000"`
	Scheme      string `env:"SCHEME"       envDefault:"http"`
	Domain      string `env:"DOMAIN"       envDefault:"localhost"`
	APIPrefix   string `env:"API_PREFIX"   envDefault:"/api/v1"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3001"`
}

// RegistryConfig selects the Token Registry backend: memory, redis or postgres.
type RegistryConfig struct {
	Backend string `env:"BACKEND" envDefault:"memory"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Database string `env:"DATABASE" envDefault:"push_notifications"`
}

// PushConfig selects the push sender: simulated or relay.
type PushConfig struct {
	Mode string `env:"MODE" envDefault:"simulated"`
}

type JaegerConfig struct {
	Enabled  bool                 `env:"ENABLED" envDefault:"false"`
	Sampler  JaegerSamplerConfig  `envPrefix:"SAMPLER_"`
	Reporter JaegerReporterConfig `envPrefix:"REPORTER_"`
}

type JaegerSamplerConfig struct {
	Type  string  `env:"TYPE"  envDefault:"const"`
	Param float64 `env:"PARAM" envDefault:"1"`
}

type JaegerReporterConfig struct {
	LogSpans           bool   `env:"LOG_SPANS"             envDefault:"false"`
	LocalAgentHostPort string `env:"LOCAL_AGENT_HOST_PORT" envDefault:"localhost:6831"`
}

// AgentConfig configures the client-side demo in cmd/agent.
type AgentConfig struct {
	APIURL      string `env:"API_URL"      envDefault:"http://localhost:3000/api/v1"`
	StoragePath string `env:"STORAGE_PATH" envDefault:"pushNotificationsDB.sqlite"`
	UserID      string `env:"USER_ID"      envDefault:"user-a"`
	AccountID   string `env:"ACCOUNT_ID"   envDefault:"account-x"`
	PushToken   string `env:"PUSH_TOKEN"`
}

// IsProduction reports whether internal error details must be hidden from clients.
func (c Config) IsProduction() bool {
	return c.Server.Mode == "prod"
}

// MustLoad reads an optional dotenv file and then the process environment.
func MustLoad(path string) Config {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		zap.L().Warn("failed to load env file", zap.String("path", path), zap.Error(err))
	}

	conf, err := Load()
	if err != nil {
		panic(err)
	}
	return conf
}

func Load() (Config, error) {
	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}
