package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env  string `env:"ENV" env-default:"local"`
	HTTP HTTPConfig
	Auth AuthConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	AllowOrigins    []string      `env:"HTTP_ALLOW_ORIGINS" env-default:"*"`
}

type AuthConfig struct {
	Username      string `env:"AUTH_USERNAME" env-default:"admin"`
	Password      string `env:"AUTH_PASSWORD" env-default:"password"`
	JWTIssuer     string `env:"AUTH_JWT_ISSUER" env-default:"taskdeck"`
	JWTSigningKey string `env:"AUTH_JWT_SIGNING_KEY" env-required:"true"`
}
