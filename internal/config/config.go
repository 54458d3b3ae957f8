package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const dotEnvFile = ".env"

type Config interface {
	EnvConfig
	CorsConfig
	SecurityConfig
	StoreConfig
	GithubConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	GetShutdownTimeout() time.Duration
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Security
	Store
	Github
}

// New loads an optional .env file and returns a Config backed by the process environment.
func New() Config {
	if _, err := os.Stat(dotEnvFile); err == nil {
		_ = godotenv.Load(dotEnvFile)
	}
	return NewFromViper(newViper())
}

// NewFromViper builds a Config over an existing viper instance. Defaults are applied to v.
func NewFromViper(v *viper.Viper) Config {
	setDefaults(v)
	return mainConfig{
		EnvVars:  EnvVars{v: v},
		Cors:     Cors{v: v},
		Security: Security{v: v},
		Store:    Store{v: v},
		Github:   Github{v: v},
	}
}

// Validate checks the settings the server cannot start without.
func Validate(c Config) error {
	if c.GetJWTSecret() == "" {
		return fmt.Errorf("[config Validate] %s must be set", jwtSecretVar)
	}
	if c.GetTokenTTL() <= 0 {
		return fmt.Errorf("[config Validate] %s must be positive", tokenTTLVar)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(portEnvVar, "5000")
	v.SetDefault(appNameVar, "Dev Profiles")
	v.SetDefault(envVar, "DEV")
	v.SetDefault(logLevelVar, "info")
	v.SetDefault(shutdownTimeoutVar, 5*time.Second)
	v.SetDefault(allowedOriginsVar, "*")
	v.SetDefault(tokenTTLVar, 10*time.Hour)
	v.SetDefault(bcryptCostVar, 10)
	v.SetDefault(dbConnectTimeoutVar, 30*time.Second)
	v.SetDefault(githubAPIURLVar, "https://api.github.com")
	v.SetDefault(githubRepoLimitVar, 5)
	v.SetDefault(githubTimeoutVar, 10*time.Second)
}
