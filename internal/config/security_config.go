package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	jwtSecretVar  = "JWT_SECRET"
	tokenTTLVar   = "TOKEN_TTL"
	bcryptCostVar = "BCRYPT_COST"
)

type SecurityConfig interface {
	GetJWTSecret() string
	GetTokenTTL() time.Duration
	GetBcryptCost() int
}

type Security struct {
	v *viper.Viper
}

var _ SecurityConfig = Security{}

// GetJWTSecret returns the token signing secret. It must never be logged.
func (s Security) GetJWTSecret() string {
	return s.v.GetString(jwtSecretVar)
}

func (s Security) GetTokenTTL() time.Duration {
	return s.v.GetDuration(tokenTTLVar)
}

func (s Security) GetBcryptCost() int {
	return s.v.GetInt(bcryptCostVar)
}
