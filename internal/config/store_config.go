package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	databaseURLVar      = "DATABASE_URL"
	dbConnectTimeoutVar = "DB_CONNECT_TIMEOUT"
)

type StoreConfig interface {
	// GetDatabaseURL returns the Postgres DSN. Empty selects the in-memory store.
	GetDatabaseURL() string
	GetDBConnectTimeout() time.Duration
}

type Store struct {
	v *viper.Viper
}

var _ StoreConfig = Store{}

func (s Store) GetDatabaseURL() string {
	return s.v.GetString(databaseURLVar)
}

func (s Store) GetDBConnectTimeout() time.Duration {
	return s.v.GetDuration(dbConnectTimeoutVar)
}
