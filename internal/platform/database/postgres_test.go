package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostgresConfig_Renderings(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "db",
		Port:     "5432",
		User:     "store",
		Password: "p@ss word",
		DBName:   "storefront",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=store password=p@ss word dbname=storefront sslmode=disable", cfg.DSN())
	assert.Equal(t, "postgres://store:p%40ss%20word@db:5432/storefront?sslmode=disable", cfg.DatabaseURL())
}
