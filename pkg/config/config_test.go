package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPortaValidaViaEnv(t *testing.T) {
	t.Setenv("DB_PORT", "6543")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoadPortaMalformadaCaiNoPadrao(t *testing.T) {
	t.Setenv("DB_PORT", "abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.DB.Port, "valor não numérico não pode virar porta 0")
}

func TestDSNCodificaCredenciais(t *testing.T) {
	db := DBConfig{
		Host: "localhost", Port: 5432,
		User: "agro", Password: "p@ss/word",
		DBName: "agrocampo", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%2Fword", "caracteres especiais da senha devem ser escapados")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionStringPrefereDatabaseURL(t *testing.T) {
	db := DBConfig{
		DatabaseURL: "postgresql://u:p@db.example.com:5432/prod?sslmode=require",
		Host:        "localhost", Port: 5432,
	}
	assert.Equal(t, db.DatabaseURL, db.ConnectionString())
}
