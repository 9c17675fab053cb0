package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BMI_HISTORY_PATH", "")
	t.Setenv("BMI_STORE", "")
	t.Setenv("BMI_DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	require.Equal(t, "bmi_history.json", cfg.HistoryPath)
	require.Equal(t, "json", cfg.Store)
	require.Equal(t, "./data/bmi.db", cfg.DBPath)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BMI_HISTORY_PATH", "/tmp/h.json")
	t.Setenv("BMI_STORE", "sqlite")
	t.Setenv("BMI_DB_PATH", "/tmp/h.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	require.Equal(t, "/tmp/h.json", cfg.HistoryPath)
	require.Equal(t, "sqlite", cfg.Store)
	require.Equal(t, "/tmp/h.db", cfg.DBPath)
	require.Equal(t, "debug", cfg.LogLevel)
}
