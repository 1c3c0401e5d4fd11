package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port    int           `env:"TEST_PORT" envDefault:"8080"`
	Name    string        `env:"TEST_NAME" envDefault:"coffee"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"5s"`
	Hosts   []string      `env:"TEST_HOSTS" envDefault:"a,b" envSeparator:","`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "coffee", cfg.Name)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"a", "b"}, cfg.Hosts)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_PORT", "9999")
	t.Setenv("TEST_HOSTS", "x,y,z")

	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, []string{"x", "y", "z"}, cfg.Hosts)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("TEST_PORT", "not-a-number")

	var cfg testConfig
	err := Load(&cfg)
	assert.Error(t, err)
}
