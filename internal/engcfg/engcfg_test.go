package engcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()
	c := Defaults()
	assert.True(t, c.StrictValidation)
	assert.Equal(t, DefaultScryptWorkFactor, c.ScryptWorkFactor)
	require.NotNil(t, c.Logger)
}

func TestLogFallsBackToNull(t *testing.T) {
	t.Parallel()
	var c *Config
	require.NotNil(t, c.Log(), "nil Config.Log() returned nil")

	c = &Config{}
	require.NotNil(t, c.Log(), "zero-value Config.Log() returned nil")
}
