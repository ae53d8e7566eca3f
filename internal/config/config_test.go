package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, 10, cfg.DailyMessageLimit)
	assert.Equal(t, "data", cfg.DataDir)
	assert.True(t, cfg.InitSlashCommands)
}

func TestOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("DAILY_MESSAGE_LIMIT", "3")
	t.Setenv("DATA_DIR", "/tmp/askbot-test")
	t.Setenv("INIT_SLASH_COMMANDS", "false")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DailyMessageLimit)
	assert.Equal(t, "/tmp/askbot-test", cfg.DataDir)
	assert.False(t, cfg.InitSlashCommands)
}
