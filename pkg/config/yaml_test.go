package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdhtml/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
		assert.Nil(t, clone.Indent)
	})

	t.Run("deep copies pointer fields", func(t *testing.T) {
		original := config.NewConfig()
		original.Stdout = true

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original.Indent, clone.Indent)
		assert.NotSame(t, original.FinalNewline, clone.FinalNewline)
		assert.True(t, clone.Stdout)

		*clone.Indent = 2
		assert.Equal(t, config.DefaultIndent, *original.Indent)
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("all keys", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte("indent: 0\nfinal_newline: true\nlog_level: debug\n"))
		require.NoError(t, err)

		require.NotNil(t, cfg.Indent)
		assert.Equal(t, 0, *cfg.Indent)
		assert.True(t, cfg.WantFinalNewline())
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("unset keys stay nil", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte("log_level: warn\n"))
		require.NoError(t, err)

		assert.Nil(t, cfg.Indent)
		assert.Nil(t, cfg.FinalNewline)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML(nil)
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("indent: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})

	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("indent: four\n"))
		require.Error(t, err)
	})
}

func TestToYAML(t *testing.T) {
	t.Parallel()

	t.Run("round trips", func(t *testing.T) {
		t.Parallel()

		original := config.NewConfig()
		original.Indent = config.IntPtr(2)
		original.Stdout = true

		data, err := original.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "indent: 2")
		assert.NotContains(t, string(data), "stdout")

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, 2, parsed.IndentWidth())
		assert.Equal(t, original.LogLevel, parsed.LogLevel)
		assert.False(t, parsed.Stdout)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		var c *config.Config
		data, err := c.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("with header", func(t *testing.T) {
		t.Parallel()

		data, err := config.NewConfig().ToYAMLWithHeader("# header")
		require.NoError(t, err)
		assert.Regexp(t, `^# header\n\nindent: 4\n`, string(data))
	})
}

func TestUnknownKeys(t *testing.T) {
	t.Parallel()

	keys, err := config.UnknownKeys([]byte("indent: 2\nflavor: gfm\nbackups: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"backups", "flavor"}, keys)

	keys, err = config.UnknownKeys([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, keys)
}
