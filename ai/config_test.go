package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, "https://api.openai.com/v1", cfg.Host)
		assert.Equal(t, "gpt-4o", cfg.Model)
		assert.Equal(t, 4000, cfg.MaxTokens)
		assert.Equal(t, 0.3, cfg.Temperature)
	})

	t.Run("options override defaults", func(t *testing.T) {
		cfg := NewConfig(
			WithHost("http://localhost:11434/v1"),
			WithModel("qwen2.5:3b"),
			WithToken("none"),
			WithMaxTokens(2000),
			WithTemperature(0),
		)
		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
		assert.Equal(t, "qwen2.5:3b", cfg.Model)
		assert.Equal(t, "none", cfg.Token)
		assert.Equal(t, 2000, cfg.MaxTokens)
		assert.Zero(t, cfg.Temperature)
	})
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{name: "bare host", host: "http://localhost:11434", want: "http://localhost:11434/v1"},
		{name: "trailing slash", host: "http://localhost:11434/", want: "http://localhost:11434/v1"},
		{name: "already normalized", host: "http://localhost:11434/v1", want: "http://localhost:11434/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithHost(tt.host))
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.Host)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, NewConfig().Validate())
	})

	t.Run("missing host", func(t *testing.T) {
		assert.Error(t, NewConfig(WithHost("")).Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		assert.Error(t, NewConfig(WithModel("")).Validate())
	})

	t.Run("non-positive max tokens", func(t *testing.T) {
		assert.Error(t, NewConfig(WithMaxTokens(0)).Validate())
	})

	t.Run("temperature out of range", func(t *testing.T) {
		assert.Error(t, NewConfig(WithTemperature(2.5)).Validate())
		assert.Error(t, NewConfig(WithTemperature(-0.1)).Validate())
	})
}
