package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "nocturne", configBaseName)
	assert.Equal(t, "nocturne.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "dialect", dialectFlagName)
	assert.Equal(t, "to", toFlagName)
	assert.Equal(t, "mappings.dialect", mappingsDialectKey)
	assert.Equal(t, "export.dialect", exportDialectKey)
	assert.Equal(t, "list.format", listFormatKey)
	assert.Equal(t, "NOCTURNE", envPrefix)
	assert.Equal(t, ".nocturne.log", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, defaultMappingsDialect, viper.GetString(mappingsDialectKey))
	assert.Equal(t, "auto", viper.GetString(exportDialectKey), "output dialect follows the -o extension by default")
	assert.Equal(t, defaultListFormat, viper.GetString(listFormatKey))
	assert.Equal(t, defaultListParallel, viper.GetInt(listParallelKey))
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("NOCTURNE_EXPORT_DIALECT", "srg")

	assert.Equal(t, "srg", viper.GetString(exportDialectKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.in, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "nocturne.log")

	configureLogger(logPath, true)
	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))

	configureLogger(logPath, false)
	assert.False(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelInfo))
}
