package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logdeck/internal/app/errors"
)

// chdirTemp switches to a fresh temp directory for the duration of the test
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() { _ = os.Chdir(oldDir) })

	return dir
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, 1000, cfg.Store.Capacity)
	assert.Equal(t, 2*time.Second, cfg.Stream.Interval)
	assert.False(t, cfg.Stream.Autostart)
	assert.Equal(t, ThemeDark, cfg.UI.Theme)
	assert.True(t, cfg.UI.Seed)
	assert.Equal(t, ExportJSON, cfg.Export.Format)
	assert.NoError(t, cfg.Validate())
}

func Test_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		error   error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "no config file found - uses default",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
		{
			name: "valid config file",
			content: `logging:
  level: debug
  format: json
store:
  capacity: 50
stream:
  interval: 500ms
  autostart: true
ui:
  theme: Light
  seed: false
export:
  format: yaml
  path: out
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, 50, cfg.Store.Capacity)
				assert.Equal(t, 500*time.Millisecond, cfg.Stream.Interval)
				assert.True(t, cfg.Stream.Autostart)
				assert.Equal(t, ThemeLight, cfg.UI.Theme)
				assert.False(t, cfg.UI.Seed)
				assert.Equal(t, ExportYAML, cfg.Export.Format)
				assert.Equal(t, "out", cfg.Export.Path)
			},
		},
		{
			name:    "malformed yaml",
			content: "store: [capacity\n",
			error:   errors.ErrFailedToParseConfig,
		},
		{
			name:    "zero capacity",
			content: "store:\n  capacity: 0\n",
			error:   errors.ErrInvalidStoreCapacity,
		},
		{
			name:    "unknown theme",
			content: "ui:\n  theme: neon\n",
			error:   errors.ErrInvalidTheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := chdirTemp(t)

			if tt.content != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(tt.content), 0600))
			}

			cfg, err := Load()

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func Test_Load_EnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LOGDECK_STORE_CAPACITY", "25")
	t.Setenv("LOGDECK_UI_THEME", "light")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Store.Capacity)
	assert.Equal(t, ThemeLight, cfg.UI.Theme)
}

func Test_Load_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOGDECK_STREAM_INTERVAL=3s\n"), 0600))

	t.Cleanup(func() { _ = os.Unsetenv("LOGDECK_STREAM_INTERVAL") })

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Stream.Interval)
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *Config)
		error  error
	}{
		{name: "defaults are valid", modify: func(cfg *Config) {}},
		{name: "negative capacity", modify: func(cfg *Config) { cfg.Store.Capacity = -1 }, error: errors.ErrInvalidStoreCapacity},
		{name: "zero bus buffer", modify: func(cfg *Config) { cfg.Bus.Buffer = 0 }, error: errors.ErrInvalidBusBuffer},
		{name: "zero interval", modify: func(cfg *Config) { cfg.Stream.Interval = 0 }, error: errors.ErrInvalidStreamInterval},
		{name: "empty theme", modify: func(cfg *Config) { cfg.UI.Theme = "" }, error: errors.ErrInvalidTheme},
		{name: "unknown export format", modify: func(cfg *Config) { cfg.Export.Format = "csv" }, error: errors.ErrUnknownExportFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()

			if tt.error == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.error)
		})
	}
}
