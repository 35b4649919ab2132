package massrename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/massrename/pkg/listbox"
	"github.com/BrandonKowalski/massrename/pkg/widget"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "massrename.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	style, err := cfg.Style.Resolve()
	require.NoError(t, err)
	assert.Equal(t, listbox.Light(true), style)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
locale = "de"
log_level = "debug"
window_width = 640
unknown_key = true

[style]
preset = "dark"
striped = false
selected_background = "#ff0000"
selected_text_color = "#000"
border_width = 2.0
border_radius = 4.5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int32(640), cfg.WindowWidth)
	assert.Equal(t, DefaultConfig().WindowHeight, cfg.WindowHeight, "unset keys keep their default")
	assert.Equal(t, []string{"unknown_key"}, cfg.Ignored)

	style, err := cfg.Style.Resolve()
	require.NoError(t, err)

	want := listbox.Dark(false)
	want.SelectedBackground = widget.HexColor(0xFF0000)
	want.SelectedTextColor = &widget.Black
	want.BorderWidth = 2
	want.BorderRadius = 4.5
	assert.Equal(t, want, style)

	theme, err := cfg.Style.Theme()
	require.NoError(t, err)
	assert.Equal(t, DarkTheme(false).Background, theme.Background)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"UnknownPreset", "[style]\npreset = \"neon\"\n", ErrInvalidStyle},
		{"BadColor", "[style]\nbackground = \"blue\"\n", ErrInvalidStyle},
		{"NegativeBorder", "[style]\nborder_width = -1.0\n", ErrInvalidStyle},
		{"ZeroWindow", "window_width = 0\n", ErrInvalidConfig},
		{"BadLocale", "locale = \"not a locale\"\n", ErrInvalidConfig},
		{"ZeroFont", "font_size = 0\n", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("Malformed", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "locale = \n"))
		assert.Error(t, err)
	})
}

func TestLoadConfigIfExists(t *testing.T) {
	cfg, err := LoadConfigIfExists(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfigIfExists(writeConfig(t, "font_size = 18\n"))
	require.NoError(t, err)
	assert.Equal(t, 18, cfg.FontSize)
}

func TestStripeOverride(t *testing.T) {
	on := true
	style, err := StyleConfig{Striped: &on, StripeBackground: "#eeeeee"}.Resolve()
	require.NoError(t, err)
	require.NotNil(t, style.StripeBackground)
	assert.Equal(t, widget.HexColor(0xEEEEEE), *style.StripeBackground)

	off := false
	style, err = StyleConfig{Striped: &off, StripeBackground: "#eeeeee"}.Resolve()
	require.NoError(t, err)
	assert.Nil(t, style.StripeBackground, "disabled stripes ignore the colour")
}

func TestApplyDevEnvironment(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		width, height int32
		invalid       []string
	}{
		{
			name:   "NotDevMode",
			env:    map[string]string{"ENVIRONMENT": "", "WINDOW_WIDTH": "640", "WINDOW_HEIGHT": "480"},
			width:  1024,
			height: 768,
		},
		{
			name:   "DevMode",
			env:    map[string]string{"ENVIRONMENT": "DEV", "WINDOW_WIDTH": "640", "WINDOW_HEIGHT": "480"},
			width:  640,
			height: 480,
		},
		{
			name:    "DevModeBadWidth",
			env:     map[string]string{"ENVIRONMENT": "DEV", "WINDOW_WIDTH": "wide", "WINDOW_HEIGHT": ""},
			width:   1024,
			height:  768,
			invalid: []string{"WINDOW_WIDTH"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := DefaultConfig()
			assert.Equal(t, tt.invalid, cfg.ApplyDevEnvironment())
			assert.Equal(t, tt.width, cfg.WindowWidth)
			assert.Equal(t, tt.height, cfg.WindowHeight)
		})
	}
}
