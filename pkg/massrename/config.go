package massrename

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/massrename/pkg/listbox"
	"github.com/BrandonKowalski/massrename/pkg/massrename/constants"
	"github.com/BrandonKowalski/massrename/pkg/widget"
)

// Config is the contents of massrename.toml.
type Config struct {
	Locale       string      `toml:"locale"`
	LogLevel     string      `toml:"log_level"`
	LogPath      string      `toml:"log_path"`
	FontPath     string      `toml:"font_path"`
	FontSize     int         `toml:"font_size"`
	WindowWidth  int32       `toml:"window_width"`
	WindowHeight int32       `toml:"window_height"`
	Style        StyleConfig `toml:"style"`

	// Ignored lists keys in the file that matched no setting.
	Ignored []string `toml:"-"`
}

// StyleConfig selects a list style preset and overrides parts of it.
// Colours are hex strings such as "#308ec9"; empty strings keep the preset.
type StyleConfig struct {
	Preset             string   `toml:"preset"`
	Striped            *bool    `toml:"striped"`
	Background         string   `toml:"background"`
	StripeBackground   string   `toml:"stripe_background"`
	SelectedBackground string   `toml:"selected_background"`
	TextColor          string   `toml:"text_color"`
	SelectedTextColor  string   `toml:"selected_text_color"`
	BorderColor        string   `toml:"border_color"`
	BorderRadius       *float32 `toml:"border_radius"`
	BorderWidth        *float32 `toml:"border_width"`
}

// Style presets.
const (
	PresetLight = "light"
	PresetDark  = "dark"
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		LogLevel:     constants.DefaultLogLevel,
		LogPath:      constants.DefaultLogPath,
		FontSize:     constants.DefaultFontSize,
		WindowWidth:  constants.DefaultWindowWidth,
		WindowHeight: constants.DefaultWindowHeight,
		Style:        StyleConfig{Preset: PresetLight},
	}
}

// LoadConfig reads a TOML file over the defaults. Keys the file sets
// replace the default; everything else keeps it. Unknown keys are not an
// error and are reported in Config.Ignored, since the log path may itself
// come from the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	for _, k := range md.Undecoded() {
		cfg.Ignored = append(cfg.Ignored, k.String())
	}

	return cfg, cfg.Validate()
}

// LoadConfigIfExists is LoadConfig that returns the defaults when the file
// does not exist.
func LoadConfigIfExists(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// ApplyDevEnvironment lets WINDOW_WIDTH and WINDOW_HEIGHT override the
// window size when ENVIRONMENT=DEV. It returns the variables that were set
// but did not hold a positive integer; those leave the size unchanged.
func (c *Config) ApplyDevEnvironment() (invalid []string) {
	if !constants.IsDevMode() {
		return nil
	}

	for _, v := range []struct {
		name string
		size *int32
	}{
		{constants.WindowWidthEnvVar, &c.WindowWidth},
		{constants.WindowHeightEnvVar, &c.WindowHeight},
	} {
		if n, ok := constants.EnvInt32(v.name); ok {
			*v.size = n
		} else if os.Getenv(v.name) != "" {
			invalid = append(invalid, v.name)
		}
	}
	return invalid
}

// Validate reports the first value outside its accepted range.
func (c Config) Validate() error {
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Locale, err)
		}
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: font size %d", ErrInvalidConfig, c.FontSize)
	}
	if _, err := c.Style.Theme(); err != nil {
		return err
	}
	return nil
}

// Resolve builds the list style: the preset first, then each override.
func (s StyleConfig) Resolve() (listbox.Style, error) {
	theme, err := s.Theme()
	if err != nil {
		return listbox.Style{}, err
	}
	return theme.List, nil
}

// Theme builds the window theme for the preset, with the list overrides
// applied.
func (s StyleConfig) Theme() (Theme, error) {
	striped := true
	if s.Striped != nil {
		striped = *s.Striped
	}

	var theme Theme
	switch strings.ToLower(strings.TrimSpace(s.Preset)) {
	case "", PresetLight:
		theme = LightTheme(striped)
	case PresetDark:
		theme = DarkTheme(striped)
	default:
		return Theme{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidStyle, s.Preset)
	}

	style := &theme.List
	overrides := []struct {
		name  string
		value string
		apply func(widget.Color)
	}{
		{"background", s.Background, func(c widget.Color) { style.Background = c }},
		{"selected_background", s.SelectedBackground, func(c widget.Color) { style.SelectedBackground = c }},
		{"text_color", s.TextColor, func(c widget.Color) { style.TextColor = c }},
		{"border_color", s.BorderColor, func(c widget.Color) { style.BorderColor = c }},
		{"selected_text_color", s.SelectedTextColor, func(c widget.Color) { style.SelectedTextColor = &c }},
		{"stripe_background", s.StripeBackground, func(c widget.Color) {
			if striped {
				style.StripeBackground = &c
			}
		}},
	}

	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		c, err := widget.ParseColor(o.value)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: %s: %v", ErrInvalidStyle, o.name, err)
		}
		o.apply(c)
	}

	if s.BorderRadius != nil {
		if *s.BorderRadius < 0 {
			return Theme{}, fmt.Errorf("%w: border_radius %g is negative", ErrInvalidStyle, *s.BorderRadius)
		}
		style.BorderRadius = *s.BorderRadius
	}
	if s.BorderWidth != nil {
		if *s.BorderWidth < 0 {
			return Theme{}, fmt.Errorf("%w: border_width %g is negative", ErrInvalidStyle, *s.BorderWidth)
		}
		style.BorderWidth = *s.BorderWidth
	}

	return theme, nil
}
