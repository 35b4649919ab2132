// Package constants defines shared constants and environment configuration
// used throughout massrename.
package constants

import (
	"os"
	"strconv"
)

// Version is the release shown in the window title.
const Version = "0.1.0"

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	FontPathEnvVar     = "MASSRENAME_FONT"
	LangEnvVar         = "LANG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Defaults applied when neither the config file nor a flag sets a value.
const (
	DefaultConfigFile          = "massrename.toml"
	DefaultLogPath             = "logs/massrename.log"
	DefaultLogLevel            = "info"
	DefaultLocale              = "en" // Used when neither the config nor LANG names a language
	DefaultWindowWidth  int32  = 1024
	DefaultWindowHeight int32  = 768
	DefaultFontSize            = 16
	DefaultIconSize     uint16 = 16
	HeaderFontSize             = 20
)

// EnvInt32 reads a positive integer from the environment. ok is false when
// the variable is unset or does not hold one.
func EnvInt32(name string) (value int32, ok bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n <= 0 {
		return 0, false
	}
	return int32(n), true
}
