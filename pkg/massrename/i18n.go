package massrename

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/massrename/internal/logging"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message IDs in the locale files.
const (
	msgWindowTitle    = "WindowTitle"
	msgEntryCount     = "EntryCount"
	msgEmptyHint      = "EmptyHint"
	msgHighlightLabel = "HighlightLabel"
)

// Localizer translates the user-visible strings. English is the fallback
// for languages without a locale file.
type Localizer struct {
	localizer *i18n.Localizer
}

// NewLocalizer loads the embedded locales and prefers langs in order.
// Each lang is a BCP 47 tag or an Accept-Language list.
func NewLocalizer(langs ...string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, NewInfrastructureError("load_locales", err)
	}
	for _, name := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
			return nil, NewInfrastructureError("load_locales", err)
		}
	}

	return &Localizer{localizer: i18n.NewLocalizer(bundle, langs...)}, nil
}

// LocaleFromEnv turns a POSIX locale such as "de_DE.UTF-8" into a language
// tag. It returns "" for the C and POSIX locales.
func LocaleFromEnv(value string) string {
	value, _, _ = strings.Cut(value, ".")
	value, _, _ = strings.Cut(value, "@")
	if value == "" || value == "C" || value == "POSIX" {
		return ""
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return ""
	}
	return tag.String()
}

func (l *Localizer) WindowTitle(version string) string {
	return l.localize(msgWindowTitle, nil, map[string]any{"Version": version})
}

// EntryCount is the list header, pluralised for n.
func (l *Localizer) EntryCount(n int) string {
	return l.localize(msgEntryCount, n, map[string]any{"Count": n})
}

// EmptyHint is shown in place of the header when the list is empty.
func (l *Localizer) EmptyHint() string {
	return l.localize(msgEmptyHint, nil, nil)
}

func (l *Localizer) HighlightLabel(value string) string {
	return l.localize(msgHighlightLabel, nil, map[string]any{"Value": value})
}

func (l *Localizer) localize(id string, count any, data map[string]any) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: data,
	})
	if err != nil {
		logging.GetLogger().Warn("Missing translation", "id", id, "error", err)
		return id
	}
	return s
}
