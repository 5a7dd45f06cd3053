package localization

import (
	"log/slog"
)

const (
	LANG_EN = "en"
	LANG_FR = "fr"
)

// Key of the generic flag message used when a question has no custom flag
// message configured. The translation contains one %s verb for the question
// ID.
const KEY_GENERIC_FLAG = "flags.generic"

func IsSupportedLanguage(lang string) bool {
	return lang == LANG_EN || lang == LANG_FR
}

// Catalog holds all bilingual text keyed by stable IDs. Question prompts,
// option labels, area names and flag messages all resolve through it so
// that the catalog data itself stays language free.
type Catalog struct {
	entries map[string]map[string]string
}

func NewCatalog(entries map[string]map[string]string) *Catalog {
	return &Catalog{entries: entries}
}

// Resolve looks up the text for the given language and key. A missing key
// is logged and the key itself is returned as a safe fallback; Resolve
// never fails.
func (c *Catalog) Resolve(lang string, key string) string {
	translations, ok := c.entries[lang]
	if !ok {
		slog.Warn("no translations for language", slog.String("lang", lang), slog.String("key", key))
		return key
	}
	text, ok := translations[key]
	if !ok {
		slog.Warn("missing translation key", slog.String("lang", lang), slog.String("key", key))
		return key
	}
	return text
}

// Has reports whether the key resolves for the given language without
// triggering the fallback.
func (c *Catalog) Has(lang string, key string) bool {
	translations, ok := c.entries[lang]
	if !ok {
		return false
	}
	_, ok = translations[key]
	return ok
}
