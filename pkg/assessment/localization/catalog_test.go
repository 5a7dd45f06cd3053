package localization

import "testing"

func TestResolve(t *testing.T) {
	catalog := NewCatalog(map[string]map[string]string{
		LANG_EN: {"greeting": "Hello"},
		LANG_FR: {"greeting": "Bonjour"},
	})

	t.Run("resolves per language", func(t *testing.T) {
		if got := catalog.Resolve(LANG_EN, "greeting"); got != "Hello" {
			t.Errorf("unexpected value: %s", got)
		}
		if got := catalog.Resolve(LANG_FR, "greeting"); got != "Bonjour" {
			t.Errorf("unexpected value: %s", got)
		}
	})

	t.Run("missing key returns the key", func(t *testing.T) {
		if got := catalog.Resolve(LANG_EN, "missing.key"); got != "missing.key" {
			t.Errorf("unexpected fallback: %s", got)
		}
	})

	t.Run("unknown language returns the key", func(t *testing.T) {
		if got := catalog.Resolve("de", "greeting"); got != "greeting" {
			t.Errorf("unexpected fallback: %s", got)
		}
	})
}

func TestDefaultCatalogCoversBothLanguages(t *testing.T) {
	catalog := Default()

	for key := range englishMessages {
		if !catalog.Has(LANG_FR, key) {
			t.Errorf("key %s has no French translation", key)
		}
	}
	for key := range frenchMessages {
		if !catalog.Has(LANG_EN, key) {
			t.Errorf("key %s has no English translation", key)
		}
	}
}
