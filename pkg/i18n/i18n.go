// Package i18n defines the translation contract the renderer depends on and a
// YAML-backed store implementing it. The store is optional: any Translator can
// be plugged in, and every lookup in the renderer has a documented fallback so
// a missing translator never fails a render.
package i18n

import (
	"errors"
	"strings"
)

// ErrMissingTranslation is returned when a key has no value for the requested
// locale or any of its fallbacks.
var ErrMissingTranslation = errors.New("i18n: missing translation")

// Translator resolves a key for a locale. Implementations should return
// ErrMissingTranslation (wrapped or bare) when the key is unknown so callers
// can fall through to their defaults.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// Lookup tries each key in order against the translator and returns the first
// non-empty hit, falling back to the supplied default. A nil translator
// resolves straight to the fallback.
func Lookup(t Translator, locale string, keys []string, fallback string) string {
	if t == nil {
		return fallback
	}
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		msg, err := t.Translate(locale, key)
		if err != nil {
			continue
		}
		if msg = strings.TrimSpace(msg); msg != "" {
			return msg
		}
	}
	return fallback
}
