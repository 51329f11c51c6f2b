package render

import (
	"errors"
	"strings"
)

// ErrMissingTranslator reports that translation was requested without a
// configured translator.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves stable label keys (for example "sheet.spell.level")
// into localized display strings. Hosts typically back this with their own
// localization subsystem.
type Translator interface {
	Translate(locale, key string) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string) (string, error)

// Translate delegates to the underlying function.
func (fn TranslatorFunc) Translate(locale, key string) (string, error) {
	return fn(locale, key)
}

// MissingTranslationHandler decides what to display when a key cannot be
// translated. It receives the fallback label so hosts can log the miss and
// still keep the sheet readable.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

// Translate resolves a label key with graceful degradation: a nil translator
// or failed lookup falls back to the supplied label, then to the key itself.
// Rendering never aborts over a missing translation.
func Translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, fallback, ErrMissingTranslator)
		}
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, fallback, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
