// Package i18n holds the localized string table used by the screens.
// Arabic is the default and fallback language; French and English are
// also bundled.
package i18n

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.Arabic, // first entry is the fallback
	language.French,
	language.English,
}

var matcher = language.NewMatcher(supported)

var bundles = map[language.Tag]map[string]string{
	language.Arabic:  ar,
	language.French:  fr,
	language.English: en,
}

// Translator resolves message keys for a fixed language.
type Translator struct {
	bundle   map[string]string
	fallback map[string]string
}

// New builds a Translator for the given BCP 47 language string ("ar",
// "fr-MA", ...). Unknown or empty languages resolve to Arabic.
func New(lang string) *Translator {
	_, idx := language.MatchStrings(matcher, lang)
	return &Translator{bundle: bundles[supported[idx]], fallback: ar}
}

// T returns the message for key, falling back to the Arabic bundle and
// finally to the key itself so a missing entry never renders as empty.
func (t *Translator) T(key string) string {
	if msg, ok := t.bundle[key]; ok {
		return msg
	}
	if msg, ok := t.fallback[key]; ok {
		return msg
	}
	return key
}
