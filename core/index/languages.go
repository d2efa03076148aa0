package index

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// languages with a built-in stop words list
var stopLanguages = map[string]bool{
	"arabic": true, "armenian": true, "basque": true, "brazilian": true, "bulgarian": true,
	"catalan": true, "czech": true, "danish": true, "dutch": true, "english": true,
	"finnish": true, "french": true, "galician": true, "german": true, "greek": true,
	"hindi": true, "hungarian": true, "indonesian": true, "italian": true, "norwegian": true,
	"persian": true, "portuguese": true, "romanian": true, "russian": true, "spanish": true,
	"swedish": true, "turkish": true,
}

// languages with a stemmer, mapped to the stemmer name. Light stemmers are
// used where the engine provides one.
var stemmerLanguages = map[string]string{
	"armenian":   "armenian",
	"basque":     "basque",
	"catalan":    "catalan",
	"danish":     "danish",
	"dutch":      "dutch",
	"english":    "light_english",
	"finnish":    "light_finnish",
	"french":     "light_french",
	"german":     "light_german",
	"hungarian":  "light_hungarian",
	"italian":    "light_italian",
	"norwegian":  "light_norwegian",
	"portuguese": "light_portuguese",
	"romanian":   "romanian",
	"russian":    "light_russian",
	"spanish":    "light_spanish",
	"swedish":    "light_swedish",
	"turkish":    "turkish",
}

// Language describes the language of a store locale.
type Language struct {
	// Code is the ISO 639 code, e.g. "fr".
	Code string
	// Name is the lower cased English name, e.g. "french".
	Name string
}

// LanguageOf derives the language of a locale such as "fr_FR" or "pt-BR".
func LanguageOf(locale string) Language {
	parts := strings.FieldsFunc(locale, func(r rune) bool {
		return r == '_' || r == '-'
	})
	if len(parts) == 0 {
		return Language{}
	}
	code := strings.ToLower(parts[0])

	var name string
	if tag, err := language.Parse(code); err == nil {
		name = strings.ToLower(display.English.Languages().Name(tag))
	}
	return Language{Code: code, Name: name}
}

// Stemmer returns the stemmer name for the language, if any.
func (l Language) Stemmer() (string, bool) {
	s, ok := stemmerLanguages[l.Name]
	return s, ok
}

// HasStopwords reports whether the engine ships a stop words list for the
// language.
func (l Language) HasStopwords() bool {
	return stopLanguages[l.Name]
}
