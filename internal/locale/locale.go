// Package locale resolves bilingual (English/Arabic) content.
package locale

import "strings"

// Locale is one of the two supported display languages.
type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"

	// Default is used when nothing usable was requested.
	Default = English
)

// Supported lists the locales in preference order.
var Supported = []Locale{English, Arabic}

// Parse accepts "en", "ar" and region-qualified forms such as "ar-SA".
func Parse(raw string) (Locale, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexAny(raw, "-_"); i > 0 {
		raw = raw[:i]
	}
	switch Locale(raw) {
	case English:
		return English, true
	case Arabic:
		return Arabic, true
	}
	return "", false
}

// Valid reports whether l is a supported locale.
func (l Locale) Valid() bool {
	return l == English || l == Arabic
}

// Other returns the fallback locale.
func (l Locale) Other() Locale {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Dir returns the text direction for HTML dir attributes.
func (l Locale) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

func (l Locale) String() string {
	return string(l)
}
