package locale

import "golang.org/x/text/language"

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Negotiate picks the display locale for a request. An explicit query value wins,
// then the locale cookie, then the Accept-Language header.
func Negotiate(query, cookie, acceptLanguage string) Locale {
	if l, ok := Parse(query); ok {
		return l
	}
	if l, ok := Parse(cookie); ok {
		return l
	}
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return Supported[idx]
}
