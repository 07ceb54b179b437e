// Package locale maps ISO 639 language codes to English display names.
//
// Names are for presentation only; nothing in parsing or making a comment
// block depends on them.
package locale

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var namer = sync.OnceValue(func() display.Namer {
	return display.English.Languages()
})

// LanguageName returns the English name for an ISO 639 code, or an empty
// string if the code is unknown. Bibliographic codes such as "ger" are
// accepted and codes are matched case-insensitively.
func LanguageName(code string) string {
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return namer().Name(tag)
}

// LanguageNameWithFallback returns the display name for code, or code
// itself if it is unknown.
func LanguageNameWithFallback(code string) string {
	if name := LanguageName(code); name != "" {
		return name
	}
	return code
}

// Init builds the name table ahead of concurrent use.
func Init() {
	namer()
}
