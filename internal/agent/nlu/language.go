package nlu

import (
	"strings"
	"unicode"
)

const (
	LangEnglish = "en"
	LangHindi   = "hi"
	LangBengali = "bn"
)

// DefaultLanguage is used for unsupported tags.
const DefaultLanguage = LangEnglish

func Supported(lang string) bool {
	switch lang {
	case LangEnglish, LangHindi, LangBengali:
		return true
	}
	return false
}

// ResolveLanguage picks the template language for a message. An explicit tag wins
// ("en-US" and "bn_IN" reduce to their base); an unsupported tag maps to English. Without
// a tag the script of the text decides.
func ResolveLanguage(tag, text string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag != "" {
		if i := strings.IndexAny(tag, "-_"); i > 0 {
			tag = tag[:i]
		}
		if Supported(tag) {
			return tag
		}
		return DefaultLanguage
	}
	return detectScript(text)
}

func detectScript(text string) string {
	var bengali, devanagari int
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Bengali, r):
			bengali++
		case unicode.Is(unicode.Devanagari, r):
			devanagari++
		}
	}
	switch {
	case bengali == 0 && devanagari == 0:
		return DefaultLanguage
	case bengali >= devanagari:
		return LangBengali
	default:
		return LangHindi
	}
}
