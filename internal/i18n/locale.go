package i18n

import "strings"

const (
	LocaleEN = "en"
	LocaleRO = "ro"

	// DefaultLocale is the fallback for anything outside the supported
	// set, mirroring the storefront's fallback language.
	DefaultLocale = LocaleEN
)

var supported = map[string]bool{
	LocaleEN: true,
	LocaleRO: true,
}

// Normalize maps a raw locale tag ("en-US", "RO-ro", "fr-FR", "") to a
// supported 2-letter language code. Total: never fails, unknown input
// collapses to the default.
func Normalize(tag string) string {
	if tag == "" {
		return DefaultLocale
	}

	lang := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
	if supported[lang] {
		return lang
	}
	return DefaultLocale
}

// Supported reports whether lang is one of the storefront's languages.
func Supported(lang string) bool {
	return supported[lang]
}
