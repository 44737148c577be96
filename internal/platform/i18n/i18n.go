// Package i18n owns the document locale.
//
// The application ships a single locale. The tag is parsed once from its
// canonical form so every surface emits the same BCP 47 string.
package i18n

import "golang.org/x/text/language"

const documentLocale = "fr"

var defaultTag = language.MustParse(documentLocale)

// DefaultTag returns the locale every document is rendered in.
func DefaultTag() language.Tag {
	return defaultTag
}

// Lang returns the value of the html lang attribute.
func Lang() string {
	return defaultTag.String()
}
