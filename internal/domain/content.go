package domain

import "time"

// ContentEntry is one free-text slot. Keys are dotted and namespaced
// (contact.email, findUs.hours.fr); bilingual entries encode the locale in
// a .fr/.en key suffix, locale-invariant entries carry no suffix.
type ContentEntry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Locale is the closed set the public surface accepts.
type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleEN Locale = "en"
)

func ParseLocale(s string) (Locale, bool) {
	switch Locale(s) {
	case LocaleFR:
		return LocaleFR, true
	case LocaleEN:
		return LocaleEN, true
	}
	return "", false
}
