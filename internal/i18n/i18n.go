package i18n

import "strings"

// Supported locale codes. The product serves exactly these two languages.
const (
	LocaleTurkish = "tr"
	LocaleEnglish = "en"

	// DefaultLocale is used whenever a caller omits or mangles the locale.
	DefaultLocale = LocaleTurkish
)

// Locales returns the supported locale codes in preference order.
func Locales() []string {
	return []string{LocaleTurkish, LocaleEnglish}
}

// IsSupported reports whether the code names a locale the platform serves.
// Unlike Normalize it does not substitute the default for unknown codes.
func IsSupported(code string) bool {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case LocaleTurkish, LocaleEnglish:
		return true
	}
	return false
}

// Normalize trims and lowercases a locale code, substituting the default
// for empty or unknown values.
func Normalize(code string) string {
	trimmed := strings.ToLower(strings.TrimSpace(code))
	switch trimmed {
	case LocaleTurkish, LocaleEnglish:
		return trimmed
	}
	return DefaultLocale
}

// Other returns the counterpart locale, used for cross-locale slug lookups.
func Other(code string) string {
	if Normalize(code) == LocaleTurkish {
		return LocaleEnglish
	}
	return LocaleTurkish
}

// Text holds the Turkish and English variants of a localized field. It is
// persisted as a JSONB pair and rendered nested in public responses.
type Text struct {
	TR string `json:"tr"`
	EN string `json:"en"`
}

// NewText builds a pair from explicit values.
func NewText(tr, en string) Text {
	return Text{TR: tr, EN: en}
}

// In returns the value for the requested locale, falling back to the other
// locale when the requested one is empty.
func (t Text) In(locale string) string {
	if Normalize(locale) == LocaleEnglish {
		if t.EN != "" {
			return t.EN
		}
		return t.TR
	}
	if t.TR != "" {
		return t.TR
	}
	return t.EN
}

// Get returns the value for the requested locale without fallback.
func (t Text) Get(locale string) string {
	if Normalize(locale) == LocaleEnglish {
		return t.EN
	}
	return t.TR
}

// Complete reports whether both locales carry non-empty values. Publishing
// requires complete pairs for mandatory fields.
func (t Text) Complete() bool {
	return strings.TrimSpace(t.TR) != "" && strings.TrimSpace(t.EN) != ""
}

// Empty reports whether neither locale carries a value.
func (t Text) Empty() bool {
	return strings.TrimSpace(t.TR) == "" && strings.TrimSpace(t.EN) == ""
}

// StringList holds per-locale ordered lists, used for tags and feature lists.
type StringList struct {
	TR []string `json:"tr"`
	EN []string `json:"en"`
}

// In returns the list for the requested locale. The result is never nil so
// public payloads always render an array.
func (l StringList) In(locale string) []string {
	var values []string
	if Normalize(locale) == LocaleEnglish {
		values = l.EN
	} else {
		values = l.TR
	}
	if values == nil {
		return []string{}
	}
	return values
}

// Clone returns a deep copy so repository snapshots cannot alias caller state.
func (l StringList) Clone() StringList {
	out := StringList{}
	if l.TR != nil {
		out.TR = append([]string(nil), l.TR...)
	}
	if l.EN != nil {
		out.EN = append([]string(nil), l.EN...)
	}
	return out
}
