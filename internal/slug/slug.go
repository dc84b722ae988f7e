package slug

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	goslug "github.com/goliatone/go-slug"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
)

// turkishFold maps Turkish letters onto their ASCII slug equivalents. The
// dotless/dotted i pairs cannot go through unicode.ToLower, which would emit
// a combining dot for U+0130.
var turkishFold = map[rune]string{
	'ç': "c", 'Ç': "c",
	'ğ': "g", 'Ğ': "g",
	'ı': "i", 'İ': "i",
	'ö': "o", 'Ö': "o",
	'ş': "s", 'Ş': "s",
	'ü': "u", 'Ü': "u",
}

// latinFold maps common accented Latin letters onto ASCII for non-Turkish
// titles (guest posts, loanwords).
var latinFold = map[rune]string{
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a", 'æ': "ae",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ø': "o", 'œ': "oe",
	'ù': "u", 'ú': "u", 'û': "u",
	'ý': "y", 'ÿ': "y",
	'ñ': "n", 'ß': "ss",
}

// Generate derives a URL slug from a localized title. The transform is pure
// and collision-unaware; uniqueness is the caller's responsibility (see
// WithSuffix). Empty or whitespace-only input yields an empty string.
func Generate(text, locale string) string {
	folded := fold(text, i18n.Normalize(locale))

	words := strings.FieldsFunc(folded, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	joined := strings.Join(words, "-")

	for strings.Contains(joined, "--") {
		joined = strings.ReplaceAll(joined, "--", "-")
	}
	return strings.Trim(joined, "-")
}

// WithSuffix appends a millisecond timestamp so near-identical titles stay
// unique per locale. Empty slugs stay empty; the caller must reject those.
func WithSuffix(s string, at time.Time) string {
	if s == "" {
		return ""
	}
	return s + "-" + strconv.FormatInt(at.UnixMilli(), 10)
}

// IsValid reports whether an explicitly supplied slug already satisfies the
// normalization rules.
func IsValid(s string) bool {
	return goslug.IsValid(s)
}

func fold(text, locale string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if locale == i18n.LocaleTurkish {
			if mapped, ok := turkishFold[r]; ok {
				b.WriteString(mapped)
				continue
			}
		}
		if mapped, ok := latinFold[r]; ok {
			b.WriteString(mapped)
			continue
		}
		if mapped, ok := turkishFold[r]; ok {
			b.WriteString(mapped)
			continue
		}

		lower := unicode.ToLower(r)
		switch {
		case lower >= 'a' && lower <= 'z', lower >= '0' && lower <= '9':
			b.WriteRune(lower)
		case unicode.IsSpace(lower):
			b.WriteRune(' ')
		case lower == '-':
			b.WriteRune('-')
		}
	}
	return b.String()
}
