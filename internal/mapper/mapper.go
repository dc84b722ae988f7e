package mapper

import (
	"strconv"
	"strings"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
)

// Form is the flat payload shape the admin UI submits: localized values
// arrive as "<field>_tr" / "<field>_en" keys next to plain scalars.
type Form map[string]any

// Record is the nested storage-facing shape: localized fields hold
// i18n.Text pairs, list fields hold i18n.StringList, scalars are typed.
type Record map[string]any

// Profile declares, per entity type, which form fields are localized, which
// are per-locale lists, and how plain scalars coerce. Transforms driven by a
// profile are total: malformed values fall back to documented defaults and
// never fail the request.
type Profile struct {
	// Localized fields map f_tr/f_en onto a nested {tr,en} pair.
	Localized []string
	// Lists are per-locale ordered string lists (tags, package features).
	Lists []string
	// Ints maps numeric fields to the default used when parsing fails.
	Ints map[string]int
	// Bools are checkbox-style fields coerced from any truthy encoding.
	Bools []string
	// Strings pass through as trimmed plain text.
	Strings []string
}

// ToRecord normalizes a flat form into the nested storage shape. Only fields
// present in the input are emitted so partial updates merge cleanly. An
// already-nested value under the bare field name takes precedence over the
// suffixed keys, which makes the transform idempotent: feeding a Record back
// through ToRecord yields the same Record.
func (p Profile) ToRecord(form Form) Record {
	rec := Record{}
	if form == nil {
		return rec
	}

	for _, f := range p.Localized {
		nested, hasNested := form[f]
		_, hasTR := form[f+"_tr"]
		_, hasEN := form[f+"_en"]
		if !hasNested && !hasTR && !hasEN {
			continue
		}
		if hasNested {
			if text, ok := asText(nested); ok {
				rec[f] = text
				continue
			}
		}
		rec[f] = i18n.Text{
			TR: asString(form[f+"_tr"]),
			EN: asString(form[f+"_en"]),
		}
	}

	for _, f := range p.Lists {
		nested, hasNested := form[f]
		_, hasTR := form[f+"_tr"]
		_, hasEN := form[f+"_en"]
		if !hasNested && !hasTR && !hasEN {
			continue
		}
		if hasNested {
			if list, ok := asStringList(nested); ok {
				rec[f] = list
				continue
			}
		}
		rec[f] = i18n.StringList{
			TR: NormalizeList(form[f+"_tr"]),
			EN: NormalizeList(form[f+"_en"]),
		}
	}

	for f, def := range p.Ints {
		if v, ok := form[f]; ok {
			rec[f] = toInt(v, def)
		}
	}

	for _, f := range p.Bools {
		if v, ok := form[f]; ok {
			rec[f] = toBool(v)
		}
	}

	for _, f := range p.Strings {
		if v, ok := form[f]; ok {
			rec[f] = strings.TrimSpace(asString(v))
		}
	}

	return rec
}

// ToForm flattens a nested record back into the flat admin-form shape for
// rendering edit forms. It is the inverse of ToRecord for configured fields.
func (p Profile) ToForm(rec Record) Form {
	form := Form{}
	if rec == nil {
		return form
	}

	for _, f := range p.Localized {
		v, ok := rec[f]
		if !ok {
			continue
		}
		text, ok := asText(v)
		if !ok {
			continue
		}
		form[f+"_tr"] = text.TR
		form[f+"_en"] = text.EN
	}

	for _, f := range p.Lists {
		v, ok := rec[f]
		if !ok {
			continue
		}
		list, ok := asStringList(v)
		if !ok {
			continue
		}
		form[f+"_tr"] = list.In(i18n.LocaleTurkish)
		form[f+"_en"] = list.In(i18n.LocaleEnglish)
	}

	for f := range p.Ints {
		if v, ok := rec[f]; ok {
			form[f] = v
		}
	}
	for _, f := range p.Bools {
		if v, ok := rec[f]; ok {
			form[f] = v
		}
	}
	for _, f := range p.Strings {
		if v, ok := rec[f]; ok {
			form[f] = v
		}
	}

	return form
}

// Has reports whether the record carries the field.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Text returns the localized pair stored for the field, zero when absent.
func (r Record) Text(field string) i18n.Text {
	if v, ok := r[field]; ok {
		if text, ok := asText(v); ok {
			return text
		}
	}
	return i18n.Text{}
}

// List returns the per-locale list stored for the field, zero when absent.
func (r Record) List(field string) i18n.StringList {
	if v, ok := r[field]; ok {
		if list, ok := asStringList(v); ok {
			return list
		}
	}
	return i18n.StringList{}
}

// Int returns the coerced numeric value, or def when absent.
func (r Record) Int(field string, def int) int {
	if v, ok := r[field]; ok {
		return toInt(v, def)
	}
	return def
}

// Bool returns the coerced boolean value, false when absent.
func (r Record) Bool(field string) bool {
	if v, ok := r[field]; ok {
		return toBool(v)
	}
	return false
}

// String returns the plain string value, empty when absent.
func (r Record) String(field string) string {
	if v, ok := r[field]; ok {
		return asString(v)
	}
	return ""
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return ""
	}
}

func asText(v any) (i18n.Text, bool) {
	switch t := v.(type) {
	case i18n.Text:
		return t, true
	case *i18n.Text:
		if t == nil {
			return i18n.Text{}, false
		}
		return *t, true
	case map[string]any:
		_, hasTR := t["tr"]
		_, hasEN := t["en"]
		if !hasTR && !hasEN {
			return i18n.Text{}, false
		}
		return i18n.Text{TR: asString(t["tr"]), EN: asString(t["en"])}, true
	case map[string]string:
		return i18n.Text{TR: t["tr"], EN: t["en"]}, true
	}
	return i18n.Text{}, false
}

func asStringList(v any) (i18n.StringList, bool) {
	switch l := v.(type) {
	case i18n.StringList:
		return l, true
	case *i18n.StringList:
		if l == nil {
			return i18n.StringList{}, false
		}
		return *l, true
	case map[string]any:
		_, hasTR := l["tr"]
		_, hasEN := l["en"]
		if !hasTR && !hasEN {
			return i18n.StringList{}, false
		}
		return i18n.StringList{
			TR: NormalizeList(l["tr"]),
			EN: NormalizeList(l["en"]),
		}, true
	}
	return i18n.StringList{}, false
}

func toBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "on", "1", "yes", "checked":
			return true
		}
		return false
	case int:
		return b != 0
	case int64:
		return b != 0
	case float64:
		return b != 0
	}
	return false
}

func toInt(v any, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return def
		}
		return parsed
	}
	return def
}
