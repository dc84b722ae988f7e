package mapper

import "strings"

// NormalizeList coerces heterogeneous list input into a canonical ordered
// slice of trimmed, non-empty strings:
//
//   - arrays keep their order; elements empty after trimming are dropped and
//     exact duplicates removed (case-sensitive)
//   - strings split on comma, each piece trimmed, empty pieces dropped
//   - nil yields an empty list
//
// The same contract serves tags, package features and specializations.
func NormalizeList(input any) []string {
	switch v := input.(type) {
	case nil:
		return []string{}
	case []string:
		return normalizeSlice(v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, asString(item))
		}
		return normalizeSlice(items)
	case string:
		return normalizeSlice(strings.Split(v, ","))
	}
	return []string{}
}

func normalizeSlice(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
