package common

import "strings"

// UniqueFold trims and de-duplicates strings case-insensitively, keeping
// the first spelling seen and preserving order. key, if non-nil, maps each
// trimmed string to the identity used for de-duplication.
func UniqueFold(in []string, key func(string) string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if key != nil {
			k = key(s)
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}
