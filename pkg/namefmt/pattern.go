package namefmt

import "strings"

// MatchesPattern reports whether name matches a behavior pattern.
//
// The pattern language is deliberately tiny and is not a glob engine:
//
//   - no "*"            -> substring containment
//   - exactly one "*"   -> name must start with the text before the star and
//     end with the text after it; the two regions may
//     overlap on short names
//   - two or more "*"   -> never matches
func MatchesPattern(name, pattern string) bool {
	switch strings.Count(pattern, "*") {
	case 0:
		return strings.Contains(name, pattern)
	case 1:
		prefix, suffix, _ := strings.Cut(pattern, "*")
		return strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix)
	default:
		return false
	}
}
