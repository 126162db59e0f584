package namefmt

import (
	"strings"
	"time"
)

// TimestampPrefix renders the date-stamp prepended by the --timestamp flag:
// the UTC calendar date as "YYYY_MM_DD__".
func TimestampPrefix(now time.Time) string {
	return now.UTC().Format("2006_01_02") + "__"
}

// FormatFilename decides the new base name for a file. name is the base name
// only; path locates the file for detection checks. Exactly one of the
// branches applies to the base name:
//
//  1. exe/package detection -> kebab-case, behaviors never consulted
//  2. first behavior whose pattern matches -> that behavior's style
//  3. otherwise, when cfg.ReplaceSpaces -> spaces become underscores
//
// When timestamp is set the date prefix is prepended afterwards, regardless
// of whether the branches changed anything. The second return value is false
// when the result is byte-identical to name and no rename is needed.
func FormatFilename(name string, cfg *Config, path string, now time.Time, timestamp bool) (string, bool) {
	result := name

	if IsExeOrPackage(path, cfg) {
		result = ToKebabCase(result)
	} else if behavior, ok := firstMatch(name, cfg.Behaviors); ok {
		result = ApplyStyle(result, behavior.Style)
	} else if cfg.ReplaceSpaces {
		result = strings.ReplaceAll(result, " ", "_")
	}

	if timestamp {
		result = TimestampPrefix(now) + result
	}

	if result == name {
		return "", false
	}
	return result, true
}

// firstMatch returns the first behavior whose pattern matches name. No
// fallback happens after a match, even when the chosen style is a no-op.
func firstMatch(name string, behaviors []Behavior) (Behavior, bool) {
	for _, b := range behaviors {
		if MatchesPattern(name, b.Pattern) {
			return b, true
		}
	}
	return Behavior{}, false
}
