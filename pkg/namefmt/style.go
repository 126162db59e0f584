package namefmt

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// NamingStyle selects one of the supported filename case conventions. It is a
// pure tag; all behavior lives in the transform functions.
type NamingStyle string

const (
	StyleCamel NamingStyle = "camelCase"
	StyleSnake NamingStyle = "snake_case"
	StyleKebab NamingStyle = "kebab-case"
)

// UnmarshalYAML validates the style token. An unknown style makes the whole
// config document fail to parse, which callers treat as "fall back to
// defaults with a warning".
func (s *NamingStyle) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch NamingStyle(raw) {
	case StyleCamel, StyleSnake, StyleKebab:
		*s = NamingStyle(raw)
		return nil
	}
	return NewInvalidConfigError(fmt.Sprintf("unknown naming style %q", raw))
}

// ApplyStyle dispatches name to the transform for style. Unknown styles leave
// the name untouched; config parsing rejects them before they get here.
func ApplyStyle(name string, style NamingStyle) string {
	switch style {
	case StyleCamel:
		return ToCamelCase(name)
	case StyleSnake:
		return ToSnakeCase(name)
	case StyleKebab:
		return ToKebabCase(name)
	}
	return name
}

// ToCamelCase splits name on spaces, underscores, and hyphens, lower-cases
// the first word entirely, upper-cases the first character of every later
// word, and concatenates the result. Characters after the first of each word
// keep their original casing, so "some XMLFile" becomes "someXMLFile".
func ToCamelCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	})

	var b strings.Builder
	first := true
	for _, word := range words {
		if first {
			b.WriteString(strings.ToLower(word))
			first = false
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// ToSnakeCase lower-cases name, inserting "_" before each upper-case
// character and in place of spaces and hyphens. Separators are never doubled
// and never lead the result; every other character passes through unchanged.
func ToSnakeCase(name string) string {
	return caseWithSeparator(name, '_', " -")
}

// ToKebabCase is ToSnakeCase with "-" as the separator; spaces and
// underscores are the characters normalized away.
func ToKebabCase(name string) string {
	return caseWithSeparator(name, '-', " _")
}

func caseWithSeparator(name string, sep rune, normalize string) string {
	var b strings.Builder
	var last rune
	wrote := false

	pushSep := func() {
		if wrote && last != sep {
			b.WriteRune(sep)
			last = sep
		}
	}

	for _, r := range name {
		switch {
		case unicode.IsUpper(r):
			pushSep()
			lower := unicode.ToLower(r)
			b.WriteRune(lower)
			last = lower
			wrote = true
		case strings.ContainsRune(normalize, r):
			pushSep()
		default:
			b.WriteRune(r)
			last = r
			wrote = true
		}
	}
	return b.String()
}
