package namefmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestToCamelCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "hyphenated", in: "some-thing", want: "someThing"},
		{name: "spaces", in: "My Cool File", want: "myCoolFile"},
		{name: "underscores", in: "my_cool_file", want: "myCoolFile"},
		{name: "single_word_lowered", in: "MyComponent", want: "mycomponent"},
		{name: "inner_casing_preserved", in: "some XMLFile", want: "someXMLFile"},
		{name: "separator_runs_collapse", in: "__a_b__", want: "aB"},
		{name: "mixed_separators", in: "a-b_c d", want: "aBCD"},
		{name: "empty", in: "", want: ""},
		{name: "only_separators", in: " -_", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ToCamelCase(tt.in))
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "pascal", in: "MyComponent", want: "my_component"},
		{name: "spaces", in: "My Cool File", want: "my_cool_file"},
		{name: "already_snake", in: "already_snake", want: "already_snake"},
		{name: "hyphens_normalized", in: "some-thing", want: "some_thing"},
		{name: "upper_run", in: "ABc", want: "a_bc"},
		{name: "no_separator_after_existing", in: "foo-Bar", want: "foo_bar"},
		{name: "no_leading_separator", in: " Leading", want: "leading"},
		{name: "digits_pass_through", in: "file2Go", want: "file2_go"},
		{name: "dots_pass_through", in: "My File.txt", want: "my_file.txt"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ToSnakeCase(tt.in))
		})
	}
}

func TestToKebabCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "pascal", in: "MyComponent", want: "my-component"},
		{name: "spaces", in: "My File.js", want: "my-file.js"},
		{name: "underscores_normalized", in: "a_b", want: "a-b"},
		{name: "existing_hyphen_kept", in: "a-B", want: "a-b"},
		{name: "no_leading_separator", in: "_x", want: "x"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ToKebabCase(tt.in))
		})
	}
}

// Inputs without pre-existing doubled separators; the transforms pass literal
// separators through untouched, so deduplication is only guaranteed for the
// separators they insert themselves.
var caseInputs = []string{
	"",
	"My Cool File.txt",
	"MyComponent",
	"some-thing",
	"already_snake",
	"Mixed_Case-With Spaces",
	"ABCdef GHi",
	"file2Go.tar.gz",
	"x",
}

func TestSnakeAndKebabIdempotent(t *testing.T) {
	t.Parallel()

	for _, in := range caseInputs {
		once := ToSnakeCase(in)
		require.Equal(t, once, ToSnakeCase(once), "snake not idempotent for %q", in)

		once = ToKebabCase(in)
		require.Equal(t, once, ToKebabCase(once), "kebab not idempotent for %q", in)
	}
}

func TestCamelIdempotentOnSingleWords(t *testing.T) {
	t.Parallel()

	// Camel output of a separator-free word is fully lower-cased, which is a
	// fixed point of the transform.
	for _, in := range []string{"", "word", "MyComponent", "xmlHTTPRequest"} {
		once := ToCamelCase(in)
		require.Equal(t, once, ToCamelCase(once), "camel not idempotent for %q", in)
	}

	// For every input the transform stabilizes after two applications.
	for _, in := range caseInputs {
		twice := ToCamelCase(ToCamelCase(in))
		require.Equal(t, twice, ToCamelCase(twice), "camel does not stabilize for %q", in)
	}
}

func TestNoDoubledOrLeadingSeparators(t *testing.T) {
	t.Parallel()

	for _, in := range caseInputs {
		snake := ToSnakeCase(in)
		require.NotContains(t, snake, "__", "input %q", in)
		require.False(t, strings.HasPrefix(snake, "_"), "input %q", in)

		kebab := ToKebabCase(in)
		require.NotContains(t, kebab, "--", "input %q", in)
		require.False(t, strings.HasPrefix(kebab, "-"), "input %q", in)
	}
}

func TestApplyStyle(t *testing.T) {
	t.Parallel()

	require.Equal(t, "someThing", ApplyStyle("some-thing", StyleCamel))
	require.Equal(t, "my_component", ApplyStyle("MyComponent", StyleSnake))
	require.Equal(t, "my-component", ApplyStyle("MyComponent", StyleKebab))
	require.Equal(t, "untouched", ApplyStyle("untouched", NamingStyle("bogus")))
}

func TestNamingStyleUnmarshal(t *testing.T) {
	t.Parallel()

	var s NamingStyle
	require.NoError(t, yaml.Unmarshal([]byte(`snake_case`), &s))
	require.Equal(t, StyleSnake, s)

	err := yaml.Unmarshal([]byte(`SCREAMING_CASE`), &s)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.True(t, IsInvalidConfig(err))

	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
	require.Contains(t, ice.Msg, "SCREAMING_CASE")
}
