package namefmt

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"gopkg.in/yaml.v3"

	"github.com/jlrickert/namefmt/pkg/internal"
)

// Config drives every formatting decision. It is loaded once per run and
// read-only afterwards.
type Config struct {
	// ReplaceSpaces replaces spaces with underscores when no behavior
	// matched a name and detection did not claim it.
	ReplaceSpaces bool `yaml:"replace_spaces"`

	// Behaviors are evaluated in declaration order; the first behavior whose
	// pattern matches a name wins. The ordering is load-bearing.
	Behaviors []Behavior `yaml:"behaviors,omitempty"`

	Detection DetectionRules `yaml:"detection"`
}

// Behavior pairs a pattern with the style applied to matching names.
type Behavior struct {
	Pattern string      `yaml:"pattern"`
	Style   NamingStyle `yaml:"style"`
}

// DetectionRules identify executables and package roots, which are always
// kebab-cased regardless of configured behaviors.
type DetectionRules struct {
	// ExeExtensions are compared case-insensitively against the file
	// extension.
	ExeExtensions []string `yaml:"exe_extensions"`

	// PackageFiles mark a directory as a package root when any of them is
	// present in it.
	PackageFiles []string `yaml:"package_dirs"`
}

// DefaultConfig returns the built-in configuration used when no config file
// exists or the existing one cannot be parsed.
func DefaultConfig() *Config {
	return &Config{
		ReplaceSpaces: true,
		Behaviors:     nil,
		Detection:     DefaultDetectionRules(),
	}
}

// DefaultDetectionRules returns the built-in detection heuristics.
func DefaultDetectionRules() DetectionRules {
	return DetectionRules{
		ExeExtensions: []string{"exe", "bin", "app"},
		PackageFiles:  []string{"package.json", "Cargo.toml", "pyproject.toml"},
	}
}

// DefaultConfigYAML is the commented template written on first run.
const DefaultConfigYAML = `# namefmt configuration
#
# replace_spaces: replace spaces with underscores when no behavior matches.
replace_spaces: true

# behaviors are checked in order; the first matching pattern wins.
# A pattern with no "*" is a substring match; a single "*" splits the
# pattern into a required prefix and suffix.
#
# behaviors:
#   - pattern: "*.log"
#     style: snake_case
#   - pattern: draft
#     style: camelCase

detection:
  exe_extensions: [exe, bin, app]
  package_dirs: [package.json, Cargo.toml, pyproject.toml]
`

// UnmarshalYAML decodes into a default-seeded Config so that absent keys keep
// their documented defaults while present keys overwrite them.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type alias Config
	tmp := alias(*DefaultConfig())
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}

// ParseConfig parses raw YAML into a Config, applying defaults for any
// missing fields.
func ParseConfig(raw []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}
	return cfg, nil
}

// ToYAML serializes the Config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("no config")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("encode yaml config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConfigPath resolves the config file location. A non-empty custom path wins;
// otherwise the platform config dir for namefmt is used. Failure to resolve
// the platform config dir is fatal for the run.
func ConfigPath(custom string) (string, error) {
	if custom != "" {
		return custom, nil
	}
	dir, err := internal.GetConfigDir(ConfigAppName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfigDirUnresolvable, err)
	}
	return filepath.Join(dir, DefaultConfigFileName), nil
}

// LoadConfig reads the config file at path, creating it with the default
// template on first run. Every failure short of a missing path resolution is
// recovered: a warning goes to warnOut and the built-in defaults are used.
// The returned config is never nil.
func LoadConfig(ctx context.Context, rt *toolkit.Runtime, path string, warnOut io.Writer) *Config {
	lg := rt.Logger()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefaultConfig(rt, path); err != nil {
			lg.Debug("failed to create default config", "path", path, "err", err)
			fmt.Fprintf(warnOut, "Warning: failed to write default config to %s: %v\n", path, err)
			fmt.Fprintln(warnOut, "Using default configuration")
			return DefaultConfig()
		}
		lg.Info("created default config", "path", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		lg.Debug("failed to read config", "path", path, "err", err)
		fmt.Fprintf(warnOut, "Warning: failed to read %s: %v\n", path, err)
		fmt.Fprintln(warnOut, "Using default configuration")
		return DefaultConfig()
	}

	cfg, err := ParseConfig(b)
	if err != nil {
		lg.Debug("failed to parse config", "path", path, "err", err)
		fmt.Fprintf(warnOut, "Warning: failed to parse %s: %v\n", path, err)
		fmt.Fprintln(warnOut, "Using default configuration")
		return DefaultConfig()
	}
	return cfg
}

func writeDefaultConfig(rt *toolkit.Runtime, path string) error {
	if err := rt.Mkdir(filepath.Dir(path), 0o755, true); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := rt.AtomicWriteFile(path, []byte(DefaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
