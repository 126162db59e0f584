package namefmt

import (
	"os"
	"path/filepath"
	"strings"
)

// IsExeOrPackage reports whether path looks like an executable or belongs to
// a package root. Such paths are always kebab-cased, overriding configured
// behaviors.
//
// A path qualifies when any of the following holds:
//   - its extension, compared case-insensitively, is one of
//     cfg.Detection.ExeExtensions
//   - it is a directory containing one of cfg.Detection.PackageFiles
//   - it is a file whose parent directory contains one of them
//
// Only read-only stat calls are made; missing files simply do not match.
func IsExeOrPackage(path string, cfg *Config) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	// A dotfile's leading dot is not an extension separator.
	if ext != "" && strings.TrimSuffix(base, ext) != "" {
		for _, e := range cfg.Detection.ExeExtensions {
			if strings.EqualFold(strings.TrimPrefix(ext, "."), e) {
				return true
			}
		}
	}

	dir := path
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		dir = filepath.Dir(path)
	}
	for _, pkg := range cfg.Detection.PackageFiles {
		if _, err := os.Stat(filepath.Join(dir, pkg)); err == nil {
			return true
		}
	}
	return false
}
