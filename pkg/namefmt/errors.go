package namefmt

import (
	"errors"
	"fmt"
)

// Sentinel errors used for simple equality-style checks.
var (
	// ErrPathNotExist indicates the requested target path does not exist.
	ErrPathNotExist = errors.New("namefmt: path does not exist")

	// ErrInvalidConfig indicates the configuration is invalid or fails validation.
	ErrInvalidConfig = errors.New("namefmt: invalid config")

	// ErrConfigDirUnresolvable indicates the per-user config directory could
	// not be determined for the current platform.
	ErrConfigDirUnresolvable = errors.New("namefmt: config directory unresolvable")
)

// PathNotFoundError is a typed error that carries the missing path for callers
// that need richer diagnostic information.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path does not exist: %s", e.Path)
}

func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotExist
}

func (e *PathNotFoundError) Unwrap() error { return ErrPathNotExist }

// NewPathNotFoundError constructs a typed PathNotFoundError.
func NewPathNotFoundError(path string) error {
	return &PathNotFoundError{Path: path}
}

// IsPathNotFound reports whether err is (or wraps) a missing-path condition.
func IsPathNotFound(err error) bool {
	return errors.Is(err, ErrPathNotExist)
}

// InvalidConfigError represents a validation or parse failure for namefmt config.
type InvalidConfigError struct {
	Msg string
}

func (e *InvalidConfigError) Error() string {
	if e.Msg == "" {
		return "invalid namefmt config"
	}
	return fmt.Sprintf("invalid namefmt config: %s", e.Msg)
}

func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// NewInvalidConfigError creates an InvalidConfigError with a human message.
func NewInvalidConfigError(msg string) error {
	return &InvalidConfigError{Msg: msg}
}

// IsInvalidConfig reports whether err is (or wraps) an invalid-config condition.
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
