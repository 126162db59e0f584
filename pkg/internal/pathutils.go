package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// GetConfigDir returns the per-user configuration directory for appName on
// the current operating system.
//
// Windows resolves to %APPDATA%\<appName> and fails when APPDATA is unset.
// Unix-like systems prefer $XDG_CONFIG_HOME/<appName> and fall back to
// $HOME/.config/<appName>; failure to determine the home directory is an
// error. The directory is not created by this helper.
func GetConfigDir(appName string) (string, error) {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName), nil
		}
		return "", fmt.Errorf("APPDATA environment variable not set")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
