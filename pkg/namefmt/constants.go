package namefmt

const (
	// ConfigAppName is the base directory name used for namefmt configuration.
	// Helpers use this value to construct platform-specific config paths such as:
	//   $XDG_CONFIG_HOME/namefmt (or ~/.config/namefmt) on Unix-like systems
	//   %APPDATA%\namefmt on Windows
	ConfigAppName = "namefmt"

	// DefaultConfigFileName is the config file name inside the app config dir.
	DefaultConfigFileName = "config.yaml"
)
