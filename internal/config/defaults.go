package config

// Default values
const (
	DefaultSWDest                   = "service-worker.js"
	DefaultImportsDirectory         = ""
	DefaultPrecacheManifestFilename = "precache-manifest.[manifestHash].js"
	DefaultImportWorkboxFrom        = "cdn"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// DefaultGlobPatterns selects files when scanning a build directory.
var DefaultGlobPatterns = []string{"**/*"}

// DefaultGlobIgnores drops files that never belong in a precache manifest.
var DefaultGlobIgnores = []string{
	"**/node_modules/**",
	"**/*.map",
}

// Default returns the default configuration. User overrides are layered on
// top of this value, never mutated back into it.
func Default() *Config {
	return &Config{
		SWDest:                   DefaultSWDest,
		ImportsDirectory:         DefaultImportsDirectory,
		PrecacheManifestFilename: DefaultPrecacheManifestFilename,
		ImportWorkboxFrom:        DefaultImportWorkboxFrom,
	}
}
