package config

// Default values applied before any config file, env var, or flag.
const (
	DefaultDialect  = "ansi"
	DefaultLogLevel = "info"
)

// ConfigFileNames are the file names searched for, in priority order.
var ConfigFileNames = []string{"sqlint.yaml", "sqlint.yml"}

// defaults returns the lowest-priority configuration layer.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"dialect":   DefaultDialect,
		"log_level": DefaultLogLevel,
		"paths":     []string{"."},
	}
}
