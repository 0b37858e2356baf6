// Package config provides configuration management for the ACRONYM CLI.
package config

// ServerConfig holds configuration for the dashboard server.
type ServerConfig struct {
	Port          int    `koanf:"port"`
	AutoOpen      bool   `koanf:"auto_open"`
	Watch         bool   `koanf:"watch"`
	Dev           bool   `koanf:"dev"`
	SessionSecret string `koanf:"session_secret"`
}

// CatalogConfig locates the catalog data.
type CatalogConfig struct {
	// Path is a YAML catalog file. Empty selects the embedded demo data.
	Path string `koanf:"path"`
}

// ListConfig holds list view settings.
type ListConfig struct {
	PageSize int `koanf:"page_size"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Config holds all CLI configuration options.
type Config struct {
	Server       ServerConfig  `koanf:"server"`
	Catalog      CatalogConfig `koanf:"catalog"`
	List         ListConfig    `koanf:"list"`
	Log          LogConfig     `koanf:"log"`
	OutputFormat string        `koanf:"output"`
}

// Default configuration values.
const (
	DefaultPort      = 8080
	DefaultPageSize  = 25
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// Output formats accepted by the output setting.
var OutputFormats = []string{"auto", "text", "markdown", "json"}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:  DefaultPort,
			Watch: true,
		},
		List:         ListConfig{PageSize: DefaultPageSize},
		Log:          LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		OutputFormat: DefaultOutput,
	}
}

func defaults() map[string]any {
	d := Default()
	return map[string]any{
		"server.port":      d.Server.Port,
		"server.auto_open": d.Server.AutoOpen,
		"server.watch":     d.Server.Watch,
		"server.dev":       d.Server.Dev,
		"catalog.path":     d.Catalog.Path,
		"list.page_size":   d.List.PageSize,
		"log.level":        d.Log.Level,
		"log.format":       d.Log.Format,
		"output":           d.OutputFormat,
	}
}
