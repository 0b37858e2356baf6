package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var problems []string
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.List.PageSize < 1 {
		problems = append(problems, fmt.Sprintf("list.page_size must be at least 1, got %d", c.List.PageSize))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		problems = append(problems, fmt.Sprintf("log.format must be one of %s, got %q", strings.Join(logFormats, "|"), c.Log.Format))
	}
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		problems = append(problems, fmt.Sprintf("output must be one of %s, got %q", strings.Join(OutputFormats, "|"), c.OutputFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
