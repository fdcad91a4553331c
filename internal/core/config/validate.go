package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/reelmood/reelmood/internal/core/styles"
)

// Validate performs structural validation of the configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("endpoint", c.Endpoint, endpointIsHTTPURL),
		criterio.Run("theme", c.Theme, themeExists),
		c.validateTimeout(),
	)
}

// endpointIsHTTPURL validates that the endpoint is an absolute http(s) URL.
func endpointIsHTTPURL(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

// themeExists validates that the theme names a built-in palette.
func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func (c *Config) validateTimeout() error {
	if c.TimeoutSeconds < 0 {
		return criterio.NewFieldErrors("timeout_seconds", fmt.Errorf("must be positive, got %d", c.TimeoutSeconds))
	}
	return nil
}
