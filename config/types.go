package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

const (
	DefaultBinary   = "zellij"
	DefaultPageSize = 24
)

// Config is the zism configuration, read from zism.yml (or zism.toml).
type Config struct {
	Binary     string           `yaml:"binary,omitempty" toml:"binary,omitempty" json:"binary,omitempty" jsonschema:"description=Zellij executable name or path"`
	PageSize   int              `yaml:"page_size,omitempty" toml:"page_size,omitempty" json:"page_size,omitempty" jsonschema:"minimum=1,description=Number of candidates to display at once"`
	Guake      bool             `yaml:"guake,omitempty" toml:"guake,omitempty" json:"guake,omitempty" jsonschema:"description=Rename the Guake tab to the session name on create or attach"`
	Banner     *bool            `yaml:"banner,omitempty" toml:"banner,omitempty" json:"banner,omitempty" jsonschema:"description=Print the banner on startup (default: true)"`
	Home       string           `yaml:"home,omitempty" toml:"home,omitempty" json:"home,omitempty" jsonschema:"description=Root directory for directory completion (default: the user home)"`
	Completion CompletionConfig `yaml:"completion,omitempty" toml:"completion,omitempty" json:"completion,omitempty" jsonschema:"description=Directory completion settings"`

	// Extensions holds top-level sections zism does not model itself, such as
	// logging. Read them with UnmarshalExtension.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`
}

// CompletionConfig configures directory completion.
type CompletionConfig struct {
	// Exclude lists gitignore-style patterns, relative to the completion root,
	// for directories that should never be suggested.
	Exclude []string `yaml:"exclude,omitempty" toml:"exclude,omitempty" json:"exclude,omitempty" mapstructure:"exclude" jsonschema:"description=Patterns of directories hidden from suggestions"`
}

// knownKeys are the top-level keys decoded into Config fields.
var knownKeys = map[string]bool{
	"binary":     true,
	"page_size":  true,
	"guake":      true,
	"banner":     true,
	"home":       true,
	"completion": true,
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Binary == "" {
		c.Binary = DefaultBinary
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Banner == nil {
		show := true
		c.Banner = &show
	}
}

// ShowBanner reports whether the banner should be printed.
func (c *Config) ShowBanner() bool {
	return c.Banner == nil || *c.Banner
}

// UnmarshalExtension decodes a specific extension section from the
// loaded zism.yml into the provided target struct. The target must be a pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct. We configure it to use
	// `yaml` tags for consistency.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
