package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/zism/errors"
	"github.com/grovetools/zism/pkg/paths"
	"github.com/grovetools/zism/util/pathutil"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames are looked up, in order, in the zism config directory.
var configNames = []string{"zism.yml", "zism.yaml", "zism.toml"}

// Load reads and parses a zism configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	var cfg *Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		cfg, err = LoadFromTOML(data)
	} else {
		cfg, err = LoadFromBytes(data)
	}
	if err != nil {
		if zErr, ok := errors.As(err); ok {
			zErr.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the user's config file, or returns defaults if none exists.
func LoadDefault() (*Config, error) {
	return LoadDefaultWithLogger(logrus.New())
}

// LoadDefaultWithLogger is LoadDefault with debug output sent to logger.
func LoadDefaultWithLogger(logger *logrus.Logger) (*Config, error) {
	path := FindConfigFile()
	if path == "" {
		logger.Debug("No configuration file found, using defaults")
		return Default(), nil
	}

	logger.WithField("path", path).Debug("Loading configuration")
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		configData, err := yaml.Marshal(cfg)
		if err == nil {
			logger.Debugf("Effective configuration:\n%s", string(configData))
		}
	}
	return cfg, nil
}

// LoadFile loads path when it is set and the default configuration otherwise.
// Unlike LoadDefault, an explicitly named file must exist.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return LoadDefault()
	}
	return Load(path)
}

// LoadFromBytes parses a YAML configuration
func LoadFromBytes(data []byte) (*Config, error) {
	// Expand environment variables
	expanded := expandEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
	}

	return finish(&config)
}

// LoadFromTOML parses a TOML configuration. Unknown top-level tables become
// extensions, as with YAML.
func LoadFromTOML(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var raw map[string]interface{}
	if err := toml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
	}

	known := make(map[string]interface{})
	var config Config
	for key, value := range raw {
		if knownKeys[key] {
			known[key] = value
			continue
		}
		if config.Extensions == nil {
			config.Extensions = make(map[string]interface{})
		}
		config.Extensions[key] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &config,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create decoder")
	}
	if err := decoder.Decode(known); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode TOML configuration")
	}

	return finish(&config)
}

func finish(config *Config) (*Config, error) {
	// Validate against schema
	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create validator")
	}

	if err := validator.Validate(config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "schema validation failed")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.SetDefaults()
	return config, nil
}

// FindConfigFile returns the first existing zism config file in the config
// directory, or "" if there is none.
func FindConfigFile() string {
	dir := paths.ConfigDir()
	if dir == "" {
		return ""
	}
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ResolveHome returns the completion root: the configured home, expanded,
// or the user's home directory.
func (c *Config) ResolveHome() (string, error) {
	if c.Home != "" {
		return pathutil.Expand(c.Home)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeConfigInvalid, "could not determine home directory")
	}
	return home, nil
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}
