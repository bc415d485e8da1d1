package config

import (
	"fmt"
	"strings"

	"github.com/grovetools/zism/errors"
	"github.com/moby/patternmatcher"
)

// Validate checks semantic constraints the schema cannot express.
func (c *Config) Validate() error {
	if c.PageSize < 0 {
		return errors.ConfigInvalid(fmt.Sprintf("page_size must be positive, got %d", c.PageSize)).
			WithDetail("field", "page_size")
	}

	if strings.ContainsAny(c.Binary, "\n\x00") {
		return errors.ConfigInvalid("binary must be a single line").
			WithDetail("field", "binary")
	}

	if len(c.Completion.Exclude) > 0 {
		if _, err := patternmatcher.New(c.Completion.Exclude); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid completion.exclude pattern").
				WithDetail("field", "completion.exclude")
		}
	}

	return nil
}
