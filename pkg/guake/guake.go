// Package guake renames the Guake terminal tab zism runs in.
package guake

import (
	"context"
	stderrors "errors"
	"os"
	"os/exec"

	"github.com/grovetools/zism/command"
	"github.com/grovetools/zism/errors"
	"github.com/grovetools/zism/logging"
	"github.com/sirupsen/logrus"
)

// TabEnvVar is set by Guake in every shell it starts.
const TabEnvVar = "GUAKE_TAB_UUID"

// IsInsideGuake reports whether the current process runs in a Guake tab.
func IsInsideGuake() bool {
	_, ok := os.LookupEnv(TabEnvVar)
	return ok
}

// Client drives the guake binary.
type Client struct {
	builder *command.SafeBuilder
	binary  string
	logger  *logrus.Entry
}

// NewClient returns a client for the guake binary on PATH.
func NewClient() *Client {
	return NewClientWithBuilder("guake", command.NewSafeBuilder())
}

// NewClientWithBuilder returns a client running binary through builder.
func NewClientWithBuilder(binary string, builder *command.SafeBuilder) *Client {
	return &Client{
		builder: builder,
		binary:  binary,
		logger:  logging.NewLogger("guake"),
	}
}

// RenameTab sets the title of the current Guake tab and waits for guake to
// exit. Only a failure to start guake is an error; guake's own exit status is
// logged and otherwise ignored.
func (c *Client) RenameTab(ctx context.Context, name string) error {
	if err := c.builder.Validate("tabName", name); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid tab name")
	}

	cmd, err := c.builder.Build(ctx, c.binary, "--rename-current-tab="+name)
	if err != nil {
		return errors.TabRenameFailed(name, err)
	}
	defer cmd.Release()

	c.logger.WithField("name", name).Debug("Renaming Guake tab")
	output, err := cmd.Exec().CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			c.logger.WithFields(logrus.Fields{
				"exitCode": exitErr.ExitCode(),
				"output":   string(output),
			}).Warn("guake could not rename the tab")
			return nil
		}
		return errors.TabRenameFailed(name, err)
	}
	return nil
}
