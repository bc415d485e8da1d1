package cli

import (
	"fmt"

	"github.com/grovetools/zism/version"
	"github.com/spf13/cobra"
)

// SetVersionTemplate sets the --version output of cmd.
func SetVersionTemplate(cmd *cobra.Command, info version.Info) {
	cmd.Version = info.Version
	cmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
  Commit:    %s
  Built:     %s
  Platform:  %s
`, info.Commit, info.BuildDate, info.Platform))
}
