package main

import (
	"os"

	"github.com/grovetools/zism/cli"
	"github.com/grovetools/zism/cmd"
	"github.com/grovetools/zism/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		if errors.GetCode(err) == "" {
			// cobra usage errors: bad flags, unknown commands
			cli.PrintError(rootCmd, err)
		} else {
			verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
			_ = cli.NewErrorHandler(verbose).Handle(err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
