package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/zism/cli"
	"github.com/grovetools/zism/pkg/zellij"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active Zellij sessions",
		Long: `Print the active Zellij sessions one per line, in the order zellij
reports them. With --json the sessions are printed as a JSON array.
No sessions is not an error: nothing is printed (or [] with --json).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			sessions, err := zellij.NewClient(cfg.Binary).ListSessions(cmd.Context())
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				jsonData, err := json.MarshalIndent(sessions, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal sessions to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
				return nil
			}

			for _, s := range sessions {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	return cmd
}
