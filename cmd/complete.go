package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/zism/cli"
	"github.com/grovetools/zism/pkg/completion"
	"github.com/spf13/cobra"
)

// CompleteOutput is the --json form of `zism complete`.
type CompleteOutput struct {
	Input       string   `json:"input"`
	Suggestions []string `json:"suggestions"`
	Completion  *string  `json:"completion"`
}

func newCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete [input]",
		Short: "Show directory suggestions for a partial path",
		Long: `Print the directory suggestions the interactive prompt would offer
for input, relative to the completion root, followed by the text Tab
would complete it to (if any) on a line starting with "=> ".`,
		Example: `# Subdirectories of the home directory starting with "d"
zism complete d

# Machine-readable
zism complete --json src/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			home, err := cfg.ResolveHome()
			if err != nil {
				return err
			}

			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			highlighted, _ := cmd.Flags().GetString("highlighted")

			c := completion.New(home, completion.WithExclude(cfg.Completion.Exclude))
			out := CompleteOutput{
				Input:       input,
				Suggestions: c.Suggestions(input),
			}
			if out.Suggestions == nil {
				out.Suggestions = []string{}
			}
			if next, ok := c.Completion(input, highlighted); ok {
				out.Completion = &next
			}

			if cli.GetOptions(cmd).JSONOutput {
				jsonData, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal completion to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
				return nil
			}

			for _, s := range out.Suggestions {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			if out.Completion != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "=> %s\n", *out.Completion)
			}
			return nil
		},
	}
	cmd.Flags().String("highlighted", "", "Treat this suggestion as highlighted when completing")
	return cmd
}
