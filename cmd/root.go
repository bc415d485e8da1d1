package cmd

import (
	"os"

	"github.com/grovetools/zism/cli"
	"github.com/grovetools/zism/config"
	"github.com/grovetools/zism/errors"
	"github.com/grovetools/zism/internal/banner"
	"github.com/grovetools/zism/internal/launcher"
	"github.com/grovetools/zism/logging"
	"github.com/grovetools/zism/pkg/completion"
	"github.com/grovetools/zism/pkg/guake"
	"github.com/grovetools/zism/pkg/zellij"
	"github.com/grovetools/zism/tui"
	"github.com/grovetools/zism/tui/prompt"
	"github.com/grovetools/zism/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewRootCmd builds the zism command tree.
func NewRootCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("zism", "Interactive launcher for Zellij sessions")
	cmd.Long = `Pick an action, then create, attach to, or delete Zellij sessions.

New sessions can be started in a directory chosen with tab completion
relative to your home directory; the session is named after the directory.`
	cmd.Example = `# Launch the menu
zism

# Show more directory suggestions and rename the Guake tab
zism --page-size 40 --guake

# Just print the banner
zism --banner`

	cmd.Flags().Int("page-size", config.DefaultPageSize, "Number of candidates to display at once")
	cmd.Flags().Bool("guake", false, "Rename Guake tab to session name on create/attach")
	cmd.Flags().Bool("banner", false, "Print banner and exit")
	cmd.Flags().Bool("no-banner", false, "Suppress banner display")
	cmd.MarkFlagsMutuallyExclusive("banner", "no-banner")

	cmd.Args = cobra.NoArgs
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.RunE = runLauncher

	cli.SetVersionTemplate(cmd, version.GetInfo())

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newCompleteCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// settings are the effective options after flags override the config file.
type settings struct {
	pageSize   int
	guake      bool
	showBanner bool
	bannerOnly bool
	home       string
}

func resolveSettings(cmd *cobra.Command, cfg *config.Config) (settings, error) {
	flags := cmd.Flags()
	s := settings{
		pageSize:   cfg.PageSize,
		guake:      cfg.Guake,
		showBanner: cfg.ShowBanner(),
	}

	if flags.Changed("page-size") {
		s.pageSize, _ = flags.GetInt("page-size")
	}
	if s.pageSize < 1 {
		return s, errors.InvalidInput("--page-size must be at least 1").WithDetail("pageSize", s.pageSize)
	}
	if flags.Changed("guake") {
		s.guake, _ = flags.GetBool("guake")
	}
	if noBanner, _ := flags.GetBool("no-banner"); noBanner {
		s.showBanner = false
	}
	if bannerOnly, _ := flags.GetBool("banner"); bannerOnly {
		s.showBanner = true
		s.bannerOnly = true
	}

	home, err := cfg.ResolveHome()
	if err != nil {
		return s, err
	}
	s.home = home
	return s, nil
}

func runLauncher(cmd *cobra.Command, args []string) error {
	logger := cli.GetLogger(cmd)

	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := resolveSettings(cmd, cfg)
	if err != nil {
		return err
	}

	tui.InitializeTUI()
	if s.showBanner {
		banner.Print(cmd.OutOrStdout(), version.GetInfo().Version)
	}
	if s.bannerOnly {
		return nil
	}

	if _, inside := zellij.CurrentSession(); !inside && !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.InvalidInput("zism needs an interactive terminal on stdin")
	}

	logger.WithField("home", s.home).WithField("pageSize", s.pageSize).Debug("Starting launcher")

	completer := completion.New(s.home,
		completion.WithExclude(cfg.Completion.Exclude),
		completion.WithLogger(logging.NewLogger("completion")),
	)
	prompter := prompt.New(s.pageSize)
	l := launcher.New(
		zellij.NewClient(cfg.Binary),
		func(style prompt.Style) launcher.Prompter { return prompter.WithStyle(style) },
		completer,
		guake.NewClient(),
		launcher.Options{
			Home:  s.home,
			Guake: s.guake,
			Out:   cmd.OutOrStdout(),
		},
	)

	// No deadline: list and delete wait for zellij, create and attach never return on success.
	return l.Run(cmd.Context())
}
