package cli

import (
	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii/shell"
)

func newShellCmd(opts *rootOptions) *cobra.Command {
	flags := &settingsFlags{}

	cmd := &cobra.Command{
		Use:   "shell <image>",
		Short: "Edit characters and resolution interactively",
		Long: `Shell opens a prompt for editing the character set and resolution of one
image. Type "render" to draw it and "exit" to leave.

Commands:
  chars                            list the current characters
  add|remove all|space|<c>|<a>-<b> edit the character set
  res up|down                      double or halve the characters per row
  console | html [file] | png [file]  choose the output
  render                           draw with the current settings
  exit                             leave the shell`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, flags)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			matcher, err := openMatcher(ctx, args[0], cfg)
			if err != nil {
				return err
			}

			sh := shell.New(matcher, cfg, cmd.OutOrStdout(), loggerFromContext(ctx))
			if stdinIsTerminal() {
				return sh.RunTUI(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return sh.Run(cmd.InOrStdin())
		},
	}

	flags.register(cmd)
	return cmd
}
