// Package commands implements the videogrid command line: listing, searching
// and diffing the video catalog with the same core the app uses.
package commands

import (
	"github.com/spf13/cobra"
)

// New creates the root command.
func New() *cobra.Command {
	o := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "videogrid",
		Short: "Browse, search and diff the video catalog.",
		Long: `Browse, search and diff the video catalog.

Settings are read from .videogrid.yaml in the current or home directory and
from VIDEOGRID_* environment variables; flags win over both.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.Load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddRootArgs(cmd, o)
	AddCommands(cmd, o)
	return cmd
}

// AddCommands registers the subcommands on topLevel.
func AddCommands(topLevel *cobra.Command, o *RootOptions) {
	addList(topLevel, o)
	addSearch(topLevel, o)
	addDiff(topLevel, o)
	addOpen(topLevel, o)
}
