package commands

import (
	"github.com/spf13/cobra"
)

func addList(topLevel *cobra.Command, o *RootOptions) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every video in the catalog.",
		Example: `
videogrid list
videogrid list --show-id --catalog ./catalog.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			videos, err := o.Videos()
			if err != nil {
				return err
			}

			p := &Printer{Out: cmd.OutOrStdout(), ShowID: o.showID}
			p.Title("Videos", len(videos), len(videos))
			p.Videos(videos)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
