package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/videogrid/internal/search"
)

func addSearch(topLevel *cobra.Command, o *RootOptions) {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "List the videos whose title contains the query.",
		Long: `List the videos whose title contains the query, ignoring case.

Words are joined with single spaces; an empty query lists everything.`,
		Example: `
videogrid search swift
videogrid search "core data"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			videos, err := o.Videos()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			matched := search.Filter(videos, query)

			p := &Printer{Out: cmd.OutOrStdout(), ShowID: o.showID}
			p.Title(searchTitle(query), len(matched), len(videos))
			p.Videos(matched)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func searchTitle(query string) string {
	if query == "" {
		return "Videos"
	}
	return "Videos matching " + `"` + query + `"`
}
