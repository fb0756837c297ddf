package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/videogrid/internal/diff"
	"github.com/ytget/videogrid/internal/render"
	"github.com/ytget/videogrid/internal/search"
)

// DiffOptions
type DiffOptions struct {
	Verify bool
}

func addDiff(topLevel *cobra.Command, o *RootOptions) {
	do := &DiffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <from-query> <to-query>",
		Short: "Show the edit script between two searches.",
		Long: `Show the edit script that turns the grid for one search into the grid
for another. Use "" for the unfiltered catalog.`,
		Example: `
videogrid diff "" swift
videogrid diff swift ui --verify
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			videos, err := o.Videos()
			if err != nil {
				return err
			}

			from, err := search.BuildSnapshot(search.Filter(videos, args[0]))
			if err != nil {
				return err
			}
			to, err := search.BuildSnapshot(search.Filter(videos, args[1]))
			if err != nil {
				return err
			}

			titles := make(map[string]string, len(videos))
			for _, v := range videos {
				titles[v.ID] = v.DisplayTitle()
			}
			p := &Printer{Out: cmd.OutOrStdout(), ShowID: o.showID}

			// The list prints the batch it applies, so the script shown is
			// the one a grid would animate.
			printing, rendered := false, false
			list := render.NewList(render.ViewFunc(func(batch render.Batch) {
				if printing {
					rendered = true
					p.Script(batch.Script, titles)
				}
			}))
			if err := list.Apply(from, false); err != nil {
				return err
			}

			printing = true
			if err := list.Apply(to, true); err != nil {
				return err
			}
			if !rendered {
				p.Script(diff.Script{}, titles)
			}

			if do.Verify {
				got, want := list.Snapshot().ItemIDs(), to.ItemIDs()
				if fmt.Sprint(got) != fmt.Sprint(want) {
					return fmt.Errorf("applied list %v does not match %v", got, want)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "verified")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&do.Verify, "verify", false,
		"Check that applying the script reproduces the target search.")

	topLevel.AddCommand(cmd)
}
