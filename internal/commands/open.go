package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytget/videogrid/internal/model"
	"github.com/ytget/videogrid/internal/platform"
)

var (
	errNoMatch   = errors.New("no video matches")
	errAmbiguous = errors.New("more than one video matches")
)

// OpenOptions
type OpenOptions struct {
	DryRun bool
}

func addOpen(topLevel *cobra.Command, o *RootOptions) {
	oo := &OpenOptions{}

	cmd := &cobra.Command{
		Use:   "open <id-prefix>",
		Short: "Open a video's link in the browser.",
		Long: `Open a video's link in the browser. The video is picked by a prefix of
its identity; use "list --show-id" to see identities.`,
		Example: `
videogrid open 3f2a
videogrid open 3f2a --dry-run
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videos, err := o.Videos()
			if err != nil {
				return err
			}

			v, err := findVideo(videos, args[0])
			if err != nil {
				return err
			}

			u, err := platform.ValidateLink(v.Href())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.New(color.Bold).Sprint(v.DisplayTitle()), u)
			if oo.DryRun {
				return nil
			}
			return platform.OpenLink(u.String())
		},
	}

	cmd.Flags().BoolVar(&oo.DryRun, "dry-run", false,
		"Print the link instead of opening it.")

	topLevel.AddCommand(cmd)
}

// findVideo returns the single video whose identity starts with prefix.
func findVideo(videos []model.Video, prefix string) (model.Video, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return model.Video{}, fmt.Errorf("%w: empty identity", errNoMatch)
	}

	var found []model.Video
	for _, v := range videos {
		if v.ID == prefix {
			return v, nil
		}
		if strings.HasPrefix(strings.ToLower(v.ID), prefix) {
			found = append(found, v)
		}
	}

	switch len(found) {
	case 0:
		return model.Video{}, fmt.Errorf("%w %q", errNoMatch, prefix)
	case 1:
		return found[0], nil
	default:
		return model.Video{}, fmt.Errorf("%w %q: %d candidates", errAmbiguous, prefix, len(found))
	}
}
