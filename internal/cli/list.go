package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listOpts holds the command-line flags for the list command.
type listOpts struct {
	ltsOnly bool // only releases with an LTS codename
	limit   int  // keep only the newest N releases, 0 for all
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var opts listOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print release identifiers in chronological order",
		Long: `Print every known Node.js release identifier, oldest first.

Examples:
  nodedex list                # all releases
  nodedex list --lts          # LTS releases only
  nodedex list --limit 10     # the 10 newest releases`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := preloadIndex(cmd)
			if err != nil {
				return err
			}

			versions, err := idx.Versions()
			if err != nil {
				return err
			}

			lines := make([]string, 0, len(versions))
			for _, v := range versions {
				rel, err := idx.Get(v)
				if err != nil {
					return err
				}
				if opts.ltsOnly && !rel.IsLTS() {
					continue
				}

				line := rel.Version
				if rel.IsLTS() {
					line += " " + styleLTS.Render("("+rel.LTS+")")
				}
				if rel.Security {
					line += " " + styleSecurity.Render("security")
				}
				lines = append(lines, line)
			}

			if opts.limit > 0 && len(lines) > opts.limit {
				lines = lines[len(lines)-opts.limit:]
			}
			for _, line := range lines {
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.ltsOnly, "lts", false, "only list LTS releases")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "only list the newest N releases")

	return cmd
}
