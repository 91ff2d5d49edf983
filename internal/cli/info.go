package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nodedex/nodedex/pkg/nodejs"
)

// newInfoCmd creates the info command.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <version>",
		Short: "Show the metadata of one release",
		Long: `Show everything the release index records for a single release:
date, LTS status, bundled component versions, and distributed files.

The version is matched exactly against canonical identifiers (no leading
"v"), e.g. "4.9.1".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := preloadIndex(cmd)
			if err != nil {
				return err
			}

			rel, err := idx.Get(strings.TrimPrefix(args[0], "v"))
			if err != nil {
				var nf *nodejs.VersionNotFoundError
				if errors.As(err, &nf) {
					printError("Version %q not found (%d releases known)", nf.Version, len(nf.Known))
					printDetail("Run '%s list' to see valid identifiers", appName)
					return fmt.Errorf("unknown version %q", nf.Version)
				}
				return err
			}

			printRelease(rel)
			return nil
		},
	}
}

// printRelease renders one release as labeled key/value lines.
func printRelease(rel nodejs.Release) {
	fmt.Println(styleTitle.Render("Node.js " + rel.Version))
	printKeyValue("Date", rel.Date.Format(time.DateOnly))

	lts := "no"
	if rel.IsLTS() {
		lts = styleLTS.Render(rel.LTS)
	}
	printKeyValue("LTS", lts)

	if rel.Security {
		printKeyValue("Security", styleSecurity.Render("yes"))
	}

	printKeyValue("V8", rel.V8)
	printOptional("npm", rel.NPM)
	printOptional("libuv", rel.UV)
	printOptional("zlib", rel.Zlib)
	printOptional("OpenSSL", rel.OpenSSL)
	printOptional("Modules", rel.Modules)

	if len(rel.Files) > 0 {
		printKeyValue("Files", fmt.Sprintf("%d artifacts", len(rel.Files)))
		for _, f := range rel.Files {
			printDetail("%s", f)
		}
	}
}

// printOptional prints a key/value line only when the value is present.
func printOptional(key string, value *string) {
	if value != nil {
		printKeyValue(key, *value)
	}
}
