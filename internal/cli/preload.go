package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodedex/nodedex/pkg/nodejs"
)

// preloadIndex builds an index from the command's config and populates it,
// showing a spinner while the request is in flight. Every command starts
// here; the index answers all further lookups from memory.
func preloadIndex(cmd *cobra.Command) (*nodejs.Index, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	idx := newIndex(cfg)
	logger.Debugf("Fetching release index from %s", cfg.Endpoint)

	p := newProgress(logger)
	sp := newSpinner(ctx, "Fetching release index...")
	sp.start()
	err := idx.Preload(ctx)
	sp.stop()
	if err != nil {
		return nil, err
	}

	versions, err := idx.Versions()
	if err != nil {
		return nil, err
	}
	p.done(fmt.Sprintf("Loaded %d releases", len(versions)))
	return idx, nil
}
