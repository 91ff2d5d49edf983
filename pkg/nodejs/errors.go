package nodejs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotPreloaded is returned by accessors before the first successful
// Preload. Check with errors.Is.
var ErrNotPreloaded = errors.New("release index is empty: call Preload first")

// FetchError indicates that fetching or decoding the release index failed.
// The cache is left untouched; a later Preload retries from scratch.
//
// The underlying failure can be accessed via errors.Unwrap.
type FetchError struct {
	URL   string
	cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch release index %s: %v", e.URL, e.cause)
}

func (e *FetchError) Unwrap() error { return e.cause }

// VersionNotFoundError indicates a lookup against a populated index for a
// version that does not exist. Known holds every valid identifier, in
// chronological order, for diagnostics.
type VersionNotFoundError struct {
	Version string
	Known   []string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %q not found, known versions: %s", e.Version, strings.Join(e.Known, ", "))
}
