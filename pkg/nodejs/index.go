package nodejs

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/nodedex/nodedex/pkg/httputil"
	"github.com/nodedex/nodedex/pkg/version"
)

// DefaultEndpoint is the public Node.js release index.
const DefaultEndpoint = "https://nodejs.org/download/release/index.json"

// Index is an in-memory cache of the Node.js release index, keyed by
// canonical version identifier and ordered chronologically.
//
// An Index starts empty. The first successful [Index.Preload] populates it
// for the lifetime of the process; there are no update or delete
// operations, and the stored data is never mutated again. Accessors return
// defensive copies, so nothing a caller does to a returned value can leak
// back into the cache.
//
// All methods are safe for concurrent use. Concurrent first Preload calls
// are collapsed into a single upstream request.
type Index struct {
	http     *httputil.Client
	endpoint string

	group singleflight.Group

	mu        sync.RWMutex
	byVersion map[string]Release
	versions  []string
}

// Option configures an Index.
type Option func(*Index)

// WithEndpoint overrides the release index URL. Useful for mirrors and
// tests; empty values are ignored.
func WithEndpoint(url string) Option {
	return func(i *Index) {
		if url != "" {
			i.endpoint = url
		}
	}
}

// WithHTTPClient overrides the HTTP client used for the index request.
// This is the place to impose a custom timeout or transport.
func WithHTTPClient(c *httputil.Client) Option {
	return func(i *Index) {
		if c != nil {
			i.http = c
		}
	}
}

// NewIndex creates an empty Index pointed at [DefaultEndpoint].
func NewIndex(opts ...Option) *Index {
	i := &Index{
		http:     httputil.NewClient(),
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Preload fetches the release index and populates the cache.
//
// Once the cache is populated, Preload returns immediately without any
// network access, so calling it again is free. On failure the cache stays
// empty and the returned error is a [*FetchError] wrapping the cause; a
// later call retries from scratch. Population is all or nothing: readers
// only ever observe an empty or a fully populated cache.
func (i *Index) Preload(ctx context.Context) error {
	if i.populated() {
		return nil
	}

	_, err, _ := i.group.Do("preload", func() (any, error) {
		if i.populated() {
			return nil, nil
		}

		releases, err := i.fetch(ctx)
		if err != nil {
			return nil, &FetchError{URL: i.endpoint, cause: err}
		}
		i.populate(releases)
		return nil, nil
	})
	return err
}

// Get returns the release with the given version identifier.
//
// The identifier is matched exactly against the canonical (unprefixed)
// versions in the cache; there is no fuzzy or partial matching. Numeric
// inputs are stringified first, so Get(4) and Get("4") are equivalent.
// The returned Release is a copy; mutating it does not affect the cache.
//
// Before the first successful Preload, Get fails with [ErrNotPreloaded].
// Unknown versions fail with a [*VersionNotFoundError] listing every valid
// identifier.
func (i *Index) Get(versionInput any) (Release, error) {
	key := versionKey(versionInput)

	i.mu.RLock()
	defer i.mu.RUnlock()

	if len(i.versions) == 0 {
		return Release{}, ErrNotPreloaded
	}
	rel, ok := i.byVersion[key]
	if !ok {
		return Release{}, &VersionNotFoundError{Version: key, Known: copyStrings(i.versions)}
	}
	return rel.Clone(), nil
}

// Versions returns every known version identifier in chronological order.
// The returned slice is a copy; callers may reorder or truncate it freely.
// Before the first successful Preload, Versions fails with [ErrNotPreloaded].
func (i *Index) Versions() ([]string, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if len(i.versions) == 0 {
		return nil, ErrNotPreloaded
	}
	return copyStrings(i.versions), nil
}

func (i *Index) populated() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.versions) > 0
}

// fetch retrieves and normalizes the index. The decoded raw entries are
// left untouched; normalization always builds fresh records.
func (i *Index) fetch(ctx context.Context) ([]Release, error) {
	var entries []releaseEntry
	if err := i.http.GetJSON(ctx, i.endpoint, &entries); err != nil {
		return nil, err
	}

	releases := make([]Release, 0, len(entries))
	for _, e := range entries {
		rel, err := e.normalize()
		if err != nil {
			return nil, err
		}
		releases = append(releases, rel)
	}

	// Chronological order. Node.js version numbering is monotonic by
	// release date apart from hotfix backports, which the index itself
	// orders by version number as well.
	sort.SliceStable(releases, func(a, b int) bool {
		return version.Compare(releases[a].Version, releases[b].Version) < 0
	})
	return releases, nil
}

// populate installs the sorted releases. The first successful preload wins;
// if another goroutine got there in between, the existing state is kept.
func (i *Index) populate(releases []Release) {
	byVersion := make(map[string]Release, len(releases))
	versions := make([]string, 0, len(releases))
	for _, rel := range releases {
		if _, dup := byVersion[rel.Version]; dup {
			continue
		}
		byVersion[rel.Version] = rel
		versions = append(versions, rel.Version)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if len(i.versions) > 0 {
		return
	}
	i.byVersion = byVersion
	i.versions = versions
}

// versionKey stringifies a lookup input. Strings pass through untouched;
// numeric inputs such as 4 become "4".
func versionKey(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func copyStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
