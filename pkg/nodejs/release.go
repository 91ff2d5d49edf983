package nodejs

import (
	"fmt"
	"time"
)

// Release holds the metadata the release index publishes for a single
// Node.js release.
//
// Version is the canonical identifier without the leading "v" marker
// (e.g. "4.9.1"). Files preserves the order and duplicates of the upstream
// data. The bundled component versions NPM, UV, Zlib, OpenSSL, and Modules
// are nil when the upstream entry omits them; early releases predate most
// of them.
type Release struct {
	Version  string    // canonical identifier, e.g. "4.9.1"
	Date     time.Time // calendar date of the release
	Files    []string  // distributed artifact names
	V8       string    // bundled V8 version
	NPM      *string   // bundled npm version, nil if absent
	UV       *string   // bundled libuv version, nil if absent
	Zlib     *string   // bundled zlib version, nil if absent
	OpenSSL  *string   // bundled OpenSSL version, nil if absent
	Modules  *string   // ABI (NODE_MODULE_VERSION), nil if absent
	LTS      string    // LTS codename (e.g. "Argon"), empty if not an LTS release
	Security bool      // security release flag, passed through from upstream
}

// IsLTS reports whether the release belongs to an LTS line.
func (r Release) IsLTS() bool { return r.LTS != "" }

// Clone returns a copy of the release that shares no mutable state with the
// receiver. The copy is shallow over scalar fields and allocates a fresh
// Files slice.
func (r Release) Clone() Release {
	c := r
	if r.Files != nil {
		c.Files = make([]string, len(r.Files))
		copy(c.Files, r.Files)
	}
	return c
}

// releaseEntry mirrors one element of the upstream index JSON. Version
// carries a leading "v" marker, Date is a YYYY-MM-DD string, and LTS is
// either false or a codename string.
type releaseEntry struct {
	Version  string   `json:"version"`
	Date     string   `json:"date"`
	Files    []string `json:"files"`
	V8       string   `json:"v8"`
	NPM      *string  `json:"npm"`
	UV       *string  `json:"uv"`
	Zlib     *string  `json:"zlib"`
	OpenSSL  *string  `json:"openssl"`
	Modules  *string  `json:"modules"`
	LTS      any      `json:"lts"`
	Security bool     `json:"security"`
}

// normalize builds a fresh Release from a raw index entry. The entry itself
// is never modified.
func (e releaseEntry) normalize() (Release, error) {
	date, err := time.Parse(time.DateOnly, e.Date)
	if err != nil {
		return Release{}, fmt.Errorf("release %s: parse date %q: %w", e.Version, e.Date, err)
	}

	files := make([]string, len(e.Files))
	copy(files, e.Files)

	return Release{
		Version:  canonicalVersion(e.Version),
		Date:     date,
		Files:    files,
		V8:       e.V8,
		NPM:      e.NPM,
		UV:       e.UV,
		Zlib:     e.Zlib,
		OpenSSL:  e.OpenSSL,
		Modules:  e.Modules,
		LTS:      ltsCodename(e.LTS),
		Security: e.Security,
	}, nil
}

// canonicalVersion strips the single non-digit marker character the index
// prefixes versions with (historically always "v").
func canonicalVersion(v string) string {
	if len(v) > 0 && (v[0] < '0' || v[0] > '9') {
		return v[1:]
	}
	return v
}

// ltsCodename extracts the codename from the upstream lts field, which is
// either false or a string.
func ltsCodename(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
