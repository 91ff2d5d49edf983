// Package nodejs provides a client-side cache of the public Node.js
// release index.
//
// # Overview
//
// The index at https://nodejs.org/download/release/index.json lists every
// Node.js release together with its date, distributed files, bundled
// component versions, and LTS status. This package fetches that document
// once, normalizes it (canonical unprefixed versions, parsed dates), sorts
// it chronologically, and answers lookups from memory for the rest of the
// process lifetime.
//
// # Usage
//
//	idx := nodejs.NewIndex()
//	if err := idx.Preload(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	rel, err := idx.Get("4.9.1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rel.Version, rel.LTS)
//
// Preload must complete successfully before Get or Versions return data;
// until then both fail with [ErrNotPreloaded].
package nodejs
