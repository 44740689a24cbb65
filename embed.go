// Package tpsearch provides embedded runtime resources (the sample provider
// list and the surprise art) and an overlay filesystem that checks local disk
// first, falling back to embedded.
package tpsearch

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

// SampleFile is the name of the embedded provider list inside Data.
const SampleFile = "providers.csv"

// ArtFile is the name of the surprise art inside Art.
const ArtFile = "penguins.txt"

//go:embed data/providers.csv
var rawData embed.FS

//go:embed art/penguins.txt
var rawArt embed.FS

// Data is the embedded sample dataset filesystem with the "data/" prefix stripped.
var Data = mustSub(rawData, "data")

// Art is the embedded art filesystem with the "art/" prefix stripped.
var Art = mustSub(rawArt, "art")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// OverlayFS returns a filesystem that checks localDir on disk first,
// falling back to the embedded filesystem for files not found locally.
func OverlayFS(localDir string, embedded fs.FS) fs.FS {
	return overlayFS{localDir: localDir, embedded: embedded}
}

type overlayFS struct {
	localDir string
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if o.localDir != "" {
		if f, err := os.Open(filepath.Join(o.localDir, filepath.FromSlash(name))); err == nil {
			return f, nil
		}
	}
	return o.embedded.Open(name)
}
