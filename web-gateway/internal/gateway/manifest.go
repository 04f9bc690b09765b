package gateway

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"local-guides/swcache"

	"github.com/bmatcuk/doublestar/v4"
)

const revisionLength = 12

// BuildManifest returns the default pages followed by every file under
// siteDir matching one of globs, sorted. Missing pages are skipped.
func BuildManifest(siteDir string, globs []string) ([]swcache.PrecacheEntry, error) {
	fsys := os.DirFS(siteDir)

	var entries []swcache.PrecacheEntry
	seen := make(map[string]bool)
	add := func(name string) error {
		if seen[name] {
			return nil
		}
		seen[name] = true
		revision, err := fileRevision(fsys, name)
		if err != nil {
			return err
		}
		entries = append(entries, swcache.PrecacheEntry{URL: name, Revision: revision})
		return nil
	}

	for _, page := range swcache.DefaultPrecache() {
		if _, err := fs.Stat(fsys, page.URL); err != nil {
			continue
		}
		if err := add(page.URL); err != nil {
			return nil, err
		}
	}

	var assets []string
	for _, pattern := range globs {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid precache glob %q: %w", pattern, err)
		}
		assets = append(assets, matches...)
	}
	sort.Strings(assets)
	for _, name := range assets {
		if err := add(name); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func fileRevision(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:revisionLength], nil
}
