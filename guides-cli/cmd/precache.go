package cmd

import (
	"fmt"

	"local-guides/swcache"

	"github.com/spf13/cobra"
)

func newPrecacheCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "precache",
		Short: "Store the site's pages and assets for offline use",
		Long: `Fetches index.html, restaurant.html and every entry of the site's
precache manifest into the local precache. Entries whose revision did not
change are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			entries := swcache.DefaultPrecache()
			manifest, err := a.transport.FetchManifest(cmd.Context(), a.siteURL)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: no precache manifest (%v), caching pages only\n", err)
			}
			entries = mergeEntries(entries, manifest)

			fetched, err := a.transport.Precache(cmd.Context(), a.siteURL, entries)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Precached %d of %d entries from %s\n", fetched, len(entries), a.siteURL)
			return nil
		},
	}
}

// mergeEntries appends extra to base, letting extra override revisions.
func mergeEntries(base, extra []swcache.PrecacheEntry) []swcache.PrecacheEntry {
	index := make(map[string]int, len(base)+len(extra))
	merged := make([]swcache.PrecacheEntry, 0, len(base)+len(extra))
	for _, entry := range append(base, extra...) {
		if i, ok := index[entry.URL]; ok {
			merged[i] = entry
			continue
		}
		index[entry.URL] = len(merged)
		merged = append(merged, entry)
	}
	return merged
}
