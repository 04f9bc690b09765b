package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"local-guides/swcache"

	"github.com/spf13/cobra"
)

func newFetchCmd(opts *rootOptions) *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch [url]",
		Short: "GET a URL through the offline caching policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			ref, err := a.siteURL.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid url %q: %w", args[0], err)
			}
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, ref.String(), nil)
			if err != nil {
				return err
			}
			resp, err := a.http.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}

			source := "network"
			if resp.Header.Get(swcache.CacheHitHeader) != "" {
				source = "cache"
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s (%s, %d bytes)\n", resp.Status, ref, source, len(body))

			if output == "" {
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}
			return os.WriteFile(output, body, 0644)
		},
	}
	fetchCmd.Flags().StringP("output", "o", "", "write the body to a file instead of stdout")
	return fetchCmd
}
