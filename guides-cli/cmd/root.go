package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds the guides command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "guides",
		Short: "Browse and review local restaurants, online or offline",
		Long: `guides talks to the restaurant API and keeps a local mirror of the
last successful responses, so listings, details and reviews stay readable
without a network connection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "guides.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newRestaurantsCmd(opts),
		newNeighborhoodsCmd(opts),
		newCuisinesCmd(opts),
		newFavoriteCmd(opts, true),
		newFavoriteCmd(opts, false),
		newReviewsCmd(opts),
		newPrecacheCmd(opts),
		newFetchCmd(opts),
		newConfigCmd(opts),
	)
	return rootCmd
}

func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
