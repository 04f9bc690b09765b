package cmd

import (
	"fmt"
	"os"

	"local-guides/config"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the guides configuration",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			if _, err := os.Stat(opts.cfgFile); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", opts.cfgFile)
			}
			if err := config.Default().Save(opts.cfgFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.cfgFile)
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
