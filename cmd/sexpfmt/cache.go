package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sexpfmt/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the canonical-verdict disk cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop every cached verdict",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenDiskCache("sexpfmt")
		if err != nil {
			return fmt.Errorf("cache clean: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("cache clean: %w", err)
		}
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "cache cleaned")
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
}
