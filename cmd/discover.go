/*
Copyright © 2025 Katie Mulliken <katie@mulliken.net>
*/
package cmd

import (
	"fmt"

	"github.com/seckatie/placesexport/internal/core"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List places.sqlite files found in Firefox profile directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		candidates, err := core.FindPlacesFiles(profileRoots(cfg))
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			log.Println("No Firefox profiles found.")
			return nil
		}
		for _, c := range candidates {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}
