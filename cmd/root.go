/*
Copyright © 2025 Katie Mulliken <katie@mulliken.net>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/seckatie/placesexport/internal/config"
	"github.com/seckatie/placesexport/internal/core"
	"github.com/seckatie/placesexport/internal/core/db"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "placesexport",
	Short: "Export Firefox bookmarks from places.sqlite to CSV",
	Long: `Export the bookmarks in a Firefox places.sqlite database to a CSV file.

Only bookmarked places that were visited at least once and whose URL starts
with "http" are exported, most recently bookmarked first. Visit and bookmark
timestamps are written as "YYYY-MM-DD HH:MM:SS" in the local time zone
unless --utc or a configured timezone says otherwise.

Without --places, candidate databases found in the usual Firefox profile
directories are listed and nothing is written. For example:

  placesexport -p ~/.mozilla/firefox/abcd1234.default-release/places.sqlite -o bookmarks.csv`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnvFile(".env"); err != nil {
			log.Warnf("Ignoring .env: %v", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if cfg.Places == "" {
			return printDiscovery(cmd, cfg)
		}

		res, err := exportPlaces(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		log.Printf("Exported %d bookmark(s) to %s", res.Records, res.Output)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringP("places", "p", "", "Path to the Firefox bookmarks database (places.sqlite)")
	rootCmd.Flags().StringP("output", "o", config.Default().Output, "Output CSV file")
	rootCmd.Flags().Bool("utc", false, "Write timestamps in UTC instead of local time")
	rootCmd.Flags().Bool("immutable", false, "Open the database without locking (for use while Firefox is running)")
}

// loadConfig reads the config file and lets explicitly set flags win over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to read --config: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("places") {
		if cfg.Places, err = flags.GetString("places"); err != nil {
			return nil, fmt.Errorf("failed to read --places: %w", err)
		}
	}
	if flags.Changed("output") {
		if cfg.Output, err = flags.GetString("output"); err != nil {
			return nil, fmt.Errorf("failed to read --output: %w", err)
		}
	}
	// Subcommands only see the persistent flags, so every lookup is gated
	// on Changed, which is false for flags a command does not define.
	if flags.Changed("utc") {
		utc, err := flags.GetBool("utc")
		if err != nil {
			return nil, fmt.Errorf("failed to read --utc: %w", err)
		}
		if utc {
			cfg.Timezone = "UTC"
		}
	}
	if flags.Changed("immutable") {
		if cfg.Immutable, err = flags.GetBool("immutable"); err != nil {
			return nil, fmt.Errorf("failed to read --immutable: %w", err)
		}
	}
	if flags.Changed("verbose") {
		verbose, err := flags.GetBool("verbose")
		if err != nil {
			return nil, fmt.Errorf("failed to read --verbose: %w", err)
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
	}

	if err := setupLogging(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetOutput(w)
	log.SetLevel(lvl)
	return nil
}

// exportPlaces opens the configured places database and writes the CSV.
func exportPlaces(ctx context.Context, cfg *config.Config) (core.ExportResult, error) {
	loc, err := cfg.Location()
	if err != nil {
		return core.ExportResult{}, err
	}

	database, err := db.Open(cfg.Places, db.OpenOptions{Immutable: cfg.Immutable})
	if err != nil {
		return core.ExportResult{}, err
	}
	log.Debugf("Exporting bookmarks from %s to %s", database.Path(), cfg.Output)
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	return core.ExportFile(ctx, database, cfg.Output, core.ExportOptions{Location: loc})
}

// profileRoots returns the configured profile roots or the OS defaults.
func profileRoots(cfg *config.Config) []string {
	if len(cfg.ProfileRoots) > 0 {
		return cfg.ProfileRoots
	}
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
	}
	return core.DefaultProfileRoots(home, runtime.GOOS, os.Getenv("APPDATA"))
}

// printDiscovery lists candidate places databases followed by the usage.
func printDiscovery(cmd *cobra.Command, cfg *config.Config) error {
	candidates, err := core.FindPlacesFiles(profileRoots(cfg))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "No %s specified, try any of these:\n\n", core.PlacesFileName)
	for _, c := range candidates {
		fmt.Fprintln(out, c)
	}
	fmt.Fprintln(out)
	return cmd.Usage()
}
