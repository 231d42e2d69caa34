package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	fetchDay   int
	fetchForce bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a puzzle input",
	Long: `Downloads your personal puzzle input from adventofcode.com and writes
it to the conventional per-day location (inputs/d<NN>.txt by default).

Requires a session cookie; run 'aoc auth login' first. An existing input
file is left untouched unless --force is given.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVarP(&fetchDay, "day", "d", 0, "puzzle day (1-25)")
	fetchCmd.Flags().BoolVar(&fetchForce, "force", false, "overwrite an existing input file")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	if inputDownloader == nil {
		return errors.New("downloader service not configured")
	}

	if !cmd.Flags().Changed("day") {
		return errors.New("missing required flag: -d/--day")
	}

	path, err := inputDownloader.Download(cmd.Context(), fetchDay, fetchForce)
	if err != nil {
		return fmt.Errorf("fetch day %d: %w", fetchDay, err)
	}

	cmd.Printf("Input for day %d is at %s\n", fetchDay, path)
	return nil
}
