// Package cli implements the cobra command tree for the aoc binary.
// Commands talk to the core exclusively through driving ports; the
// concrete services are injected by cmd/aoc/main.go via the Set
// functions before Execute runs.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driving"
	"github.com/Gisleburt/advent-of-code-2023/internal/logger"
)

// version is the version string, set at build time via ldflags.
var version = "dev"

// Injected services. Nil until the corresponding Set function is called.
var (
	runnerService   driving.PuzzleRunner
	solverRegistry  driving.SolverRegistry
	settingsService driving.SettingsService
	inputDownloader driving.InputDownloader
)

var (
	runDay     int
	runPart    int
	runVerbose bool
	runTime    bool
)

var rootCmd = &cobra.Command{
	Use:   "aoc [input-path]",
	Short: "Run Advent of Code 2023 solutions",
	Long: `Runs the solver for an Advent of Code 2023 puzzle and prints the answer.

The puzzle is selected with -d <day> and -p <part>. Input is read from the
optional positional file path, or from inputs/d<NN>.txt when omitted.`,
	Example: `  aoc -d 1 -p 1
  aoc -d 14 -p 2 testdata/example.txt`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(runVerbose)
	},
	RunE: runRoot,
}

// SetRunner sets the puzzle runner used by the root command.
func SetRunner(r driving.PuzzleRunner) {
	runnerService = r
}

// SetSolverRegistry sets the registry used by the days and tui commands.
func SetSolverRegistry(r driving.SolverRegistry) {
	solverRegistry = r
}

// SetSettingsService sets the settings service used by the auth commands.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetInputDownloader sets the downloader used by the fetch command.
func SetInputDownloader(d driving.InputDownloader) {
	inputDownloader = d
}

// Execute runs the root command. Returns the error for main to convert
// into a non-zero exit status.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().IntVarP(&runDay, "day", "d", 0, "puzzle day (1-25)")
	rootCmd.Flags().IntVarP(&runPart, "part", "p", 0, "puzzle part (1 or 2)")
	rootCmd.Flags().BoolVar(&runTime, "time", false, "print the solver's elapsed time to stderr")
	rootCmd.PersistentFlags().BoolVarP(&runVerbose, "verbose", "v", false, "enable verbose logging")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if runnerService == nil {
		return errors.New("runner service not configured")
	}

	// Each missing flag gets its own message so the user knows exactly
	// which one to add.
	if !cmd.Flags().Changed("day") {
		return errors.New("missing required flag: -d/--day")
	}
	if !cmd.Flags().Changed("part") {
		return errors.New("missing required flag: -p/--part")
	}

	inputPath := ""
	if len(args) > 0 {
		inputPath = args[0]
	}

	req, err := domain.NewPuzzleRequest(runDay, runPart, inputPath)
	if err != nil {
		return err
	}
	if req.InputPath == "" {
		req.InputPath = configuredInputPath(req.Day)
	}

	result, err := runnerService.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	// The answer goes to stdout on its own so it stays pipeable.
	cmd.Println(result.Answer)

	if runTime {
		fmt.Fprintf(cmd.ErrOrStderr(), "day %d part %d took %s\n", result.Day, result.Part, result.Duration)
	}

	return nil
}

// configuredInputPath returns the per-day input path under the inputs
// directory from settings, or empty to fall back to the convention.
// Settings are consulted only after the request has validated, so bad
// arguments never trigger a config read.
func configuredInputPath(day int) string {
	if settingsService == nil {
		return ""
	}
	settings, err := settingsService.Get()
	if err != nil || settings.InputsDir == "" || settings.InputsDir == domain.DefaultInputsDir {
		return ""
	}
	return domain.InputPathIn(settings.InputsDir, day)
}
