package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
	"github.com/Gisleburt/advent-of-code-2023/internal/logger"
)

// watchDebounce coalesces the event bursts editors produce on save.
const watchDebounce = 100 * time.Millisecond

var (
	watchDay  int
	watchPart int
)

var watchCmd = &cobra.Command{
	Use:   "watch [input-path]",
	Short: "Re-run a puzzle whenever its input changes",
	Long: `Runs the solver for a day and part, then re-runs it every time the
input file is written. Useful while iterating on a puzzle input.

Solver and input errors are reported but do not stop the watch.
Press Ctrl-C to stop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVarP(&watchDay, "day", "d", 0, "puzzle day (1-25)")
	watchCmd.Flags().IntVarP(&watchPart, "part", "p", 0, "puzzle part (1 or 2)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if runnerService == nil {
		return errors.New("runner service not configured")
	}

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

	req, err := domain.NewPuzzleRequest(watchDay, watchPart, inputPath)
	if err != nil {
		return err
	}
	if req.InputPath == "" {
		req.InputPath = configuredInputPath(req.Day)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck // watcher close failure is not actionable

	// Watch the containing directory rather than the file itself so
	// editors that replace the file on save keep triggering events.
	path := req.ResolvedInputPath()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for %s (Ctrl-C to stop)\n", path, req)
	return watchLoop(ctx, cmd, watcher, req)
}

// watchLoop re-runs the request on every debounced change to its input
// file until the context is cancelled.
func watchLoop(ctx context.Context, cmd *cobra.Command, watcher *fsnotify.Watcher, req domain.PuzzleRequest) error {
	runAndReport(ctx, cmd, req)

	rerun := make(chan struct{}, 1)
	var pending *time.Timer
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isInputEvent(event, req.ResolvedInputPath()) {
				continue
			}
			logger.Debug("input event: %s", event)
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(watchDebounce, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case <-rerun:
			runAndReport(ctx, cmd, req)
		}
	}
}

// isInputEvent reports whether the event is a content change to the
// watched input file. Chmod and unrelated-file events are ignored.
func isInputEvent(event fsnotify.Event, path string) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Clean(path)
}

// runAndReport runs the request once. Failures are reported to stderr
// so the watch keeps going while the user fixes the input.
func runAndReport(ctx context.Context, cmd *cobra.Command, req domain.PuzzleRequest) {
	result, err := runnerService.Run(ctx, req)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	cmd.Println(result.Answer)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s took %s\n", req, result.Duration)
}
