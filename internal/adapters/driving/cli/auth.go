package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the adventofcode.com session cookie",
	Long: `Manages the session cookie used to download personal puzzle inputs.

The cookie is the value of the 'session' cookie on adventofcode.com after
logging in with a browser. It is stored in the aoc config file.`,
	RunE: runAuthStatus,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a session cookie",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a session cookie is stored",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session cookie",
	RunE:  runAuthLogout,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Paste your adventofcode.com session cookie: ")
	token := readSecret()
	cmd.Println()

	if err := settingsService.SetSession(token); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	cmd.Printf("Session stored in %s\n", settingsService.Path())
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	if settings.HasSession() {
		cmd.Printf("Logged in (session %s)\n", maskToken(settings.Session))
	} else {
		cmd.Println("Not logged in. Run 'aoc auth login' to store a session cookie.")
	}
	cmd.Printf("Config: %s\n", settingsService.Path())
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.ClearSession(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	cmd.Println("Session removed.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readSecret() string {
	// Read without echo so the cookie stays out of terminal scrollback
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(secret)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
