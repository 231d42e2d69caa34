package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
)

var (
	daysHeaderStyle = lipgloss.NewStyle().Bold(true)
	daysBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	daysFooterStyle = lipgloss.NewStyle().Faint(true)
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List the implemented days",
	Long: `Lists which puzzle days have a registered solver and for which parts.
Purely informational; the list never influences how a run is dispatched.`,
	RunE: runDays,
}

func init() {
	rootCmd.AddCommand(daysCmd)
}

func runDays(cmd *cobra.Command, _ []string) error {
	if solverRegistry == nil {
		return errors.New("solver registry not configured")
	}

	days := solverRegistry.Days()
	if len(days) == 0 {
		cmd.Println("No days implemented yet.")
		return nil
	}

	stars := 0
	var b strings.Builder
	b.WriteString(daysHeaderStyle.Render("Day  Parts"))
	for _, day := range days {
		parts := make([]string, len(day.Parts))
		for i, p := range day.Parts {
			parts[i] = strconv.Itoa(p)
		}
		b.WriteString(fmt.Sprintf("\n%3d  %s", day.Day, strings.Join(parts, " ")))
		stars += len(day.Parts)
	}

	cmd.Println(daysBoxStyle.Render(b.String()))
	cmd.Println(daysFooterStyle.Render(
		fmt.Sprintf("%d of %d days implemented, %d stars", len(days), domain.MaxDay, stars)))
	return nil
}
