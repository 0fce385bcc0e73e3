package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Iron-Ham/tally/internal/tracker"
	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List the achievements and what unlocks them",
	Args:  cobra.NoArgs,
	RunE:  runAchievements,
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

func runAchievements(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tGOAL\tREQUIRES")
	for _, r := range tracker.Rules() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Achievement, r.Name, r.Summary, requirement(r))
	}
	return tw.Flush()
}

// requirement describes a rule's thresholds, e.g. "10 completed tasks, 5 notes".
func requirement(r tracker.Rule) string {
	var parts []string
	if r.MinCompleted > 0 {
		parts = append(parts, fmt.Sprintf("%d completed tasks", r.MinCompleted))
	}
	if r.MinNotes > 0 {
		parts = append(parts, fmt.Sprintf("%d notes", r.MinNotes))
	}
	return strings.Join(parts, ", ")
}
