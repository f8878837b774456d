package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Deetschoe/monkeycmd/internal/game"
	"github.com/Deetschoe/monkeycmd/internal/infrastructure/sqlite"
	"github.com/Deetschoe/monkeycmd/internal/ui/styles"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your best run and recent sessions",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	osTarget, err := cfg.ResolveOS()
	if err != nil {
		return err
	}

	db, err := sqlite.NewDB(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("opening score database: %w", err)
	}
	defer func() { _ = db.Close() }()
	repo := db.RunRepository()

	out := cmd.OutOrStdout()

	best, err := repo.Best(string(osTarget))
	switch {
	case err == nil:
		fmt.Fprintln(out, styles.InstructionStyle.Render(fmt.Sprintf("Best on %s", osTarget)))
		fmt.Fprintf(out, "  %.1f commands/min · %.0f%% accuracy · streak %d\n\n",
			best.CPM, best.Accuracy*100, best.BestStreak)
	case errors.As(err, new(*game.RunNotFoundError)):
		fmt.Fprintf(out, "No runs recorded for %s yet.\n\n", osTarget)
	default:
		return err
	}

	runs, err := repo.Recent(10)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Fprintln(out, styles.InstructionStyle.Render("Recent sessions"))
	for _, r := range runs {
		fmt.Fprintf(out, "  %s  %-8s %5.1f cpm  %3.0f%%  %d/%d\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.OS, r.CPM, r.Accuracy*100, r.Correct, r.Attempted)
	}
	return nil
}
