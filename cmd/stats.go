package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prakriti/internal/quiz"
	"github.com/abhisek/prakriti/internal/recommend"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics over saved results",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.AttemptRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("compute stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if stats.Total == 0 {
			fmt.Fprintln(out, "No saved results yet.")
			return nil
		}

		fmt.Fprintf(out, "Results:   %d\n", stats.Total)
		fmt.Fprintf(out, "First:     %s\n", stats.First.Local().Format("2006-01-02 15:04"))
		fmt.Fprintf(out, "Latest:    %s\n\n", stats.Last.Local().Format("2006-01-02 15:04"))

		fmt.Fprintln(out, "Dominant dosha:")
		for _, d := range recommend.Outcomes() {
			n := stats.ByDominant[string(d)]
			fmt.Fprintf(out, "  %-9s %3d  (%.0f%%)\n", d.DisplayName(), n, share(n, stats.Total))
		}

		fmt.Fprintln(out, "\nAverage percentages:")
		avgs := map[quiz.Category]float64{
			quiz.CategoryVata:  stats.AvgVata,
			quiz.CategoryPitta: stats.AvgPitta,
			quiz.CategoryKapha: stats.AvgKapha,
		}
		for _, c := range quiz.AllCategories() {
			fmt.Fprintf(out, "  %-9s %5.1f%%\n", c.DisplayName(), avgs[c])
		}
		return nil
	},
}

func share(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}
