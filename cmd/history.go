package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/prakriti/internal/quiz"
	"github.com/abhisek/prakriti/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("--limit must not be negative")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		attempts, err := st.AttemptRepo().QueryAttempts(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No saved results yet.")
			return nil
		}

		fmt.Fprintf(out, "%-17s  %-9s  %s  %s\n", "Date", "Dominant", doshaHeader(), "Answers")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, a := range attempts {
			d, err := quiz.ParseDominant(a.Dominant)
			name := a.Dominant
			if err == nil {
				name = d.DisplayName()
			}
			fmt.Fprintf(out, "%-17s  %-9s  %4d%%  %4d%%  %4d%%  %s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04"),
				name, a.VataPct, a.PittaPct, a.KaphaPct,
				strings.Join(quiz.Letters(a.Answers), ""))
		}
		fmt.Fprintf(out, "\n%d results\n", len(attempts))
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum results to show (0 = all)")
}
