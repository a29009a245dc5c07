package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the quiz questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s (%s)\n", bank.Title, bank.ID)
		fmt.Fprintln(out, strings.Repeat("─", 60))

		for _, q := range bank.Questions {
			fmt.Fprintf(out, "%2d. %s\n", q.Ordinal+1, q.Prompt)
			for _, o := range q.Options {
				fmt.Fprintf(out, "      %s  %-6s %s\n", o.Category.Letter(), o.Category.DisplayName(), o.Text)
			}
		}

		fmt.Fprintf(out, "\n%d questions\n", len(bank.Questions))
		return nil
	},
}
