package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/prakriti/internal/attempt"
	"github.com/abhisek/prakriti/internal/quiz"
	"github.com/abhisek/prakriti/internal/recommend"
)

// scoreReport is the yaml form of a scored answer list.
type scoreReport struct {
	Answers         []string         `yaml:"answers"`
	Dominant        string           `yaml:"dominant"`
	Percentages     scorePercentages `yaml:"percentages"`
	Description     string           `yaml:"description"`
	Recommendations []scoreProduct   `yaml:"recommendations"`
	AttemptID       string           `yaml:"attempt_id,omitempty"`
}

type scorePercentages struct {
	Vata  int `yaml:"vata"`
	Pitta int `yaml:"pitta"`
	Kapha int `yaml:"kapha"`
}

type scoreProduct struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

var scoreCmd = &cobra.Command{
	Use:   "score <answer>...",
	Short: "Score a list of answers without the TUI",
	Long: `Score answers given in question order. Each answer is a dosha name
(vata, pitta, kapha) or its letter (A, B, C).

Example:
  prakriti score A A B C --save`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		if format != "text" && format != "yaml" {
			return fmt.Errorf("unknown output format %q (want text or yaml)", format)
		}

		labels, err := parseLabels(args)
		if err != nil {
			return err
		}
		q, err := quiz.Replay(labels)
		if err != nil {
			return fmt.Errorf("score answers: %w", err)
		}
		res, _ := q.Result()
		report := buildScoreReport(labels, res)

		if save, _ := cmd.Flags().GetBool("save"); save {
			id, err := saveReplay(cmd, q)
			if err != nil {
				return err
			}
			report.AttemptID = id
		}

		if format == "yaml" {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			return enc.Close()
		}
		printScoreReport(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringP("output", "o", "text", "Output format: text or yaml")
	scoreCmd.Flags().Bool("save", false, "Save the result to history")
}

func parseLabels(args []string) ([]quiz.Category, error) {
	labels := make([]quiz.Category, 0, len(args))
	for i, a := range args {
		c, err := quiz.ParseCategory(a)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i+1, err)
		}
		labels = append(labels, c)
	}
	return labels, nil
}

func buildScoreReport(labels []quiz.Category, res quiz.Result) scoreReport {
	answers := make([]string, len(labels))
	for i, c := range labels {
		answers[i] = string(c)
	}
	r := scoreReport{
		Answers:  answers,
		Dominant: string(res.Dominant),
		Percentages: scorePercentages{
			Vata:  res.Percentages.Vata,
			Pitta: res.Percentages.Pitta,
			Kapha: res.Percentages.Kapha,
		},
		Description: recommend.Describe(res.Dominant),
	}
	for _, p := range recommend.For(res.Dominant) {
		r.Recommendations = append(r.Recommendations, scoreProduct{
			Name:        p.Name,
			Description: p.Description,
			Image:       p.Image,
		})
	}
	return r
}

func printScoreReport(w io.Writer, r scoreReport) {
	d, _ := quiz.ParseDominant(r.Dominant)
	fmt.Fprintf(w, "Dominant dosha: %s\n\n", d.DisplayName())
	fmt.Fprintf(w, "  Vata   %3d%%\n", r.Percentages.Vata)
	fmt.Fprintf(w, "  Pitta  %3d%%\n", r.Percentages.Pitta)
	fmt.Fprintf(w, "  Kapha  %3d%%\n\n", r.Percentages.Kapha)
	fmt.Fprintln(w, r.Description)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recommended:")
	for _, p := range r.Recommendations {
		fmt.Fprintf(w, "  - %s: %s\n", p.Name, p.Description)
	}
	if r.AttemptID != "" {
		fmt.Fprintf(w, "\nSaved as %s\n", r.AttemptID)
	}
}

// saveReplay records q under the loaded bank's ID.
func saveReplay(cmd *cobra.Command, q quiz.Quiz) (string, error) {
	bank, err := loadBank(cmd)
	if err != nil {
		return "", err
	}
	if len(bank.Questions) != q.Total {
		return "", fmt.Errorf("bank %q has %d questions, got %d answers",
			bank.ID, len(bank.Questions), q.Total)
	}
	st, err := openStore(cmd)
	if err != nil {
		return "", err
	}
	defer st.Close()

	rec := attempt.NewRecorder(st.AttemptRepo(), bank.ID, logger)
	return rec.Record(cmd.Context(), q, 0)
}

// dosha names for table output, in category order.
func doshaHeader() string {
	names := make([]string, 0, 3)
	for _, c := range quiz.AllCategories() {
		names = append(names, fmt.Sprintf("%5s", c.DisplayName()))
	}
	return strings.Join(names, "  ")
}
