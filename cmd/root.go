package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/prakriti/internal/logging"
	"github.com/abhisek/prakriti/internal/questionbank"
	"github.com/abhisek/prakriti/internal/store"
)

// logger is built in PersistentPreRunE and synced after every command.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "prakriti",
	Short: "Ayurvedic skin dosha quiz",
	Long: `Prakriti is a terminal quiz that finds your dominant skin dosha
(Vata, Pitta or Kapha) and suggests products for it.

Run without arguments to start the interactive quiz.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := logging.DefaultConfig()
		cfg.Path, _ = cmd.Flags().GetString("log")
		cfg.Verbose, _ = cmd.Flags().GetBool("verbose")

		l, err := logging.New(cfg)
		if err != nil {
			// Logging is best effort; the quiz still runs without it.
			fmt.Fprintln(os.Stderr, "Logging disabled:", err)
			return nil
		}
		logger = l
		logger.Debug("command started", zap.String("command", cmd.CommandPath()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides PRAKRITI_DB env var)")
	pf.String("questions", "", "Path to a YAML question bank (defaults to the built-in bank)")
	pf.String("log", "", "Path to the log file (overrides PRAKRITI_LOG env var)")
	pf.BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PRAKRITI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the attempt database for cmd.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", zap.String("path", dbPath))
	return st, nil
}

// loadBank returns the --questions bank or the built-in one.
func loadBank(cmd *cobra.Command) (*questionbank.Bank, error) {
	path, _ := cmd.Flags().GetString("questions")
	bank, err := questionbank.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	logger.Debug("question bank loaded",
		zap.String("bank", bank.ID),
		zap.Int("questions", len(bank.Questions)),
		zap.String("path", path))
	return bank, nil
}
