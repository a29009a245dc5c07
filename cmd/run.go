package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/prakriti/internal/app"
)

// runApp loads the question bank, opens the store and launches the TUI.
func runApp(cmd *cobra.Command) error {
	bank, err := loadBank(cmd)
	if err != nil {
		return err
	}

	opts := app.Options{
		Bank:   bank,
		Logger: logger,
	}
	if skip, err := cmd.Flags().GetBool("no-splash"); err == nil {
		opts.SkipSplash = skip
	}

	// Saving is optional; the quiz works without a database.
	st, err := openStore(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "History unavailable:", err)
		logger.Warn("store unavailable", zap.Error(err))
	} else {
		defer st.Close()
		opts.AttemptRepo = st.AttemptRepo()
	}

	return app.Run(opts)
}
