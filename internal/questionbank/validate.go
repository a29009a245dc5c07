package questionbank

import (
	"fmt"
	"strings"
)

// validateBank performs the structural checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateBank(b *Bank) error {
	var errs []string

	if len(b.Questions) == 0 {
		errs = append(errs, "bank has no questions")
	}

	seen := make(map[string]bool, len(b.Questions))
	for _, q := range b.Questions {
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		seen[q.ID] = true

		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %q has %d options, need at least 2", q.ID, len(q.Options)))
		}

		texts := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if !o.Category.Valid() {
				errs = append(errs, fmt.Sprintf("question %q option %q has unknown dosha %q", q.ID, o.Text, o.Category))
			}
			key := strings.ToLower(strings.TrimSpace(o.Text))
			if texts[key] {
				errs = append(errs, fmt.Sprintf("question %q repeats option %q", q.ID, o.Text))
			}
			texts[key] = true
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
