// Package attempt persists submitted quizzes.
package attempt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/prakriti/internal/logging"
	"github.com/abhisek/prakriti/internal/quiz"
	"github.com/abhisek/prakriti/internal/store"
)

// ErrNotSubmitted is returned when recording a quiz that has no result yet.
var ErrNotSubmitted = errors.New("quiz has not been submitted")

// Recorder writes submitted quizzes to an AttemptRepo.
type Recorder struct {
	repo   store.AttemptRepo
	bankID string
	logger *zap.Logger
}

// NewRecorder creates a Recorder for quizzes drawn from bankID.
func NewRecorder(repo store.AttemptRepo, bankID string, logger *zap.Logger) *Recorder {
	return &Recorder{
		repo:   repo,
		bankID: bankID,
		logger: logging.OrNop(logger),
	}
}

// EventData converts a submitted quiz to its stored form.
func EventData(bankID string, q quiz.Quiz, elapsed time.Duration) (store.AttemptEventData, error) {
	r, ok := q.Result()
	if !ok {
		return store.AttemptEventData{}, ErrNotSubmitted
	}
	labels := q.Answers.Labels()
	answers := make([]string, len(labels))
	for i, c := range labels {
		answers[i] = string(c)
	}
	return store.AttemptEventData{
		BankID:     bankID,
		Answers:    answers,
		VataPct:    r.Percentages.Vata,
		PittaPct:   r.Percentages.Pitta,
		KaphaPct:   r.Percentages.Kapha,
		Dominant:   string(r.Dominant),
		DurationMs: elapsed.Milliseconds(),
	}, nil
}

// Record stores q and returns the new attempt ID.
func (r *Recorder) Record(ctx context.Context, q quiz.Quiz, elapsed time.Duration) (string, error) {
	data, err := EventData(r.bankID, q, elapsed)
	if err != nil {
		return "", err
	}
	id, err := r.repo.AppendAttempt(ctx, data)
	if err != nil {
		r.logger.Error("failed to record attempt", zap.String("bank", r.bankID), zap.Error(err))
		return "", fmt.Errorf("record attempt: %w", err)
	}
	r.logger.Info("attempt recorded",
		zap.String("attempt_id", id),
		zap.String("bank", r.bankID),
		zap.String("dominant", data.Dominant),
		zap.Int("vata_pct", data.VataPct),
		zap.Int("pitta_pct", data.PittaPct),
		zap.Int("kapha_pct", data.KaphaPct),
		zap.Duration("elapsed", elapsed),
	)
	return id, nil
}
