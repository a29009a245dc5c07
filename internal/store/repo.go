package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AttemptEventData captures one submitted quiz.
type AttemptEventData struct {
	BankID     string
	Answers    []string // category per question ordinal
	VataPct    int
	PittaPct   int
	KaphaPct   int
	Dominant   string
	DurationMs int64
}

// AttemptRecord is a stored attempt as returned by queries.
type AttemptRecord struct {
	Sequence   int64
	Timestamp  time.Time
	AttemptID  string
	BankID     string
	Answers    []string
	VataPct    int
	PittaPct   int
	KaphaPct   int
	Dominant   string
	DurationMs int64
}

// AttemptStats aggregates all stored attempts.
type AttemptStats struct {
	Total      int
	ByDominant map[string]int
	AvgVata    float64
	AvgPitta   float64
	AvgKapha   float64
	First      time.Time
	Last       time.Time
}

// AttemptRepo provides append and query access to quiz attempts.
type AttemptRepo interface {
	// AppendAttempt records a submitted quiz and returns its attempt ID.
	AppendAttempt(ctx context.Context, data AttemptEventData) (string, error)

	// QueryAttempts returns attempts newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// Stats aggregates all attempts.
	Stats(ctx context.Context) (AttemptStats, error)

	// Reset deletes all attempts and returns how many were removed.
	Reset(ctx context.Context) (int64, error)
}
