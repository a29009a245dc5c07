package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type attemptRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, data AttemptEventData) (string, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}

	answers := data.Answers
	if answers == nil {
		answers = []string{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("marshal answers: %w", err)
	}

	attemptID := uuid.New().String()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO attempt_events
			(sequence, timestamp, attempt_id, bank_id, answers, vata_pct, pitta_pct, kapha_pct, dominant, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixMilli(), attemptID, data.BankID, string(answersJSON),
		data.VataPct, data.PittaPct, data.KaphaPct, data.Dominant, data.DurationMs,
	)
	if err != nil {
		return "", fmt.Errorf("save attempt event: %w", err)
	}
	return attemptID, nil
}

func (r *attemptRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, opts.To.UnixMilli())
	}

	q := `SELECT sequence, timestamp, attempt_id, bank_id, answers, vata_pct, pitta_pct, kapha_pct, dominant, duration_ms
		FROM attempt_events`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var records []AttemptRecord
	for rows.Next() {
		var (
			rec         AttemptRecord
			tsMillis    int64
			answersJSON string
		)
		if err := rows.Scan(&rec.Sequence, &tsMillis, &rec.AttemptID, &rec.BankID, &answersJSON,
			&rec.VataPct, &rec.PittaPct, &rec.KaphaPct, &rec.Dominant, &rec.DurationMs); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		rec.Timestamp = time.UnixMilli(tsMillis)
		if err := json.Unmarshal([]byte(answersJSON), &rec.Answers); err != nil {
			return nil, fmt.Errorf("decode answers for attempt %s: %w", rec.AttemptID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return records, nil
}

func (r *attemptRepo) Stats(ctx context.Context) (AttemptStats, error) {
	stats := AttemptStats{ByDominant: make(map[string]int)}

	var (
		avgVata, avgPitta, avgKapha sql.NullFloat64
		first, last                 sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), AVG(vata_pct), AVG(pitta_pct), AVG(kapha_pct), MIN(timestamp), MAX(timestamp)
		FROM attempt_events`,
	).Scan(&stats.Total, &avgVata, &avgPitta, &avgKapha, &first, &last)
	if err != nil {
		return stats, fmt.Errorf("query attempt stats: %w", err)
	}
	if stats.Total == 0 {
		return stats, nil
	}
	stats.AvgVata = avgVata.Float64
	stats.AvgPitta = avgPitta.Float64
	stats.AvgKapha = avgKapha.Float64
	stats.First = time.UnixMilli(first.Int64)
	stats.Last = time.UnixMilli(last.Int64)

	rows, err := r.db.QueryContext(ctx,
		`SELECT dominant, COUNT(*) FROM attempt_events GROUP BY dominant`)
	if err != nil {
		return stats, fmt.Errorf("query dominant counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			dominant string
			n        int
		)
		if err := rows.Scan(&dominant, &n); err != nil {
			return stats, fmt.Errorf("scan dominant count: %w", err)
		}
		stats.ByDominant[dominant] = n
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("iterate dominant counts: %w", err)
	}
	return stats, nil
}

func (r *attemptRepo) Reset(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attempt_events`)
	if err != nil {
		return 0, fmt.Errorf("delete attempts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
