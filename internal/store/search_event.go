package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// eventRepo implements EventRepo with plain SQL and the shared sequence.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendSearch(ctx context.Context, data SearchEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO search_events (
			sequence, created_at, request_id, provider, purpose, mined_time_from,
			query, result_count, latency_ms, success, error_message, response_body
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum,
		time.Now().UnixMilli(),
		data.RequestID,
		data.Provider,
		data.Purpose,
		data.MinedTimeFrom,
		data.Query,
		data.ResultCount,
		data.LatencyMs,
		data.Success,
		data.ErrorMessage,
		data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("save search event: %w", err)
	}
	return nil
}

const searchEventColumns = `id, sequence, created_at, request_id, provider, purpose,
	mined_time_from, query, result_count, latency_ms, success, error_message, response_body`

func (r *eventRepo) QuerySearchEvents(ctx context.Context, opts QueryOpts) ([]SearchEventRecord, error) {
	var where []string
	var args []any

	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "created_at <= ?")
		args = append(args, opts.To.UnixMilli())
	}
	if opts.Purpose != "" {
		where = append(where, "purpose = ?")
		args = append(args, opts.Purpose)
	}

	q := "SELECT " + searchEventColumns + " FROM search_events"
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
		return nil, fmt.Errorf("query search events: %w", err)
	}
	defer rows.Close()

	var out []SearchEventRecord
	for rows.Next() {
		rec, err := scanSearchEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) GetSearchEvent(ctx context.Context, id int) (*SearchEventRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+searchEventColumns+" FROM search_events WHERE id = ?", id)
	rec, err := scanSearchEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

func (r *eventRepo) SearchStatsByPurpose(ctx context.Context) ([]PurposeStats, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT purpose,
			COUNT(*),
			SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END),
			CAST(AVG(latency_ms) AS INTEGER),
			AVG(result_count)
		FROM search_events
		GROUP BY purpose
		ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query search stats: %w", err)
	}
	defer rows.Close()

	var out []PurposeStats
	for rows.Next() {
		var st PurposeStats
		if err := rows.Scan(&st.Purpose, &st.Calls, &st.Failures, &st.AvgLatencyMs, &st.AvgResultCount); err != nil {
			return nil, fmt.Errorf("scan search stats: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSearchEvent(row rowScanner) (*SearchEventRecord, error) {
	var rec SearchEventRecord
	var createdAt int64
	err := row.Scan(
		&rec.ID,
		&rec.Sequence,
		&createdAt,
		&rec.RequestID,
		&rec.Provider,
		&rec.Purpose,
		&rec.MinedTimeFrom,
		&rec.Query,
		&rec.ResultCount,
		&rec.LatencyMs,
		&rec.Success,
		&rec.ErrorMessage,
		&rec.ResponseBody,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan search event: %w", err)
	}
	rec.Timestamp = time.UnixMilli(createdAt).UTC()
	return &rec, nil
}
