package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// snapshotVersion is written into every saved SnapshotData.
const snapshotVersion = 1

// snapshotRepo implements SnapshotRepo with plain SQL.
type snapshotRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if snap.Sequence == 0 {
		next, err := r.seq.Next(ctx)
		if err != nil {
			return err
		}
		snap.Sequence = next
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now().UTC()
	}
	if snap.Data.Version == 0 {
		snap.Data.Version = snapshotVersion
	}

	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO signal_snapshots (sequence, created_at, data) VALUES (?, ?, ?)`,
		snap.Sequence, snap.Timestamp.UnixMilli(), string(data))
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		snap.ID = int(id)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	var (
		snap      Snapshot
		createdAt int64
		data      string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, sequence, created_at, data FROM signal_snapshots ORDER BY sequence DESC LIMIT 1`,
	).Scan(&snap.ID, &snap.Sequence, &createdAt, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &snap.Data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	snap.Timestamp = time.UnixMilli(createdAt).UTC()
	return &snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM signal_snapshots WHERE id NOT IN (
			SELECT id FROM signal_snapshots ORDER BY sequence DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
