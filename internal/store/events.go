package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/mach-hub-g1/edugamers-engine/ent"
	"github.com/mach-hub-g1/edugamers-engine/ent/riskevent"
)

// sequenceCounter manages the global monotonic sequence number shared
// across all event types. Risk and path events live in separate
// ent-managed tables, so per-table auto-increment IDs can't establish
// cross-type ordering; this counter assigns a single increasing sequence
// to every event regardless of type.
//
// Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the RETURNING
// clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// assessmentRepo implements AssessmentRepo using the ent client.
type assessmentRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *assessmentRepo) AppendRisk(ctx context.Context, data RiskEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RiskEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetLevel(data.Level).
		SetFactors(data.Factors).
		SetData(data.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save risk event: %w", err)
	}
	return nil
}

func (r *assessmentRepo) AppendPath(ctx context.Context, data PathEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PathEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetSubject(data.Subject).
		SetDifficulty(data.Difficulty).
		SetData(data.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save path event: %w", err)
	}
	return nil
}

func (r *assessmentRepo) RecentRiskLevels(ctx context.Context, learnerID string, lastN int) ([]string, error) {
	events, err := r.client.RiskEvent.Query().
		Where(riskevent.LearnerID(learnerID)).
		Order(ent.Desc(riskevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query risk events: %w", err)
	}

	levels := make([]string, len(events))
	for i, e := range events {
		levels[i] = e.Level
	}
	return levels, nil
}
