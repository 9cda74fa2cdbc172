package store

import (
	"context"
	"time"
)

// ProfileSnapshotRecord is one stored learner-profile analysis result.
// Data carries the full LearnerProfile as JSON; the store doesn't
// interpret it.
type ProfileSnapshotRecord struct {
	ID        int
	LearnerID string
	Timestamp time.Time
	Data      map[string]any
}

// RiskEventData captures one risk assessment for appending.
type RiskEventData struct {
	LearnerID string
	Level     string
	Factors   []string
	Data      map[string]any
}

// PathEventData captures one generated path for appending.
type PathEventData struct {
	LearnerID  string
	Subject    string
	Difficulty int
	Data       map[string]any
}

// ProfileRepo manages learner profile snapshots.
type ProfileRepo interface {
	// SaveSnapshot appends a new profile snapshot.
	SaveSnapshot(ctx context.Context, learnerID string, data map[string]any) error

	// LatestSnapshot returns the most recent snapshot for a learner,
	// or nil if none exist.
	LatestSnapshot(ctx context.Context, learnerID string) (*ProfileSnapshotRecord, error)

	// Prune deletes all but the N most recent snapshots per learner.
	Prune(ctx context.Context, learnerID string, keep int) error
}

// AssessmentRepo provides append access to assessment and path events.
type AssessmentRepo interface {
	// AppendRisk records a risk assessment event.
	AppendRisk(ctx context.Context, data RiskEventData) error

	// AppendPath records a generated-path event.
	AppendPath(ctx context.Context, data PathEventData) error

	// RecentRiskLevels returns the last N recorded risk levels for a
	// learner, most recent first.
	RecentRiskLevels(ctx context.Context, learnerID string, lastN int) ([]string, error)
}
