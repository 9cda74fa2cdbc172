package store

import (
	"context"
	"fmt"

	"github.com/mach-hub-g1/edugamers-engine/ent"
	"github.com/mach-hub-g1/edugamers-engine/ent/profilesnapshot"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) SaveSnapshot(ctx context.Context, learnerID string, data map[string]any) error {
	_, err := r.client.ProfileSnapshot.Create().
		SetLearnerID(learnerID).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save profile snapshot: %w", err)
	}
	return nil
}

func (r *profileRepo) LatestSnapshot(ctx context.Context, learnerID string) (*ProfileSnapshotRecord, error) {
	s, err := r.client.ProfileSnapshot.Query().
		Where(profilesnapshot.LearnerID(learnerID)).
		Order(ent.Desc(profilesnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return &ProfileSnapshotRecord{
		ID:        s.ID,
		LearnerID: s.LearnerID,
		Timestamp: s.Timestamp,
		Data:      s.Data,
	}, nil
}

func (r *profileRepo) Prune(ctx context.Context, learnerID string, keep int) error {
	snapshots, err := r.client.ProfileSnapshot.Query().
		Where(profilesnapshot.LearnerID(learnerID)).
		Order(ent.Desc(profilesnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.ProfileSnapshot.Delete().
		Where(
			profilesnapshot.LearnerID(learnerID),
			profilesnapshot.TimestampLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
