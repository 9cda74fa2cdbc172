package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProfileSnapshot stores one immutable learner-profile analysis result.
// Re-analysis appends a new row; rows are never updated.
type ProfileSnapshot struct {
	ent.Schema
}

func (ProfileSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the analysis ran"),
		field.JSON("data", map[string]any{}).
			Comment("Full LearnerProfile as JSON"),
	}
}

func (ProfileSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "timestamp"),
	}
}
