package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathEvent records one generated learning path.
type PathEvent struct {
	ent.Schema
}

func (PathEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PathEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.Int("difficulty"),
		field.JSON("data", map[string]any{}).
			Comment("Full AdaptiveLearningPath as JSON"),
	}
}

func (PathEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "subject"),
	}
}
