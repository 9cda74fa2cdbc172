package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RiskEvent records one risk assessment for audit and trend analysis.
type RiskEvent struct {
	ent.Schema
}

func (RiskEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RiskEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("level").NotEmpty(),
		field.JSON("factors", []string{}),
		field.JSON("data", map[string]any{}).
			Comment("Full Assessment as JSON"),
	}
}

func (RiskEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("level"),
	}
}
