package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered (or skipped) question within a
// round.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("round_id").
			NotEmpty().
			Comment("Links to RoundEvent"),
		field.Int("question_index").
			Comment("Position within the round, 0-based"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.Int("correct_option").
			Comment("Index of the correct option"),
		field.Int("selected_option").
			Comment("Index the user picked, -1 when unanswered"),
		field.Bool("correct").
			Comment("Whether the selection matched"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("round_id"),
		index.Fields("correct"),
	}
}
