package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundEvent records a completed quiz round with its final score.
type RoundEvent struct {
	ent.Schema
}

func (RoundEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RoundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("round_id").
			NotEmpty().
			Comment("Links AnswerEvents to this round"),
		field.String("subject").
			NotEmpty().
			Comment("Subject id: botany, physics, chemistry, zoology"),
		field.String("topic").
			NotEmpty().
			Comment("Topic label the round was generated for"),
		field.String("depth").
			Default("").
			Comment("Difficulty tag embedded in the generation prompt"),
		field.String("focus").
			Default("").
			Comment("Focus-area tag embedded in the generation prompt"),
		field.Int("seed").
			Default(0).
			Comment("Anti-repetition seed embedded in the prompt"),
		field.Int("question_count").
			Comment("Number of questions in the round"),
		field.Int("correct_count").
			Comment("Questions answered correctly"),
		field.Int("score").
			Comment("Percentage score, 0-100"),
		field.String("rank").
			Default("").
			Comment("Display rank derived from the score"),
	}
}

func (RoundEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("round_id"),
		index.Fields("subject"),
		index.Fields("topic"),
	}
}
