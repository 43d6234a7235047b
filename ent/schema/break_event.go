package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BreakEvent is one append-only break history entry. Created only by the
// session machine when a break ends, completes, or is skipped; never
// updated afterward.
type BreakEvent struct {
	ent.Schema
}

func (BreakEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BreakEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("break_id").
			NotEmpty().
			Comment("Catalog id of the break, or 'manual'"),
		field.String("category").
			Default("unknown").
			Comment("Break category: eyeExercise, stretching, breathing, hydration, movement"),
		field.String("break_name").
			Default("").
			Comment("Display name of the chosen candidate"),
		field.Int("duration_minutes").
			Comment("Break length actually taken, in minutes"),
		field.Int("work_duration_minutes").
			Default(0).
			Comment("Work interval that preceded the break (0 if unknown)"),
		field.String("label").
			Default("").
			Comment("Preset label such as 25/5 or 50/10"),
		field.Bool("completed").
			Comment("Whether the break ran to its end"),
		field.Time("work_end_at").
			Optional().
			Comment("When the preceding work interval ended"),
		field.String("source").
			Default("rule").
			Comment("Recommendation source: ai or rule"),
		field.String("correlation_id").
			Default("").
			Comment("Recommendation correlation id, if any"),
	}
}

func (BreakEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("break_id"),
		index.Fields("category"),
		index.Fields("completed"),
	}
}
