package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/breet/ent"
	"github.com/abhisek/breet/ent/breakevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendBreak(ctx context.Context, data BreakEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.BreakEvent.Create().
		SetSequence(seqNum).
		SetBreakID(data.BreakID).
		SetCategory(data.Category).
		SetBreakName(data.BreakName).
		SetDurationMinutes(data.DurationMinutes).
		SetWorkDurationMinutes(data.WorkDurationMinutes).
		SetLabel(data.Label).
		SetCompleted(data.Completed).
		SetSource(data.Source).
		SetCorrelationID(data.CorrelationID)

	if !data.WorkEndAt.IsZero() {
		builder = builder.SetWorkEndAt(data.WorkEndAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save break event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentBreaks(ctx context.Context, n int) ([]BreakEvent, error) {
	rows, err := r.client.BreakEvent.Query().
		Order(ent.Desc(breakevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent breaks: %w", err)
	}

	// Reverse to oldest-first.
	out := make([]BreakEvent, len(rows))
	for i, e := range rows {
		out[len(rows)-1-i] = breakEventFromEnt(e)
	}
	return out, nil
}

func (r *eventRepo) BreaksBetween(ctx context.Context, from, to time.Time) ([]BreakEvent, error) {
	rows, err := r.client.BreakEvent.Query().
		Where(breakevent.TimestampGTE(from), breakevent.TimestampLT(to)).
		Order(ent.Asc(breakevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query breaks between: %w", err)
	}

	out := make([]BreakEvent, len(rows))
	for i, e := range rows {
		out[i] = breakEventFromEnt(e)
	}
	return out, nil
}

func (r *eventRepo) AllBreaks(ctx context.Context) ([]BreakEvent, error) {
	rows, err := r.client.BreakEvent.Query().
		Order(ent.Asc(breakevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all breaks: %w", err)
	}

	out := make([]BreakEvent, len(rows))
	for i, e := range rows {
		out[i] = breakEventFromEnt(e)
	}
	return out, nil
}

func breakEventFromEnt(e *ent.BreakEvent) BreakEvent {
	return BreakEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		BreakEventData: BreakEventData{
			BreakID:             e.BreakID,
			Category:            e.Category,
			BreakName:           e.BreakName,
			DurationMinutes:     e.DurationMinutes,
			WorkDurationMinutes: e.WorkDurationMinutes,
			Label:               e.Label,
			Completed:           e.Completed,
			WorkEndAt:           e.WorkEndAt,
			Source:              e.Source,
			CorrelationID:       e.CorrelationID,
		},
	}
}
