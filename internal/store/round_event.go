package store

import (
	"context"
	"fmt"

	"github.com/priyam/synapseed/ent"
	"github.com/priyam/synapseed/ent/roundevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendRound(ctx context.Context, data RoundEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RoundEvent.Create().
		SetSequence(seqNum).
		SetRoundID(data.RoundID).
		SetSubject(data.Subject).
		SetTopic(data.Topic).
		SetDepth(data.Depth).
		SetFocus(data.Focus).
		SetSeed(data.Seed).
		SetQuestionCount(data.QuestionCount).
		SetCorrectCount(data.CorrectCount).
		SetScore(data.Score).
		SetRank(data.Rank).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRounds(ctx context.Context, opts QueryOpts) ([]RoundRecord, error) {
	query := r.client.RoundEvent.Query().
		Order(ent.Desc(roundevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(roundevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(roundevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(roundevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(roundevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query round events: %w", err)
	}

	records := make([]RoundRecord, len(events))
	for i, e := range events {
		records[i] = RoundRecord{
			RoundEventData: RoundEventData{
				RoundID:       e.RoundID,
				Subject:       e.Subject,
				Topic:         e.Topic,
				Depth:         e.Depth,
				Focus:         e.Focus,
				Seed:          e.Seed,
				QuestionCount: e.QuestionCount,
				CorrectCount:  e.CorrectCount,
				Score:         e.Score,
				Rank:          e.Rank,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) RoundStats(ctx context.Context) (RoundStats, error) {
	events, err := r.client.RoundEvent.Query().All(ctx)
	if err != nil {
		return RoundStats{}, fmt.Errorf("query round stats: %w", err)
	}

	stats := RoundStats{RoundsBySubject: make(map[string]int)}
	total := 0
	for _, e := range events {
		stats.TotalRounds++
		stats.RoundsBySubject[e.Subject]++
		total += e.Score
		if e.Score > stats.BestScore {
			stats.BestScore = e.Score
		}
	}
	if stats.TotalRounds > 0 {
		stats.AverageScore = float64(total) / float64(stats.TotalRounds)
	}
	return stats, nil
}
