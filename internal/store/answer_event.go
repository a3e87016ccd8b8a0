package store

import (
	"context"
	"fmt"

	"github.com/priyam/synapseed/ent"
	"github.com/priyam/synapseed/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetRoundID(data.RoundID).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionText(data.QuestionText).
		SetCorrectOption(data.CorrectOption).
		SetSelectedOption(data.SelectedOption).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswers(ctx context.Context, roundID string) ([]AnswerRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.RoundID(roundID)).
		Order(ent.Asc(answerevent.FieldQuestionIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	records := make([]AnswerRecord, len(events))
	for i, e := range events {
		records[i] = AnswerRecord{
			AnswerEventData: AnswerEventData{
				RoundID:        e.RoundID,
				QuestionIndex:  e.QuestionIndex,
				QuestionText:   e.QuestionText,
				CorrectOption:  e.CorrectOption,
				SelectedOption: e.SelectedOption,
				Correct:        e.Correct,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
