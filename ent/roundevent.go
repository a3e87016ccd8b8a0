// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/priyam/synapseed/ent/roundevent"
)

// RoundEvent is the model entity for the RoundEvent schema.
type RoundEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links AnswerEvents to this round
	RoundID string `json:"round_id,omitempty"`
	// Subject id: botany, physics, chemistry, zoology
	Subject string `json:"subject,omitempty"`
	// Topic label the round was generated for
	Topic string `json:"topic,omitempty"`
	// Difficulty tag embedded in the generation prompt
	Depth string `json:"depth,omitempty"`
	// Focus-area tag embedded in the generation prompt
	Focus string `json:"focus,omitempty"`
	// Anti-repetition seed embedded in the prompt
	Seed int `json:"seed,omitempty"`
	// Number of questions in the round
	QuestionCount int `json:"question_count,omitempty"`
	// Questions answered correctly
	CorrectCount int `json:"correct_count,omitempty"`
	// Percentage score, 0-100
	Score int `json:"score,omitempty"`
	// Display rank derived from the score
	Rank         string `json:"rank,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoundEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roundevent.FieldID, roundevent.FieldSequence, roundevent.FieldSeed, roundevent.FieldQuestionCount, roundevent.FieldCorrectCount, roundevent.FieldScore:
			values[i] = new(sql.NullInt64)
		case roundevent.FieldRoundID, roundevent.FieldSubject, roundevent.FieldTopic, roundevent.FieldDepth, roundevent.FieldFocus, roundevent.FieldRank:
			values[i] = new(sql.NullString)
		case roundevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoundEvent fields.
func (_m *RoundEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roundevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case roundevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case roundevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case roundevent.FieldRoundID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field round_id", values[i])
			} else if value.Valid {
				_m.RoundID = value.String
			}
		case roundevent.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case roundevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case roundevent.FieldDepth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = value.String
			}
		case roundevent.FieldFocus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field focus", values[i])
			} else if value.Valid {
				_m.Focus = value.String
			}
		case roundevent.FieldSeed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seed", values[i])
			} else if value.Valid {
				_m.Seed = int(value.Int64)
			}
		case roundevent.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case roundevent.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case roundevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case roundevent.FieldRank:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rank", values[i])
			} else if value.Valid {
				_m.Rank = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoundEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RoundEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RoundEvent.
// Note that you need to call RoundEvent.Unwrap() before calling this method if this RoundEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoundEvent) Update() *RoundEventUpdateOne {
	return NewRoundEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoundEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoundEvent) Unwrap() *RoundEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoundEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoundEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RoundEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("round_id=")
	builder.WriteString(_m.RoundID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(_m.Depth)
	builder.WriteString(", ")
	builder.WriteString("focus=")
	builder.WriteString(_m.Focus)
	builder.WriteString(", ")
	builder.WriteString("seed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seed))
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("rank=")
	builder.WriteString(_m.Rank)
	builder.WriteByte(')')
	return builder.String()
}

// RoundEvents is a parsable slice of RoundEvent.
type RoundEvents []*RoundEvent
