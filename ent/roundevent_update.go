// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/synapseed/ent/predicate"
	"github.com/priyam/synapseed/ent/roundevent"
)

// RoundEventUpdate is the builder for updating RoundEvent entities.
type RoundEventUpdate struct {
	config
	hooks    []Hook
	mutation *RoundEventMutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdate) Where(ps ...predicate.RoundEvent) *RoundEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *RoundEventUpdate) SetRoundID(v string) *RoundEventUpdate {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableRoundID(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *RoundEventUpdate) SetSubject(v string) *RoundEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableSubject(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *RoundEventUpdate) SetTopic(v string) *RoundEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableTopic(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *RoundEventUpdate) SetDepth(v string) *RoundEventUpdate {
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableDepth(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// SetFocus sets the "focus" field.
func (_u *RoundEventUpdate) SetFocus(v string) *RoundEventUpdate {
	_u.mutation.SetFocus(v)
	return _u
}

// SetNillableFocus sets the "focus" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableFocus(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetFocus(*v)
	}
	return _u
}

// SetSeed sets the "seed" field.
func (_u *RoundEventUpdate) SetSeed(v int) *RoundEventUpdate {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableSeed(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *RoundEventUpdate) AddSeed(v int) *RoundEventUpdate {
	_u.mutation.AddSeed(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *RoundEventUpdate) SetQuestionCount(v int) *RoundEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableQuestionCount(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *RoundEventUpdate) AddQuestionCount(v int) *RoundEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *RoundEventUpdate) SetCorrectCount(v int) *RoundEventUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableCorrectCount(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *RoundEventUpdate) AddCorrectCount(v int) *RoundEventUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *RoundEventUpdate) SetScore(v int) *RoundEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableScore(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RoundEventUpdate) AddScore(v int) *RoundEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetRank sets the "rank" field.
func (_u *RoundEventUpdate) SetRank(v string) *RoundEventUpdate {
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableRank(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdate) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoundEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoundEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdate) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := roundevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := roundevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := roundevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(roundevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(roundevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(roundevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(roundevent.FieldDepth, field.TypeString, value)
	}
	if value, ok := _u.mutation.Focus(); ok {
		_spec.SetField(roundevent.FieldFocus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(roundevent.FieldSeed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(roundevent.FieldSeed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(roundevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(roundevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(roundevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(roundevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(roundevent.FieldRank, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoundEventUpdateOne is the builder for updating a single RoundEvent entity.
type RoundEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoundEventMutation
}

// SetRoundID sets the "round_id" field.
func (_u *RoundEventUpdateOne) SetRoundID(v string) *RoundEventUpdateOne {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableRoundID(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *RoundEventUpdateOne) SetSubject(v string) *RoundEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableSubject(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *RoundEventUpdateOne) SetTopic(v string) *RoundEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableTopic(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *RoundEventUpdateOne) SetDepth(v string) *RoundEventUpdateOne {
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableDepth(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// SetFocus sets the "focus" field.
func (_u *RoundEventUpdateOne) SetFocus(v string) *RoundEventUpdateOne {
	_u.mutation.SetFocus(v)
	return _u
}

// SetNillableFocus sets the "focus" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableFocus(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetFocus(*v)
	}
	return _u
}

// SetSeed sets the "seed" field.
func (_u *RoundEventUpdateOne) SetSeed(v int) *RoundEventUpdateOne {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableSeed(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *RoundEventUpdateOne) AddSeed(v int) *RoundEventUpdateOne {
	_u.mutation.AddSeed(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *RoundEventUpdateOne) SetQuestionCount(v int) *RoundEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableQuestionCount(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *RoundEventUpdateOne) AddQuestionCount(v int) *RoundEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *RoundEventUpdateOne) SetCorrectCount(v int) *RoundEventUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableCorrectCount(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *RoundEventUpdateOne) AddCorrectCount(v int) *RoundEventUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *RoundEventUpdateOne) SetScore(v int) *RoundEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableScore(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RoundEventUpdateOne) AddScore(v int) *RoundEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetRank sets the "rank" field.
func (_u *RoundEventUpdateOne) SetRank(v string) *RoundEventUpdateOne {
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableRank(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdateOne) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdateOne) Where(ps ...predicate.RoundEvent) *RoundEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoundEventUpdateOne) Select(field string, fields ...string) *RoundEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoundEvent entity.
func (_u *RoundEventUpdateOne) Save(ctx context.Context) (*RoundEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdateOne) SaveX(ctx context.Context) *RoundEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoundEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdateOne) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := roundevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := roundevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := roundevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdateOne) sqlSave(ctx context.Context) (_node *RoundEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoundEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roundevent.FieldID)
		for _, f := range fields {
			if !roundevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roundevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(roundevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(roundevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(roundevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(roundevent.FieldDepth, field.TypeString, value)
	}
	if value, ok := _u.mutation.Focus(); ok {
		_spec.SetField(roundevent.FieldFocus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(roundevent.FieldSeed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(roundevent.FieldSeed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(roundevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(roundevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(roundevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(roundevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(roundevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(roundevent.FieldRank, field.TypeString, value)
	}
	_node = &RoundEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
