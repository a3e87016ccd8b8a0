// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyam/synapseed/ent/roundevent"
)

// RoundEventCreate is the builder for creating a RoundEvent entity.
type RoundEventCreate struct {
	config
	mutation *RoundEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RoundEventCreate) SetSequence(v int64) *RoundEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RoundEventCreate) SetTimestamp(v time.Time) *RoundEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableTimestamp(v *time.Time) *RoundEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRoundID sets the "round_id" field.
func (_c *RoundEventCreate) SetRoundID(v string) *RoundEventCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *RoundEventCreate) SetSubject(v string) *RoundEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *RoundEventCreate) SetTopic(v string) *RoundEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *RoundEventCreate) SetDepth(v string) *RoundEventCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableDepth(v *string) *RoundEventCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetFocus sets the "focus" field.
func (_c *RoundEventCreate) SetFocus(v string) *RoundEventCreate {
	_c.mutation.SetFocus(v)
	return _c
}

// SetNillableFocus sets the "focus" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableFocus(v *string) *RoundEventCreate {
	if v != nil {
		_c.SetFocus(*v)
	}
	return _c
}

// SetSeed sets the "seed" field.
func (_c *RoundEventCreate) SetSeed(v int) *RoundEventCreate {
	_c.mutation.SetSeed(v)
	return _c
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableSeed(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetSeed(*v)
	}
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *RoundEventCreate) SetQuestionCount(v int) *RoundEventCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *RoundEventCreate) SetCorrectCount(v int) *RoundEventCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *RoundEventCreate) SetScore(v int) *RoundEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetRank sets the "rank" field.
func (_c *RoundEventCreate) SetRank(v string) *RoundEventCreate {
	_c.mutation.SetRank(v)
	return _c
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableRank(v *string) *RoundEventCreate {
	if v != nil {
		_c.SetRank(*v)
	}
	return _c
}

// Mutation returns the RoundEventMutation object of the builder.
func (_c *RoundEventCreate) Mutation() *RoundEventMutation {
	return _c.mutation
}

// Save creates the RoundEvent in the database.
func (_c *RoundEventCreate) Save(ctx context.Context) (*RoundEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoundEventCreate) SaveX(ctx context.Context) *RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoundEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := roundevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := roundevent.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.Focus(); !ok {
		v := roundevent.DefaultFocus
		_c.mutation.SetFocus(v)
	}
	if _, ok := _c.mutation.Seed(); !ok {
		v := roundevent.DefaultSeed
		_c.mutation.SetSeed(v)
	}
	if _, ok := _c.mutation.Rank(); !ok {
		v := roundevent.DefaultRank
		_c.mutation.SetRank(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoundEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RoundEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RoundEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RoundID(); !ok {
		return &ValidationError{Name: "round_id", err: errors.New(`ent: missing required field "RoundEvent.round_id"`)}
	}
	if v, ok := _c.mutation.RoundID(); ok {
		if err := roundevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "RoundEvent.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := roundevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "RoundEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := roundevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "RoundEvent.depth"`)}
	}
	if _, ok := _c.mutation.Focus(); !ok {
		return &ValidationError{Name: "focus", err: errors.New(`ent: missing required field "RoundEvent.focus"`)}
	}
	if _, ok := _c.mutation.Seed(); !ok {
		return &ValidationError{Name: "seed", err: errors.New(`ent: missing required field "RoundEvent.seed"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "RoundEvent.question_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "RoundEvent.correct_count"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "RoundEvent.score"`)}
	}
	if _, ok := _c.mutation.Rank(); !ok {
		return &ValidationError{Name: "rank", err: errors.New(`ent: missing required field "RoundEvent.rank"`)}
	}
	return nil
}

func (_c *RoundEventCreate) sqlSave(ctx context.Context) (*RoundEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoundEventCreate) createSpec() (*RoundEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RoundEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roundevent.Table, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(roundevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(roundevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RoundID(); ok {
		_spec.SetField(roundevent.FieldRoundID, field.TypeString, value)
		_node.RoundID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(roundevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(roundevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(roundevent.FieldDepth, field.TypeString, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.Focus(); ok {
		_spec.SetField(roundevent.FieldFocus, field.TypeString, value)
		_node.Focus = value
	}
	if value, ok := _c.mutation.Seed(); ok {
		_spec.SetField(roundevent.FieldSeed, field.TypeInt, value)
		_node.Seed = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(roundevent.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(roundevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(roundevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Rank(); ok {
		_spec.SetField(roundevent.FieldRank, field.TypeString, value)
		_node.Rank = value
	}
	return _node, _spec
}

// RoundEventCreateBulk is the builder for creating many RoundEvent entities in bulk.
type RoundEventCreateBulk struct {
	config
	err      error
	builders []*RoundEventCreate
}

// Save creates the RoundEvent entities in the database.
func (_c *RoundEventCreateBulk) Save(ctx context.Context) ([]*RoundEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoundEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoundEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RoundEventCreateBulk) SaveX(ctx context.Context) []*RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
