// Code generated by ent, DO NOT EDIT.

package roundevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/priyam/synapseed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RoundID applies equality check predicate on the "round_id" field. It's identical to RoundIDEQ.
func RoundID(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldRoundID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSubject, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTopic, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldDepth, v))
}

// Focus applies equality check predicate on the "focus" field. It's identical to FocusEQ.
func Focus(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldFocus, v))
}

// Seed applies equality check predicate on the "seed" field. It's identical to SeedEQ.
func Seed(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSeed, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldScore, v))
}

// Rank applies equality check predicate on the "rank" field. It's identical to RankEQ.
func Rank(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldRank, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RoundIDEQ applies the EQ predicate on the "round_id" field.
func RoundIDEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldRoundID, v))
}

// RoundIDNEQ applies the NEQ predicate on the "round_id" field.
func RoundIDNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldRoundID, v))
}

// RoundIDIn applies the In predicate on the "round_id" field.
func RoundIDIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldRoundID, vs...))
}

// RoundIDNotIn applies the NotIn predicate on the "round_id" field.
func RoundIDNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldRoundID, vs...))
}

// RoundIDGT applies the GT predicate on the "round_id" field.
func RoundIDGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldRoundID, v))
}

// RoundIDGTE applies the GTE predicate on the "round_id" field.
func RoundIDGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldRoundID, v))
}

// RoundIDLT applies the LT predicate on the "round_id" field.
func RoundIDLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldRoundID, v))
}

// RoundIDLTE applies the LTE predicate on the "round_id" field.
func RoundIDLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldRoundID, v))
}

// RoundIDContains applies the Contains predicate on the "round_id" field.
func RoundIDContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldRoundID, v))
}

// RoundIDHasPrefix applies the HasPrefix predicate on the "round_id" field.
func RoundIDHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldRoundID, v))
}

// RoundIDHasSuffix applies the HasSuffix predicate on the "round_id" field.
func RoundIDHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldRoundID, v))
}

// RoundIDEqualFold applies the EqualFold predicate on the "round_id" field.
func RoundIDEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldRoundID, v))
}

// RoundIDContainsFold applies the ContainsFold predicate on the "round_id" field.
func RoundIDContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldRoundID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldSubject, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldTopic, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldDepth, v))
}

// DepthContains applies the Contains predicate on the "depth" field.
func DepthContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldDepth, v))
}

// DepthHasPrefix applies the HasPrefix predicate on the "depth" field.
func DepthHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldDepth, v))
}

// DepthHasSuffix applies the HasSuffix predicate on the "depth" field.
func DepthHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldDepth, v))
}

// DepthEqualFold applies the EqualFold predicate on the "depth" field.
func DepthEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldDepth, v))
}

// DepthContainsFold applies the ContainsFold predicate on the "depth" field.
func DepthContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldDepth, v))
}

// FocusEQ applies the EQ predicate on the "focus" field.
func FocusEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldFocus, v))
}

// FocusNEQ applies the NEQ predicate on the "focus" field.
func FocusNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldFocus, v))
}

// FocusIn applies the In predicate on the "focus" field.
func FocusIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldFocus, vs...))
}

// FocusNotIn applies the NotIn predicate on the "focus" field.
func FocusNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldFocus, vs...))
}

// FocusGT applies the GT predicate on the "focus" field.
func FocusGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldFocus, v))
}

// FocusGTE applies the GTE predicate on the "focus" field.
func FocusGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldFocus, v))
}

// FocusLT applies the LT predicate on the "focus" field.
func FocusLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldFocus, v))
}

// FocusLTE applies the LTE predicate on the "focus" field.
func FocusLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldFocus, v))
}

// FocusContains applies the Contains predicate on the "focus" field.
func FocusContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldFocus, v))
}

// FocusHasPrefix applies the HasPrefix predicate on the "focus" field.
func FocusHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldFocus, v))
}

// FocusHasSuffix applies the HasSuffix predicate on the "focus" field.
func FocusHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldFocus, v))
}

// FocusEqualFold applies the EqualFold predicate on the "focus" field.
func FocusEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldFocus, v))
}

// FocusContainsFold applies the ContainsFold predicate on the "focus" field.
func FocusContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldFocus, v))
}

// SeedEQ applies the EQ predicate on the "seed" field.
func SeedEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSeed, v))
}

// SeedNEQ applies the NEQ predicate on the "seed" field.
func SeedNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldSeed, v))
}

// SeedIn applies the In predicate on the "seed" field.
func SeedIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldSeed, vs...))
}

// SeedNotIn applies the NotIn predicate on the "seed" field.
func SeedNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldSeed, vs...))
}

// SeedGT applies the GT predicate on the "seed" field.
func SeedGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldSeed, v))
}

// SeedGTE applies the GTE predicate on the "seed" field.
func SeedGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldSeed, v))
}

// SeedLT applies the LT predicate on the "seed" field.
func SeedLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldSeed, v))
}

// SeedLTE applies the LTE predicate on the "seed" field.
func SeedLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldSeed, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldQuestionCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldCorrectCount, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldScore, v))
}

// RankEQ applies the EQ predicate on the "rank" field.
func RankEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldRank, v))
}

// RankNEQ applies the NEQ predicate on the "rank" field.
func RankNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldRank, v))
}

// RankIn applies the In predicate on the "rank" field.
func RankIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldRank, vs...))
}

// RankNotIn applies the NotIn predicate on the "rank" field.
func RankNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldRank, vs...))
}

// RankGT applies the GT predicate on the "rank" field.
func RankGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldRank, v))
}

// RankGTE applies the GTE predicate on the "rank" field.
func RankGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldRank, v))
}

// RankLT applies the LT predicate on the "rank" field.
func RankLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldRank, v))
}

// RankLTE applies the LTE predicate on the "rank" field.
func RankLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldRank, v))
}

// RankContains applies the Contains predicate on the "rank" field.
func RankContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldRank, v))
}

// RankHasPrefix applies the HasPrefix predicate on the "rank" field.
func RankHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldRank, v))
}

// RankHasSuffix applies the HasSuffix predicate on the "rank" field.
func RankHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldRank, v))
}

// RankEqualFold applies the EqualFold predicate on the "rank" field.
func RankEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldRank, v))
}

// RankContainsFold applies the ContainsFold predicate on the "rank" field.
func RankContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldRank, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoundEvent) predicate.RoundEvent {
	return predicate.RoundEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoundEvent) predicate.RoundEvent {
	return predicate.RoundEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoundEvent) predicate.RoundEvent {
	return predicate.RoundEvent(sql.NotPredicates(p))
}
