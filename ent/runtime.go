// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/priyam/synapseed/ent/answerevent"
	"github.com/priyam/synapseed/ent/llmrequestevent"
	"github.com/priyam/synapseed/ent/roundevent"
	"github.com/priyam/synapseed/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescRoundID is the schema descriptor for round_id field.
	answereventDescRoundID := answereventFields[0].Descriptor()
	// answerevent.RoundIDValidator is a validator for the "round_id" field. It is called by the builders before save.
	answerevent.RoundIDValidator = answereventDescRoundID.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[2].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	roundeventMixin := schema.RoundEvent{}.Mixin()
	roundeventMixinFields0 := roundeventMixin[0].Fields()
	_ = roundeventMixinFields0
	roundeventFields := schema.RoundEvent{}.Fields()
	_ = roundeventFields
	// roundeventDescTimestamp is the schema descriptor for timestamp field.
	roundeventDescTimestamp := roundeventMixinFields0[1].Descriptor()
	// roundevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	roundevent.DefaultTimestamp = roundeventDescTimestamp.Default.(func() time.Time)
	// roundeventDescRoundID is the schema descriptor for round_id field.
	roundeventDescRoundID := roundeventFields[0].Descriptor()
	// roundevent.RoundIDValidator is a validator for the "round_id" field. It is called by the builders before save.
	roundevent.RoundIDValidator = roundeventDescRoundID.Validators[0].(func(string) error)
	// roundeventDescSubject is the schema descriptor for subject field.
	roundeventDescSubject := roundeventFields[1].Descriptor()
	// roundevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	roundevent.SubjectValidator = roundeventDescSubject.Validators[0].(func(string) error)
	// roundeventDescTopic is the schema descriptor for topic field.
	roundeventDescTopic := roundeventFields[2].Descriptor()
	// roundevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	roundevent.TopicValidator = roundeventDescTopic.Validators[0].(func(string) error)
	// roundeventDescDepth is the schema descriptor for depth field.
	roundeventDescDepth := roundeventFields[3].Descriptor()
	// roundevent.DefaultDepth holds the default value on creation for the depth field.
	roundevent.DefaultDepth = roundeventDescDepth.Default.(string)
	// roundeventDescFocus is the schema descriptor for focus field.
	roundeventDescFocus := roundeventFields[4].Descriptor()
	// roundevent.DefaultFocus holds the default value on creation for the focus field.
	roundevent.DefaultFocus = roundeventDescFocus.Default.(string)
	// roundeventDescSeed is the schema descriptor for seed field.
	roundeventDescSeed := roundeventFields[5].Descriptor()
	// roundevent.DefaultSeed holds the default value on creation for the seed field.
	roundevent.DefaultSeed = roundeventDescSeed.Default.(int)
	// roundeventDescRank is the schema descriptor for rank field.
	roundeventDescRank := roundeventFields[9].Descriptor()
	// roundevent.DefaultRank holds the default value on creation for the rank field.
	roundevent.DefaultRank = roundeventDescRank.Default.(string)
}
