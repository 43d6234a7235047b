// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/breet/ent/breakevent"
	"github.com/abhisek/breet/ent/kventry"
	"github.com/abhisek/breet/ent/llmrequestevent"
	"github.com/abhisek/breet/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	breakeventMixin := schema.BreakEvent{}.Mixin()
	breakeventMixinFields0 := breakeventMixin[0].Fields()
	_ = breakeventMixinFields0
	breakeventFields := schema.BreakEvent{}.Fields()
	_ = breakeventFields
	// breakeventDescTimestamp is the schema descriptor for timestamp field.
	breakeventDescTimestamp := breakeventMixinFields0[1].Descriptor()
	// breakevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	breakevent.DefaultTimestamp = breakeventDescTimestamp.Default.(func() time.Time)
	// breakeventDescBreakID is the schema descriptor for break_id field.
	breakeventDescBreakID := breakeventFields[0].Descriptor()
	// breakevent.BreakIDValidator is a validator for the "break_id" field. It is called by the builders before save.
	breakevent.BreakIDValidator = breakeventDescBreakID.Validators[0].(func(string) error)
	// breakeventDescCategory is the schema descriptor for category field.
	breakeventDescCategory := breakeventFields[1].Descriptor()
	// breakevent.DefaultCategory holds the default value on creation for the category field.
	breakevent.DefaultCategory = breakeventDescCategory.Default.(string)
	// breakeventDescBreakName is the schema descriptor for break_name field.
	breakeventDescBreakName := breakeventFields[2].Descriptor()
	// breakevent.DefaultBreakName holds the default value on creation for the break_name field.
	breakevent.DefaultBreakName = breakeventDescBreakName.Default.(string)
	// breakeventDescWorkDurationMinutes is the schema descriptor for work_duration_minutes field.
	breakeventDescWorkDurationMinutes := breakeventFields[4].Descriptor()
	// breakevent.DefaultWorkDurationMinutes holds the default value on creation for the work_duration_minutes field.
	breakevent.DefaultWorkDurationMinutes = breakeventDescWorkDurationMinutes.Default.(int)
	// breakeventDescLabel is the schema descriptor for label field.
	breakeventDescLabel := breakeventFields[5].Descriptor()
	// breakevent.DefaultLabel holds the default value on creation for the label field.
	breakevent.DefaultLabel = breakeventDescLabel.Default.(string)
	// breakeventDescSource is the schema descriptor for source field.
	breakeventDescSource := breakeventFields[8].Descriptor()
	// breakevent.DefaultSource holds the default value on creation for the source field.
	breakevent.DefaultSource = breakeventDescSource.Default.(string)
	// breakeventDescCorrelationID is the schema descriptor for correlation_id field.
	breakeventDescCorrelationID := breakeventFields[9].Descriptor()
	// breakevent.DefaultCorrelationID holds the default value on creation for the correlation_id field.
	breakevent.DefaultCorrelationID = breakeventDescCorrelationID.Default.(string)
	kventryFields := schema.KVEntry{}.Fields()
	_ = kventryFields
	// kventryDescKey is the schema descriptor for key field.
	kventryDescKey := kventryFields[0].Descriptor()
	// kventry.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	kventry.KeyValidator = kventryDescKey.Validators[0].(func(string) error)
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
}
