// Code generated by ent, DO NOT EDIT.

package breakevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/breet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldTimestamp, v))
}

// BreakID applies equality check predicate on the "break_id" field. It's identical to BreakIDEQ.
func BreakID(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldBreakID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldCategory, v))
}

// BreakName applies equality check predicate on the "break_name" field. It's identical to BreakNameEQ.
func BreakName(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldBreakName, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldDurationMinutes, v))
}

// WorkDurationMinutes applies equality check predicate on the "work_duration_minutes" field. It's identical to WorkDurationMinutesEQ.
func WorkDurationMinutes(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldWorkDurationMinutes, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldCompleted, v))
}

// WorkEndAt applies equality check predicate on the "work_end_at" field. It's identical to WorkEndAtEQ.
func WorkEndAt(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldWorkEndAt, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldSource, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldCorrelationID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldTimestamp, v))
}

// BreakIDEQ applies the EQ predicate on the "break_id" field.
func BreakIDEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldBreakID, v))
}

// BreakIDNEQ applies the NEQ predicate on the "break_id" field.
func BreakIDNEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldBreakID, v))
}

// BreakIDIn applies the In predicate on the "break_id" field.
func BreakIDIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldBreakID, vs...))
}

// BreakIDNotIn applies the NotIn predicate on the "break_id" field.
func BreakIDNotIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldBreakID, vs...))
}

// BreakIDGT applies the GT predicate on the "break_id" field.
func BreakIDGT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldBreakID, v))
}

// BreakIDGTE applies the GTE predicate on the "break_id" field.
func BreakIDGTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldBreakID, v))
}

// BreakIDLT applies the LT predicate on the "break_id" field.
func BreakIDLT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldBreakID, v))
}

// BreakIDLTE applies the LTE predicate on the "break_id" field.
func BreakIDLTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldBreakID, v))
}

// BreakIDContains applies the Contains predicate on the "break_id" field.
func BreakIDContains(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContains(FieldBreakID, v))
}

// BreakIDHasPrefix applies the HasPrefix predicate on the "break_id" field.
func BreakIDHasPrefix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasPrefix(FieldBreakID, v))
}

// BreakIDHasSuffix applies the HasSuffix predicate on the "break_id" field.
func BreakIDHasSuffix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasSuffix(FieldBreakID, v))
}

// BreakIDEqualFold applies the EqualFold predicate on the "break_id" field.
func BreakIDEqualFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEqualFold(FieldBreakID, v))
}

// BreakIDContainsFold applies the ContainsFold predicate on the "break_id" field.
func BreakIDContainsFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContainsFold(FieldBreakID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContainsFold(FieldCategory, v))
}

// BreakNameEQ applies the EQ predicate on the "break_name" field.
func BreakNameEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldBreakName, v))
}

// BreakNameNEQ applies the NEQ predicate on the "break_name" field.
func BreakNameNEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldBreakName, v))
}

// BreakNameIn applies the In predicate on the "break_name" field.
func BreakNameIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldBreakName, vs...))
}

// BreakNameNotIn applies the NotIn predicate on the "break_name" field.
func BreakNameNotIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldBreakName, vs...))
}

// BreakNameGT applies the GT predicate on the "break_name" field.
func BreakNameGT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldBreakName, v))
}

// BreakNameGTE applies the GTE predicate on the "break_name" field.
func BreakNameGTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldBreakName, v))
}

// BreakNameLT applies the LT predicate on the "break_name" field.
func BreakNameLT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldBreakName, v))
}

// BreakNameLTE applies the LTE predicate on the "break_name" field.
func BreakNameLTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldBreakName, v))
}

// BreakNameContains applies the Contains predicate on the "break_name" field.
func BreakNameContains(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContains(FieldBreakName, v))
}

// BreakNameHasPrefix applies the HasPrefix predicate on the "break_name" field.
func BreakNameHasPrefix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasPrefix(FieldBreakName, v))
}

// BreakNameHasSuffix applies the HasSuffix predicate on the "break_name" field.
func BreakNameHasSuffix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasSuffix(FieldBreakName, v))
}

// BreakNameEqualFold applies the EqualFold predicate on the "break_name" field.
func BreakNameEqualFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEqualFold(FieldBreakName, v))
}

// BreakNameContainsFold applies the ContainsFold predicate on the "break_name" field.
func BreakNameContainsFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContainsFold(FieldBreakName, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldDurationMinutes, v))
}

// WorkDurationMinutesEQ applies the EQ predicate on the "work_duration_minutes" field.
func WorkDurationMinutesEQ(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldWorkDurationMinutes, v))
}

// WorkDurationMinutesNEQ applies the NEQ predicate on the "work_duration_minutes" field.
func WorkDurationMinutesNEQ(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldWorkDurationMinutes, v))
}

// WorkDurationMinutesIn applies the In predicate on the "work_duration_minutes" field.
func WorkDurationMinutesIn(vs ...int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldWorkDurationMinutes, vs...))
}

// WorkDurationMinutesNotIn applies the NotIn predicate on the "work_duration_minutes" field.
func WorkDurationMinutesNotIn(vs ...int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldWorkDurationMinutes, vs...))
}

// WorkDurationMinutesGT applies the GT predicate on the "work_duration_minutes" field.
func WorkDurationMinutesGT(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldWorkDurationMinutes, v))
}

// WorkDurationMinutesGTE applies the GTE predicate on the "work_duration_minutes" field.
func WorkDurationMinutesGTE(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldWorkDurationMinutes, v))
}

// WorkDurationMinutesLT applies the LT predicate on the "work_duration_minutes" field.
func WorkDurationMinutesLT(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldWorkDurationMinutes, v))
}

// WorkDurationMinutesLTE applies the LTE predicate on the "work_duration_minutes" field.
func WorkDurationMinutesLTE(v int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldWorkDurationMinutes, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContainsFold(FieldLabel, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldCompleted, v))
}

// WorkEndAtEQ applies the EQ predicate on the "work_end_at" field.
func WorkEndAtEQ(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldWorkEndAt, v))
}

// WorkEndAtNEQ applies the NEQ predicate on the "work_end_at" field.
func WorkEndAtNEQ(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldWorkEndAt, v))
}

// WorkEndAtIn applies the In predicate on the "work_end_at" field.
func WorkEndAtIn(vs ...time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldWorkEndAt, vs...))
}

// WorkEndAtNotIn applies the NotIn predicate on the "work_end_at" field.
func WorkEndAtNotIn(vs ...time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldWorkEndAt, vs...))
}

// WorkEndAtGT applies the GT predicate on the "work_end_at" field.
func WorkEndAtGT(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldWorkEndAt, v))
}

// WorkEndAtGTE applies the GTE predicate on the "work_end_at" field.
func WorkEndAtGTE(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldWorkEndAt, v))
}

// WorkEndAtLT applies the LT predicate on the "work_end_at" field.
func WorkEndAtLT(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldWorkEndAt, v))
}

// WorkEndAtLTE applies the LTE predicate on the "work_end_at" field.
func WorkEndAtLTE(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldWorkEndAt, v))
}

// WorkEndAtIsNil applies the IsNil predicate on the "work_end_at" field.
func WorkEndAtIsNil() predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIsNull(FieldWorkEndAt))
}

// WorkEndAtNotNil applies the NotNil predicate on the "work_end_at" field.
func WorkEndAtNotNil() predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotNull(FieldWorkEndAt))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContainsFold(FieldSource, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContainsFold(FieldCorrelationID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BreakEvent) predicate.BreakEvent {
	return predicate.BreakEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BreakEvent) predicate.BreakEvent {
	return predicate.BreakEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BreakEvent) predicate.BreakEvent {
	return predicate.BreakEvent(sql.NotPredicates(p))
}
