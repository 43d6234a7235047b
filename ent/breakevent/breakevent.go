// Code generated by ent, DO NOT EDIT.

package breakevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the breakevent type in the database.
	Label = "break_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldBreakID holds the string denoting the break_id field in the database.
	FieldBreakID = "break_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldBreakName holds the string denoting the break_name field in the database.
	FieldBreakName = "break_name"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldWorkDurationMinutes holds the string denoting the work_duration_minutes field in the database.
	FieldWorkDurationMinutes = "work_duration_minutes"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldWorkEndAt holds the string denoting the work_end_at field in the database.
	FieldWorkEndAt = "work_end_at"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// Table holds the table name of the breakevent in the database.
	Table = "break_events"
)

// Columns holds all SQL columns for breakevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldBreakID,
	FieldCategory,
	FieldBreakName,
	FieldDurationMinutes,
	FieldWorkDurationMinutes,
	FieldLabel,
	FieldCompleted,
	FieldWorkEndAt,
	FieldSource,
	FieldCorrelationID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// BreakIDValidator is a validator for the "break_id" field. It is called by the builders before save.
	BreakIDValidator func(string) error
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultBreakName holds the default value on creation for the "break_name" field.
	DefaultBreakName string
	// DefaultWorkDurationMinutes holds the default value on creation for the "work_duration_minutes" field.
	DefaultWorkDurationMinutes int
	// DefaultLabel holds the default value on creation for the "label" field.
	DefaultLabel string
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// DefaultCorrelationID holds the default value on creation for the "correlation_id" field.
	DefaultCorrelationID string
)

// OrderOption defines the ordering options for the BreakEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByBreakID orders the results by the break_id field.
func ByBreakID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByBreakName orders the results by the break_name field.
func ByBreakName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakName, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByWorkDurationMinutes orders the results by the work_duration_minutes field.
func ByWorkDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkDurationMinutes, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByWorkEndAt orders the results by the work_end_at field.
func ByWorkEndAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkEndAt, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}
