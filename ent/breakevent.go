// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/breet/ent/breakevent"
)

// BreakEvent is the model entity for the BreakEvent schema.
type BreakEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Catalog id of the break, or 'manual'
	BreakID string `json:"break_id,omitempty"`
	// Break category: eyeExercise, stretching, breathing, hydration, movement
	Category string `json:"category,omitempty"`
	// Display name of the chosen candidate
	BreakName string `json:"break_name,omitempty"`
	// Break length actually taken, in minutes
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// Work interval that preceded the break (0 if unknown)
	WorkDurationMinutes int `json:"work_duration_minutes,omitempty"`
	// Preset label such as 25/5 or 50/10
	Label string `json:"label,omitempty"`
	// Whether the break ran to its end
	Completed bool `json:"completed,omitempty"`
	// When the preceding work interval ended
	WorkEndAt time.Time `json:"work_end_at,omitempty"`
	// Recommendation source: ai or rule
	Source string `json:"source,omitempty"`
	// Recommendation correlation id, if any
	CorrelationID string `json:"correlation_id,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BreakEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case breakevent.FieldCompleted:
			values[i] = new(sql.NullBool)
		case breakevent.FieldID, breakevent.FieldSequence, breakevent.FieldDurationMinutes, breakevent.FieldWorkDurationMinutes:
			values[i] = new(sql.NullInt64)
		case breakevent.FieldBreakID, breakevent.FieldCategory, breakevent.FieldBreakName, breakevent.FieldLabel, breakevent.FieldSource, breakevent.FieldCorrelationID:
			values[i] = new(sql.NullString)
		case breakevent.FieldTimestamp, breakevent.FieldWorkEndAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BreakEvent fields.
func (_m *BreakEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case breakevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case breakevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case breakevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case breakevent.FieldBreakID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field break_id", values[i])
			} else if value.Valid {
				_m.BreakID = value.String
			}
		case breakevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case breakevent.FieldBreakName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field break_name", values[i])
			} else if value.Valid {
				_m.BreakName = value.String
			}
		case breakevent.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case breakevent.FieldWorkDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field work_duration_minutes", values[i])
			} else if value.Valid {
				_m.WorkDurationMinutes = int(value.Int64)
			}
		case breakevent.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case breakevent.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case breakevent.FieldWorkEndAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field work_end_at", values[i])
			} else if value.Valid {
				_m.WorkEndAt = value.Time
			}
		case breakevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case breakevent.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BreakEvent.
// This includes values selected through modifiers, order, etc.
func (_m *BreakEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BreakEvent.
// Note that you need to call BreakEvent.Unwrap() before calling this method if this BreakEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BreakEvent) Update() *BreakEventUpdateOne {
	return NewBreakEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BreakEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BreakEvent) Unwrap() *BreakEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BreakEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BreakEvent) String() string {
	var builder strings.Builder
	builder.WriteString("BreakEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("break_id=")
	builder.WriteString(_m.BreakID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("break_name=")
	builder.WriteString(_m.BreakName)
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("work_duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkDurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("work_end_at=")
	builder.WriteString(_m.WorkEndAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("correlation_id=")
	builder.WriteString(_m.CorrelationID)
	builder.WriteByte(')')
	return builder.String()
}

// BreakEvents is a parsable slice of BreakEvent.
type BreakEvents []*BreakEvent
