// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BreakEventsColumns holds the columns for the "break_events" table.
	BreakEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "break_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: "unknown"},
		{Name: "break_name", Type: field.TypeString, Default: ""},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "work_duration_minutes", Type: field.TypeInt, Default: 0},
		{Name: "label", Type: field.TypeString, Default: ""},
		{Name: "completed", Type: field.TypeBool},
		{Name: "work_end_at", Type: field.TypeTime, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "rule"},
		{Name: "correlation_id", Type: field.TypeString, Default: ""},
	}
	// BreakEventsTable holds the schema information for the "break_events" table.
	BreakEventsTable = &schema.Table{
		Name:       "break_events",
		Columns:    BreakEventsColumns,
		PrimaryKey: []*schema.Column{BreakEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "breakevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[1]},
			},
			{
				Name:    "breakevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[2]},
			},
			{
				Name:    "breakevent_break_id",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[3]},
			},
			{
				Name:    "breakevent_category",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[4]},
			},
			{
				Name:    "breakevent_completed",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[9]},
			},
		},
	}
	// KvEntriesColumns holds the columns for the "kv_entries" table.
	KvEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// KvEntriesTable holds the schema information for the "kv_entries" table.
	KvEntriesTable = &schema.Table{
		Name:       "kv_entries",
		Columns:    KvEntriesColumns,
		PrimaryKey: []*schema.Column{KvEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "kventry_key",
				Unique:  false,
				Columns: []*schema.Column{KvEntriesColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BreakEventsTable,
		KvEntriesTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
