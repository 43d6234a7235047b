// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BreakEvent is the predicate function for breakevent builders.
type BreakEvent func(*sql.Selector)

// KVEntry is the predicate function for kventry builders.
type KVEntry func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)
