package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KVEntry is one row of the shared key-value state: session state, user
// profile, pending candidates, selection metadata, todos. Values are
// opaque JSON; ownership of each key namespace is a convention enforced
// by the writers, not the store.
type KVEntry struct {
	ent.Schema
}

func (KVEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Comment("Well-known key, possibly namespaced by selection session id"),
		field.Bytes("value").
			Comment("JSON-encoded value"),
		field.Time("updated_at").
			Comment("Last write time"),
	}
}

func (KVEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
