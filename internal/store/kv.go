package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/breet/ent"
	"github.com/abhisek/breet/ent/kventry"
)

// Change describes one key-value mutation delivered to watchers.
// Value is nil when the key was removed.
type Change struct {
	Key   string
	Value json.RawMessage
}

// KV is the shared key-value state. It is read by every surface but each
// key namespace has a single writer by convention: the session machine
// owns timer and candidate keys, UI surfaces own their own keys (todos,
// profile edits). Watchers are in-process: the session machine is the one
// authoritative process, so cross-process change feeds are not needed.
type KV struct {
	client *ent.Client

	// mu serializes read-modify-write upserts per process.
	mu sync.Mutex

	subMu   sync.RWMutex
	subs    map[string]map[int]func(Change)
	nextSub int
}

func newKV(client *ent.Client) *KV {
	return &KV{
		client: client,
		subs:   make(map[string]map[int]func(Change)),
	}
}

// Get unmarshals the value stored under key into dest.
// Returns false if the key does not exist.
func (kv *KV) Get(ctx context.Context, key string, dest any) (bool, error) {
	row, err := kv.client.KVEntry.Query().
		Where(kventry.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("get %q: %w", key, err)
	}
	if err := json.Unmarshal(row.Value, dest); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// Set stores val under key, JSON-encoded, and notifies watchers.
func (kv *KV) Set(ctx context.Context, key string, val any) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	kv.mu.Lock()
	err = kv.upsert(ctx, key, raw)
	kv.mu.Unlock()
	if err != nil {
		return err
	}

	kv.notify(Change{Key: key, Value: raw})
	return nil
}

// SetAll stores several keys, notifying watchers per key. Writes are
// sequential, not transactional: last-writer-wins per key is the store's
// contract.
func (kv *KV) SetAll(ctx context.Context, kvs map[string]any) error {
	for k, v := range kvs {
		if err := kv.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the given keys and notifies watchers.
func (kv *KV) Remove(ctx context.Context, keys ...string) error {
	kv.mu.Lock()
	_, err := kv.client.KVEntry.Delete().
		Where(kventry.KeyIn(keys...)).
		Exec(ctx)
	kv.mu.Unlock()
	if err != nil {
		return fmt.Errorf("remove keys: %w", err)
	}

	for _, k := range keys {
		kv.notify(Change{Key: k})
	}
	return nil
}

// RemoveByPrefix deletes all keys starting with prefix. Used to clear the
// namespaced keys of a superseded selection session in one sweep.
func (kv *KV) RemoveByPrefix(ctx context.Context, prefix string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	rows, err := kv.client.KVEntry.Query().
		Where(kventry.KeyHasPrefix(prefix)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("list prefix %q: %w", prefix, err)
	}
	if len(rows) == 0 {
		return nil
	}

	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Key
	}
	if _, err := kv.client.KVEntry.Delete().
		Where(kventry.KeyIn(keys...)).
		Exec(ctx); err != nil {
		return fmt.Errorf("remove prefix %q: %w", prefix, err)
	}

	for _, k := range keys {
		kv.notify(Change{Key: k})
	}
	return nil
}

// Watch registers fn for changes to key. The returned cancel func
// unregisters it. fn runs on the writer's goroutine and must not block.
func (kv *KV) Watch(key string, fn func(Change)) (cancel func()) {
	kv.subMu.Lock()
	defer kv.subMu.Unlock()

	id := kv.nextSub
	kv.nextSub++
	if kv.subs[key] == nil {
		kv.subs[key] = make(map[int]func(Change))
	}
	kv.subs[key][id] = fn

	return func() {
		kv.subMu.Lock()
		defer kv.subMu.Unlock()
		delete(kv.subs[key], id)
	}
}

func (kv *KV) upsert(ctx context.Context, key string, raw json.RawMessage) error {
	now := time.Now()
	row, err := kv.client.KVEntry.Query().
		Where(kventry.Key(key)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("lookup %q: %w", key, err)
		}
		_, err = kv.client.KVEntry.Create().
			SetKey(key).
			SetValue(raw).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create %q: %w", key, err)
		}
		return nil
	}

	_, err = kv.client.KVEntry.UpdateOne(row).
		SetValue(raw).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update %q: %w", key, err)
	}
	return nil
}

func (kv *KV) notify(c Change) {
	kv.subMu.RLock()
	defer kv.subMu.RUnlock()
	for _, fn := range kv.subs[c.Key] {
		fn(c)
	}
}
