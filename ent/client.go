// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/breet/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/breet/ent/breakevent"
	"github.com/abhisek/breet/ent/kventry"
	"github.com/abhisek/breet/ent/llmrequestevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BreakEvent is the client for interacting with the BreakEvent builders.
	BreakEvent *BreakEventClient
	// KVEntry is the client for interacting with the KVEntry builders.
	KVEntry *KVEntryClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BreakEvent = NewBreakEventClient(c.config)
	c.KVEntry = NewKVEntryClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		BreakEvent:      NewBreakEventClient(cfg),
		KVEntry:         NewKVEntryClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		BreakEvent:      NewBreakEventClient(cfg),
		KVEntry:         NewKVEntryClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BreakEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.BreakEvent.Use(hooks...)
	c.KVEntry.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BreakEvent.Intercept(interceptors...)
	c.KVEntry.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BreakEventMutation:
		return c.BreakEvent.mutate(ctx, m)
	case *KVEntryMutation:
		return c.KVEntry.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BreakEventClient is a client for the BreakEvent schema.
type BreakEventClient struct {
	config
}

// NewBreakEventClient returns a client for the BreakEvent from the given config.
func NewBreakEventClient(c config) *BreakEventClient {
	return &BreakEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `breakevent.Hooks(f(g(h())))`.
func (c *BreakEventClient) Use(hooks ...Hook) {
	c.hooks.BreakEvent = append(c.hooks.BreakEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `breakevent.Intercept(f(g(h())))`.
func (c *BreakEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.BreakEvent = append(c.inters.BreakEvent, interceptors...)
}

// Create returns a builder for creating a BreakEvent entity.
func (c *BreakEventClient) Create() *BreakEventCreate {
	mutation := newBreakEventMutation(c.config, OpCreate)
	return &BreakEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BreakEvent entities.
func (c *BreakEventClient) CreateBulk(builders ...*BreakEventCreate) *BreakEventCreateBulk {
	return &BreakEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BreakEventClient) MapCreateBulk(slice any, setFunc func(*BreakEventCreate, int)) *BreakEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BreakEventCreateBulk{err: fmt.Errorf("calling to BreakEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BreakEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BreakEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BreakEvent.
func (c *BreakEventClient) Update() *BreakEventUpdate {
	mutation := newBreakEventMutation(c.config, OpUpdate)
	return &BreakEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BreakEventClient) UpdateOne(_m *BreakEvent) *BreakEventUpdateOne {
	mutation := newBreakEventMutation(c.config, OpUpdateOne, withBreakEvent(_m))
	return &BreakEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BreakEventClient) UpdateOneID(id int) *BreakEventUpdateOne {
	mutation := newBreakEventMutation(c.config, OpUpdateOne, withBreakEventID(id))
	return &BreakEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BreakEvent.
func (c *BreakEventClient) Delete() *BreakEventDelete {
	mutation := newBreakEventMutation(c.config, OpDelete)
	return &BreakEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BreakEventClient) DeleteOne(_m *BreakEvent) *BreakEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BreakEventClient) DeleteOneID(id int) *BreakEventDeleteOne {
	builder := c.Delete().Where(breakevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BreakEventDeleteOne{builder}
}

// Query returns a query builder for BreakEvent.
func (c *BreakEventClient) Query() *BreakEventQuery {
	return &BreakEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBreakEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a BreakEvent entity by its id.
func (c *BreakEventClient) Get(ctx context.Context, id int) (*BreakEvent, error) {
	return c.Query().Where(breakevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BreakEventClient) GetX(ctx context.Context, id int) *BreakEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BreakEventClient) Hooks() []Hook {
	return c.hooks.BreakEvent
}

// Interceptors returns the client interceptors.
func (c *BreakEventClient) Interceptors() []Interceptor {
	return c.inters.BreakEvent
}

func (c *BreakEventClient) mutate(ctx context.Context, m *BreakEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BreakEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BreakEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BreakEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BreakEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BreakEvent mutation op: %q", m.Op())
	}
}

// KVEntryClient is a client for the KVEntry schema.
type KVEntryClient struct {
	config
}

// NewKVEntryClient returns a client for the KVEntry from the given config.
func NewKVEntryClient(c config) *KVEntryClient {
	return &KVEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `kventry.Hooks(f(g(h())))`.
func (c *KVEntryClient) Use(hooks ...Hook) {
	c.hooks.KVEntry = append(c.hooks.KVEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `kventry.Intercept(f(g(h())))`.
func (c *KVEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.KVEntry = append(c.inters.KVEntry, interceptors...)
}

// Create returns a builder for creating a KVEntry entity.
func (c *KVEntryClient) Create() *KVEntryCreate {
	mutation := newKVEntryMutation(c.config, OpCreate)
	return &KVEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KVEntry entities.
func (c *KVEntryClient) CreateBulk(builders ...*KVEntryCreate) *KVEntryCreateBulk {
	return &KVEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KVEntryClient) MapCreateBulk(slice any, setFunc func(*KVEntryCreate, int)) *KVEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KVEntryCreateBulk{err: fmt.Errorf("calling to KVEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KVEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KVEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KVEntry.
func (c *KVEntryClient) Update() *KVEntryUpdate {
	mutation := newKVEntryMutation(c.config, OpUpdate)
	return &KVEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KVEntryClient) UpdateOne(_m *KVEntry) *KVEntryUpdateOne {
	mutation := newKVEntryMutation(c.config, OpUpdateOne, withKVEntry(_m))
	return &KVEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KVEntryClient) UpdateOneID(id int) *KVEntryUpdateOne {
	mutation := newKVEntryMutation(c.config, OpUpdateOne, withKVEntryID(id))
	return &KVEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KVEntry.
func (c *KVEntryClient) Delete() *KVEntryDelete {
	mutation := newKVEntryMutation(c.config, OpDelete)
	return &KVEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KVEntryClient) DeleteOne(_m *KVEntry) *KVEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KVEntryClient) DeleteOneID(id int) *KVEntryDeleteOne {
	builder := c.Delete().Where(kventry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KVEntryDeleteOne{builder}
}

// Query returns a query builder for KVEntry.
func (c *KVEntryClient) Query() *KVEntryQuery {
	return &KVEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKVEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a KVEntry entity by its id.
func (c *KVEntryClient) Get(ctx context.Context, id int) (*KVEntry, error) {
	return c.Query().Where(kventry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KVEntryClient) GetX(ctx context.Context, id int) *KVEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KVEntryClient) Hooks() []Hook {
	return c.hooks.KVEntry
}

// Interceptors returns the client interceptors.
func (c *KVEntryClient) Interceptors() []Interceptor {
	return c.inters.KVEntry
}

func (c *KVEntryClient) mutate(ctx context.Context, m *KVEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KVEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KVEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KVEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KVEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KVEntry mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BreakEvent, KVEntry, LLMRequestEvent []ent.Hook
	}
	inters struct {
		BreakEvent, KVEntry, LLMRequestEvent []ent.Interceptor
	}
)
