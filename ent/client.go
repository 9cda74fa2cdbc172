// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mach-hub-g1/edugamers-engine/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/mach-hub-g1/edugamers-engine/ent/pathevent"
	"github.com/mach-hub-g1/edugamers-engine/ent/profilesnapshot"
	"github.com/mach-hub-g1/edugamers-engine/ent/riskevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// PathEvent is the client for interacting with the PathEvent builders.
	PathEvent *PathEventClient
	// ProfileSnapshot is the client for interacting with the ProfileSnapshot builders.
	ProfileSnapshot *ProfileSnapshotClient
	// RiskEvent is the client for interacting with the RiskEvent builders.
	RiskEvent *RiskEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.PathEvent = NewPathEventClient(c.config)
	c.ProfileSnapshot = NewProfileSnapshotClient(c.config)
	c.RiskEvent = NewRiskEventClient(c.config)
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
		PathEvent:       NewPathEventClient(cfg),
		ProfileSnapshot: NewProfileSnapshotClient(cfg),
		RiskEvent:       NewRiskEventClient(cfg),
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
		PathEvent:       NewPathEventClient(cfg),
		ProfileSnapshot: NewProfileSnapshotClient(cfg),
		RiskEvent:       NewRiskEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		PathEvent.
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
	c.PathEvent.Use(hooks...)
	c.ProfileSnapshot.Use(hooks...)
	c.RiskEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.PathEvent.Intercept(interceptors...)
	c.ProfileSnapshot.Intercept(interceptors...)
	c.RiskEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *PathEventMutation:
		return c.PathEvent.mutate(ctx, m)
	case *ProfileSnapshotMutation:
		return c.ProfileSnapshot.mutate(ctx, m)
	case *RiskEventMutation:
		return c.RiskEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// PathEventClient is a client for the PathEvent schema.
type PathEventClient struct {
	config
}

// NewPathEventClient returns a client for the PathEvent from the given config.
func NewPathEventClient(c config) *PathEventClient {
	return &PathEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pathevent.Hooks(f(g(h())))`.
func (c *PathEventClient) Use(hooks ...Hook) {
	c.hooks.PathEvent = append(c.hooks.PathEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pathevent.Intercept(f(g(h())))`.
func (c *PathEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PathEvent = append(c.inters.PathEvent, interceptors...)
}

// Create returns a builder for creating a PathEvent entity.
func (c *PathEventClient) Create() *PathEventCreate {
	mutation := newPathEventMutation(c.config, OpCreate)
	return &PathEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PathEvent entities.
func (c *PathEventClient) CreateBulk(builders ...*PathEventCreate) *PathEventCreateBulk {
	return &PathEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PathEventClient) MapCreateBulk(slice any, setFunc func(*PathEventCreate, int)) *PathEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PathEventCreateBulk{err: fmt.Errorf("calling to PathEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PathEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PathEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PathEvent.
func (c *PathEventClient) Update() *PathEventUpdate {
	mutation := newPathEventMutation(c.config, OpUpdate)
	return &PathEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PathEventClient) UpdateOne(_m *PathEvent) *PathEventUpdateOne {
	mutation := newPathEventMutation(c.config, OpUpdateOne, withPathEvent(_m))
	return &PathEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PathEventClient) UpdateOneID(id int) *PathEventUpdateOne {
	mutation := newPathEventMutation(c.config, OpUpdateOne, withPathEventID(id))
	return &PathEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PathEvent.
func (c *PathEventClient) Delete() *PathEventDelete {
	mutation := newPathEventMutation(c.config, OpDelete)
	return &PathEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PathEventClient) DeleteOne(_m *PathEvent) *PathEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PathEventClient) DeleteOneID(id int) *PathEventDeleteOne {
	builder := c.Delete().Where(pathevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PathEventDeleteOne{builder}
}

// Query returns a query builder for PathEvent.
func (c *PathEventClient) Query() *PathEventQuery {
	return &PathEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePathEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PathEvent entity by its id.
func (c *PathEventClient) Get(ctx context.Context, id int) (*PathEvent, error) {
	return c.Query().Where(pathevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PathEventClient) GetX(ctx context.Context, id int) *PathEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PathEventClient) Hooks() []Hook {
	return c.hooks.PathEvent
}

// Interceptors returns the client interceptors.
func (c *PathEventClient) Interceptors() []Interceptor {
	return c.inters.PathEvent
}

func (c *PathEventClient) mutate(ctx context.Context, m *PathEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PathEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PathEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PathEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PathEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PathEvent mutation op: %q", m.Op())
	}
}

// ProfileSnapshotClient is a client for the ProfileSnapshot schema.
type ProfileSnapshotClient struct {
	config
}

// NewProfileSnapshotClient returns a client for the ProfileSnapshot from the given config.
func NewProfileSnapshotClient(c config) *ProfileSnapshotClient {
	return &ProfileSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profilesnapshot.Hooks(f(g(h())))`.
func (c *ProfileSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ProfileSnapshot = append(c.hooks.ProfileSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profilesnapshot.Intercept(f(g(h())))`.
func (c *ProfileSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProfileSnapshot = append(c.inters.ProfileSnapshot, interceptors...)
}

// Create returns a builder for creating a ProfileSnapshot entity.
func (c *ProfileSnapshotClient) Create() *ProfileSnapshotCreate {
	mutation := newProfileSnapshotMutation(c.config, OpCreate)
	return &ProfileSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProfileSnapshot entities.
func (c *ProfileSnapshotClient) CreateBulk(builders ...*ProfileSnapshotCreate) *ProfileSnapshotCreateBulk {
	return &ProfileSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileSnapshotClient) MapCreateBulk(slice any, setFunc func(*ProfileSnapshotCreate, int)) *ProfileSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileSnapshotCreateBulk{err: fmt.Errorf("calling to ProfileSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProfileSnapshot.
func (c *ProfileSnapshotClient) Update() *ProfileSnapshotUpdate {
	mutation := newProfileSnapshotMutation(c.config, OpUpdate)
	return &ProfileSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileSnapshotClient) UpdateOne(_m *ProfileSnapshot) *ProfileSnapshotUpdateOne {
	mutation := newProfileSnapshotMutation(c.config, OpUpdateOne, withProfileSnapshot(_m))
	return &ProfileSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileSnapshotClient) UpdateOneID(id int) *ProfileSnapshotUpdateOne {
	mutation := newProfileSnapshotMutation(c.config, OpUpdateOne, withProfileSnapshotID(id))
	return &ProfileSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProfileSnapshot.
func (c *ProfileSnapshotClient) Delete() *ProfileSnapshotDelete {
	mutation := newProfileSnapshotMutation(c.config, OpDelete)
	return &ProfileSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileSnapshotClient) DeleteOne(_m *ProfileSnapshot) *ProfileSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileSnapshotClient) DeleteOneID(id int) *ProfileSnapshotDeleteOne {
	builder := c.Delete().Where(profilesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileSnapshotDeleteOne{builder}
}

// Query returns a query builder for ProfileSnapshot.
func (c *ProfileSnapshotClient) Query() *ProfileSnapshotQuery {
	return &ProfileSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfileSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ProfileSnapshot entity by its id.
func (c *ProfileSnapshotClient) Get(ctx context.Context, id int) (*ProfileSnapshot, error) {
	return c.Query().Where(profilesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileSnapshotClient) GetX(ctx context.Context, id int) *ProfileSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileSnapshotClient) Hooks() []Hook {
	return c.hooks.ProfileSnapshot
}

// Interceptors returns the client interceptors.
func (c *ProfileSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ProfileSnapshot
}

func (c *ProfileSnapshotClient) mutate(ctx context.Context, m *ProfileSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProfileSnapshot mutation op: %q", m.Op())
	}
}

// RiskEventClient is a client for the RiskEvent schema.
type RiskEventClient struct {
	config
}

// NewRiskEventClient returns a client for the RiskEvent from the given config.
func NewRiskEventClient(c config) *RiskEventClient {
	return &RiskEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `riskevent.Hooks(f(g(h())))`.
func (c *RiskEventClient) Use(hooks ...Hook) {
	c.hooks.RiskEvent = append(c.hooks.RiskEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `riskevent.Intercept(f(g(h())))`.
func (c *RiskEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RiskEvent = append(c.inters.RiskEvent, interceptors...)
}

// Create returns a builder for creating a RiskEvent entity.
func (c *RiskEventClient) Create() *RiskEventCreate {
	mutation := newRiskEventMutation(c.config, OpCreate)
	return &RiskEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RiskEvent entities.
func (c *RiskEventClient) CreateBulk(builders ...*RiskEventCreate) *RiskEventCreateBulk {
	return &RiskEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RiskEventClient) MapCreateBulk(slice any, setFunc func(*RiskEventCreate, int)) *RiskEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RiskEventCreateBulk{err: fmt.Errorf("calling to RiskEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RiskEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RiskEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RiskEvent.
func (c *RiskEventClient) Update() *RiskEventUpdate {
	mutation := newRiskEventMutation(c.config, OpUpdate)
	return &RiskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RiskEventClient) UpdateOne(_m *RiskEvent) *RiskEventUpdateOne {
	mutation := newRiskEventMutation(c.config, OpUpdateOne, withRiskEvent(_m))
	return &RiskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RiskEventClient) UpdateOneID(id int) *RiskEventUpdateOne {
	mutation := newRiskEventMutation(c.config, OpUpdateOne, withRiskEventID(id))
	return &RiskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RiskEvent.
func (c *RiskEventClient) Delete() *RiskEventDelete {
	mutation := newRiskEventMutation(c.config, OpDelete)
	return &RiskEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RiskEventClient) DeleteOne(_m *RiskEvent) *RiskEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RiskEventClient) DeleteOneID(id int) *RiskEventDeleteOne {
	builder := c.Delete().Where(riskevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RiskEventDeleteOne{builder}
}

// Query returns a query builder for RiskEvent.
func (c *RiskEventClient) Query() *RiskEventQuery {
	return &RiskEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRiskEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RiskEvent entity by its id.
func (c *RiskEventClient) Get(ctx context.Context, id int) (*RiskEvent, error) {
	return c.Query().Where(riskevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RiskEventClient) GetX(ctx context.Context, id int) *RiskEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RiskEventClient) Hooks() []Hook {
	return c.hooks.RiskEvent
}

// Interceptors returns the client interceptors.
func (c *RiskEventClient) Interceptors() []Interceptor {
	return c.inters.RiskEvent
}

func (c *RiskEventClient) mutate(ctx context.Context, m *RiskEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RiskEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RiskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RiskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RiskEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RiskEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		PathEvent, ProfileSnapshot, RiskEvent []ent.Hook
	}
	inters struct {
		PathEvent, ProfileSnapshot, RiskEvent []ent.Interceptor
	}
)
