// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/daehan/examly/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/daehan/examly/ent/answerevent"
	"github.com/daehan/examly/ent/attemptevent"
	"github.com/daehan/examly/ent/lecture"
	"github.com/daehan/examly/ent/llmrequestevent"
	"github.com/daehan/examly/ent/question"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Lecture is the client for interacting with the Lecture builders.
	Lecture *LectureClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Lecture = NewLectureClient(c.config)
	c.Question = NewQuestionClient(c.config)
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
		AnswerEvent:     NewAnswerEventClient(cfg),
		AttemptEvent:    NewAttemptEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Lecture:         NewLectureClient(cfg),
		Question:        NewQuestionClient(cfg),
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
		AnswerEvent:     NewAnswerEventClient(cfg),
		AttemptEvent:    NewAttemptEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Lecture:         NewLectureClient(cfg),
		Question:        NewQuestionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerEvent.
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
	c.AnswerEvent.Use(hooks...)
	c.AttemptEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.Lecture.Use(hooks...)
	c.Question.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnswerEvent.Intercept(interceptors...)
	c.AttemptEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.Lecture.Intercept(interceptors...)
	c.Question.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LectureMutation:
		return c.Lecture.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(_m *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(_m))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(_m *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(_m *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(_m))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(_m *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
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

// LectureClient is a client for the Lecture schema.
type LectureClient struct {
	config
}

// NewLectureClient returns a client for the Lecture from the given config.
func NewLectureClient(c config) *LectureClient {
	return &LectureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lecture.Hooks(f(g(h())))`.
func (c *LectureClient) Use(hooks ...Hook) {
	c.hooks.Lecture = append(c.hooks.Lecture, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lecture.Intercept(f(g(h())))`.
func (c *LectureClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lecture = append(c.inters.Lecture, interceptors...)
}

// Create returns a builder for creating a Lecture entity.
func (c *LectureClient) Create() *LectureCreate {
	mutation := newLectureMutation(c.config, OpCreate)
	return &LectureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lecture entities.
func (c *LectureClient) CreateBulk(builders ...*LectureCreate) *LectureCreateBulk {
	return &LectureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LectureClient) MapCreateBulk(slice any, setFunc func(*LectureCreate, int)) *LectureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LectureCreateBulk{err: fmt.Errorf("calling to LectureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LectureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LectureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lecture.
func (c *LectureClient) Update() *LectureUpdate {
	mutation := newLectureMutation(c.config, OpUpdate)
	return &LectureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LectureClient) UpdateOne(_m *Lecture) *LectureUpdateOne {
	mutation := newLectureMutation(c.config, OpUpdateOne, withLecture(_m))
	return &LectureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LectureClient) UpdateOneID(id int) *LectureUpdateOne {
	mutation := newLectureMutation(c.config, OpUpdateOne, withLectureID(id))
	return &LectureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lecture.
func (c *LectureClient) Delete() *LectureDelete {
	mutation := newLectureMutation(c.config, OpDelete)
	return &LectureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LectureClient) DeleteOne(_m *Lecture) *LectureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LectureClient) DeleteOneID(id int) *LectureDeleteOne {
	builder := c.Delete().Where(lecture.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LectureDeleteOne{builder}
}

// Query returns a query builder for Lecture.
func (c *LectureClient) Query() *LectureQuery {
	return &LectureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLecture},
		inters: c.Interceptors(),
	}
}

// Get returns a Lecture entity by its id.
func (c *LectureClient) Get(ctx context.Context, id int) (*Lecture, error) {
	return c.Query().Where(lecture.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LectureClient) GetX(ctx context.Context, id int) *Lecture {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LectureClient) Hooks() []Hook {
	return c.hooks.Lecture
}

// Interceptors returns the client interceptors.
func (c *LectureClient) Interceptors() []Interceptor {
	return c.inters.Lecture
}

func (c *LectureClient) mutate(ctx context.Context, m *LectureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LectureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LectureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LectureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LectureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lecture mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id int) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id int) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id int) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id int) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerEvent, AttemptEvent, LLMRequestEvent, Lecture, Question []ent.Hook
	}
	inters struct {
		AnswerEvent, AttemptEvent, LLMRequestEvent, Lecture, Question []ent.Interceptor
	}
)
