// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/weft-labs/weft/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weft-labs/weft/ent/permission"
	"github.com/weft-labs/weft/ent/userratelimit"
	"github.com/weft-labs/weft/ent/workflow"
	"github.com/weft-labs/weft/ent/workflowblock"
	"github.com/weft-labs/weft/ent/workflowedge"
	"github.com/weft-labs/weft/ent/workflowoperation"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Permission is the client for interacting with the Permission builders.
	Permission *PermissionClient
	// UserRateLimit is the client for interacting with the UserRateLimit builders.
	UserRateLimit *UserRateLimitClient
	// Workflow is the client for interacting with the Workflow builders.
	Workflow *WorkflowClient
	// WorkflowBlock is the client for interacting with the WorkflowBlock builders.
	WorkflowBlock *WorkflowBlockClient
	// WorkflowEdge is the client for interacting with the WorkflowEdge builders.
	WorkflowEdge *WorkflowEdgeClient
	// WorkflowOperation is the client for interacting with the WorkflowOperation builders.
	WorkflowOperation *WorkflowOperationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Permission = NewPermissionClient(c.config)
	c.UserRateLimit = NewUserRateLimitClient(c.config)
	c.Workflow = NewWorkflowClient(c.config)
	c.WorkflowBlock = NewWorkflowBlockClient(c.config)
	c.WorkflowEdge = NewWorkflowEdgeClient(c.config)
	c.WorkflowOperation = NewWorkflowOperationClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		Permission:        NewPermissionClient(cfg),
		UserRateLimit:     NewUserRateLimitClient(cfg),
		Workflow:          NewWorkflowClient(cfg),
		WorkflowBlock:     NewWorkflowBlockClient(cfg),
		WorkflowEdge:      NewWorkflowEdgeClient(cfg),
		WorkflowOperation: NewWorkflowOperationClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		Permission:        NewPermissionClient(cfg),
		UserRateLimit:     NewUserRateLimitClient(cfg),
		Workflow:          NewWorkflowClient(cfg),
		WorkflowBlock:     NewWorkflowBlockClient(cfg),
		WorkflowEdge:      NewWorkflowEdgeClient(cfg),
		WorkflowOperation: NewWorkflowOperationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Permission.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Permission, c.UserRateLimit, c.Workflow, c.WorkflowBlock, c.WorkflowEdge,
		c.WorkflowOperation,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Permission, c.UserRateLimit, c.Workflow, c.WorkflowBlock, c.WorkflowEdge,
		c.WorkflowOperation,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *PermissionMutation:
		return c.Permission.mutate(ctx, m)
	case *UserRateLimitMutation:
		return c.UserRateLimit.mutate(ctx, m)
	case *WorkflowMutation:
		return c.Workflow.mutate(ctx, m)
	case *WorkflowBlockMutation:
		return c.WorkflowBlock.mutate(ctx, m)
	case *WorkflowEdgeMutation:
		return c.WorkflowEdge.mutate(ctx, m)
	case *WorkflowOperationMutation:
		return c.WorkflowOperation.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// PermissionClient is a client for the Permission schema.
type PermissionClient struct {
	config
}

// NewPermissionClient returns a client for the Permission from the given config.
func NewPermissionClient(c config) *PermissionClient {
	return &PermissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `permission.Hooks(f(g(h())))`.
func (c *PermissionClient) Use(hooks ...Hook) {
	c.hooks.Permission = append(c.hooks.Permission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `permission.Intercept(f(g(h())))`.
func (c *PermissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Permission = append(c.inters.Permission, interceptors...)
}

// Create returns a builder for creating a Permission entity.
func (c *PermissionClient) Create() *PermissionCreate {
	mutation := newPermissionMutation(c.config, OpCreate)
	return &PermissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Permission entities.
func (c *PermissionClient) CreateBulk(builders ...*PermissionCreate) *PermissionCreateBulk {
	return &PermissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PermissionClient) MapCreateBulk(slice any, setFunc func(*PermissionCreate, int)) *PermissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PermissionCreateBulk{err: fmt.Errorf("calling to PermissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PermissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PermissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Permission.
func (c *PermissionClient) Update() *PermissionUpdate {
	mutation := newPermissionMutation(c.config, OpUpdate)
	return &PermissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PermissionClient) UpdateOne(_m *Permission) *PermissionUpdateOne {
	mutation := newPermissionMutation(c.config, OpUpdateOne, withPermission(_m))
	return &PermissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PermissionClient) UpdateOneID(id string) *PermissionUpdateOne {
	mutation := newPermissionMutation(c.config, OpUpdateOne, withPermissionID(id))
	return &PermissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Permission.
func (c *PermissionClient) Delete() *PermissionDelete {
	mutation := newPermissionMutation(c.config, OpDelete)
	return &PermissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PermissionClient) DeleteOne(_m *Permission) *PermissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PermissionClient) DeleteOneID(id string) *PermissionDeleteOne {
	builder := c.Delete().Where(permission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PermissionDeleteOne{builder}
}

// Query returns a query builder for Permission.
func (c *PermissionClient) Query() *PermissionQuery {
	return &PermissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePermission},
		inters: c.Interceptors(),
	}
}

// Get returns a Permission entity by its id.
func (c *PermissionClient) Get(ctx context.Context, id string) (*Permission, error) {
	return c.Query().Where(permission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PermissionClient) GetX(ctx context.Context, id string) *Permission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PermissionClient) Hooks() []Hook {
	return c.hooks.Permission
}

// Interceptors returns the client interceptors.
func (c *PermissionClient) Interceptors() []Interceptor {
	return c.inters.Permission
}

func (c *PermissionClient) mutate(ctx context.Context, m *PermissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PermissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PermissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PermissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PermissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Permission mutation op: %q", m.Op())
	}
}

// UserRateLimitClient is a client for the UserRateLimit schema.
type UserRateLimitClient struct {
	config
}

// NewUserRateLimitClient returns a client for the UserRateLimit from the given config.
func NewUserRateLimitClient(c config) *UserRateLimitClient {
	return &UserRateLimitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userratelimit.Hooks(f(g(h())))`.
func (c *UserRateLimitClient) Use(hooks ...Hook) {
	c.hooks.UserRateLimit = append(c.hooks.UserRateLimit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userratelimit.Intercept(f(g(h())))`.
func (c *UserRateLimitClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserRateLimit = append(c.inters.UserRateLimit, interceptors...)
}

// Create returns a builder for creating a UserRateLimit entity.
func (c *UserRateLimitClient) Create() *UserRateLimitCreate {
	mutation := newUserRateLimitMutation(c.config, OpCreate)
	return &UserRateLimitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserRateLimit entities.
func (c *UserRateLimitClient) CreateBulk(builders ...*UserRateLimitCreate) *UserRateLimitCreateBulk {
	return &UserRateLimitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserRateLimitClient) MapCreateBulk(slice any, setFunc func(*UserRateLimitCreate, int)) *UserRateLimitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserRateLimitCreateBulk{err: fmt.Errorf("calling to UserRateLimitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserRateLimitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserRateLimitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserRateLimit.
func (c *UserRateLimitClient) Update() *UserRateLimitUpdate {
	mutation := newUserRateLimitMutation(c.config, OpUpdate)
	return &UserRateLimitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserRateLimitClient) UpdateOne(_m *UserRateLimit) *UserRateLimitUpdateOne {
	mutation := newUserRateLimitMutation(c.config, OpUpdateOne, withUserRateLimit(_m))
	return &UserRateLimitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserRateLimitClient) UpdateOneID(id string) *UserRateLimitUpdateOne {
	mutation := newUserRateLimitMutation(c.config, OpUpdateOne, withUserRateLimitID(id))
	return &UserRateLimitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserRateLimit.
func (c *UserRateLimitClient) Delete() *UserRateLimitDelete {
	mutation := newUserRateLimitMutation(c.config, OpDelete)
	return &UserRateLimitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserRateLimitClient) DeleteOne(_m *UserRateLimit) *UserRateLimitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserRateLimitClient) DeleteOneID(id string) *UserRateLimitDeleteOne {
	builder := c.Delete().Where(userratelimit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserRateLimitDeleteOne{builder}
}

// Query returns a query builder for UserRateLimit.
func (c *UserRateLimitClient) Query() *UserRateLimitQuery {
	return &UserRateLimitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserRateLimit},
		inters: c.Interceptors(),
	}
}

// Get returns a UserRateLimit entity by its id.
func (c *UserRateLimitClient) Get(ctx context.Context, id string) (*UserRateLimit, error) {
	return c.Query().Where(userratelimit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserRateLimitClient) GetX(ctx context.Context, id string) *UserRateLimit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserRateLimitClient) Hooks() []Hook {
	return c.hooks.UserRateLimit
}

// Interceptors returns the client interceptors.
func (c *UserRateLimitClient) Interceptors() []Interceptor {
	return c.inters.UserRateLimit
}

func (c *UserRateLimitClient) mutate(ctx context.Context, m *UserRateLimitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserRateLimitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserRateLimitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserRateLimitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserRateLimitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserRateLimit mutation op: %q", m.Op())
	}
}

// WorkflowClient is a client for the Workflow schema.
type WorkflowClient struct {
	config
}

// NewWorkflowClient returns a client for the Workflow from the given config.
func NewWorkflowClient(c config) *WorkflowClient {
	return &WorkflowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflow.Hooks(f(g(h())))`.
func (c *WorkflowClient) Use(hooks ...Hook) {
	c.hooks.Workflow = append(c.hooks.Workflow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflow.Intercept(f(g(h())))`.
func (c *WorkflowClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workflow = append(c.inters.Workflow, interceptors...)
}

// Create returns a builder for creating a Workflow entity.
func (c *WorkflowClient) Create() *WorkflowCreate {
	mutation := newWorkflowMutation(c.config, OpCreate)
	return &WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workflow entities.
func (c *WorkflowClient) CreateBulk(builders ...*WorkflowCreate) *WorkflowCreateBulk {
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowClient) MapCreateBulk(slice any, setFunc func(*WorkflowCreate, int)) *WorkflowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowCreateBulk{err: fmt.Errorf("calling to WorkflowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workflow.
func (c *WorkflowClient) Update() *WorkflowUpdate {
	mutation := newWorkflowMutation(c.config, OpUpdate)
	return &WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowClient) UpdateOne(_m *Workflow) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflow(_m))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowClient) UpdateOneID(id string) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflowID(id))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workflow.
func (c *WorkflowClient) Delete() *WorkflowDelete {
	mutation := newWorkflowMutation(c.config, OpDelete)
	return &WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowClient) DeleteOne(_m *Workflow) *WorkflowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowClient) DeleteOneID(id string) *WorkflowDeleteOne {
	builder := c.Delete().Where(workflow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowDeleteOne{builder}
}

// Query returns a query builder for Workflow.
func (c *WorkflowClient) Query() *WorkflowQuery {
	return &WorkflowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflow},
		inters: c.Interceptors(),
	}
}

// Get returns a Workflow entity by its id.
func (c *WorkflowClient) Get(ctx context.Context, id string) (*Workflow, error) {
	return c.Query().Where(workflow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowClient) GetX(ctx context.Context, id string) *Workflow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBlocks queries the blocks edge of a Workflow.
func (c *WorkflowClient) QueryBlocks(_m *Workflow) *WorkflowBlockQuery {
	query := (&WorkflowBlockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(workflowblock.Table, workflowblock.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.BlocksTable, workflow.BlocksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkflowEdges queries the workflow_edges edge of a Workflow.
func (c *WorkflowClient) QueryWorkflowEdges(_m *Workflow) *WorkflowEdgeQuery {
	query := (&WorkflowEdgeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(workflowedge.Table, workflowedge.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.WorkflowEdgesTable, workflow.WorkflowEdgesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOperations queries the operations edge of a Workflow.
func (c *WorkflowClient) QueryOperations(_m *Workflow) *WorkflowOperationQuery {
	query := (&WorkflowOperationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(workflowoperation.Table, workflowoperation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.OperationsTable, workflow.OperationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowClient) Hooks() []Hook {
	return c.hooks.Workflow
}

// Interceptors returns the client interceptors.
func (c *WorkflowClient) Interceptors() []Interceptor {
	return c.inters.Workflow
}

func (c *WorkflowClient) mutate(ctx context.Context, m *WorkflowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workflow mutation op: %q", m.Op())
	}
}

// WorkflowBlockClient is a client for the WorkflowBlock schema.
type WorkflowBlockClient struct {
	config
}

// NewWorkflowBlockClient returns a client for the WorkflowBlock from the given config.
func NewWorkflowBlockClient(c config) *WorkflowBlockClient {
	return &WorkflowBlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowblock.Hooks(f(g(h())))`.
func (c *WorkflowBlockClient) Use(hooks ...Hook) {
	c.hooks.WorkflowBlock = append(c.hooks.WorkflowBlock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowblock.Intercept(f(g(h())))`.
func (c *WorkflowBlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowBlock = append(c.inters.WorkflowBlock, interceptors...)
}

// Create returns a builder for creating a WorkflowBlock entity.
func (c *WorkflowBlockClient) Create() *WorkflowBlockCreate {
	mutation := newWorkflowBlockMutation(c.config, OpCreate)
	return &WorkflowBlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowBlock entities.
func (c *WorkflowBlockClient) CreateBulk(builders ...*WorkflowBlockCreate) *WorkflowBlockCreateBulk {
	return &WorkflowBlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowBlockClient) MapCreateBulk(slice any, setFunc func(*WorkflowBlockCreate, int)) *WorkflowBlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowBlockCreateBulk{err: fmt.Errorf("calling to WorkflowBlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowBlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowBlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowBlock.
func (c *WorkflowBlockClient) Update() *WorkflowBlockUpdate {
	mutation := newWorkflowBlockMutation(c.config, OpUpdate)
	return &WorkflowBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowBlockClient) UpdateOne(_m *WorkflowBlock) *WorkflowBlockUpdateOne {
	mutation := newWorkflowBlockMutation(c.config, OpUpdateOne, withWorkflowBlock(_m))
	return &WorkflowBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowBlockClient) UpdateOneID(id string) *WorkflowBlockUpdateOne {
	mutation := newWorkflowBlockMutation(c.config, OpUpdateOne, withWorkflowBlockID(id))
	return &WorkflowBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowBlock.
func (c *WorkflowBlockClient) Delete() *WorkflowBlockDelete {
	mutation := newWorkflowBlockMutation(c.config, OpDelete)
	return &WorkflowBlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowBlockClient) DeleteOne(_m *WorkflowBlock) *WorkflowBlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowBlockClient) DeleteOneID(id string) *WorkflowBlockDeleteOne {
	builder := c.Delete().Where(workflowblock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowBlockDeleteOne{builder}
}

// Query returns a query builder for WorkflowBlock.
func (c *WorkflowBlockClient) Query() *WorkflowBlockQuery {
	return &WorkflowBlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowBlock},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowBlock entity by its id.
func (c *WorkflowBlockClient) Get(ctx context.Context, id string) (*WorkflowBlock, error) {
	return c.Query().Where(workflowblock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowBlockClient) GetX(ctx context.Context, id string) *WorkflowBlock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a WorkflowBlock.
func (c *WorkflowBlockClient) QueryWorkflow(_m *WorkflowBlock) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowblock.Table, workflowblock.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowblock.WorkflowTable, workflowblock.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowBlockClient) Hooks() []Hook {
	return c.hooks.WorkflowBlock
}

// Interceptors returns the client interceptors.
func (c *WorkflowBlockClient) Interceptors() []Interceptor {
	return c.inters.WorkflowBlock
}

func (c *WorkflowBlockClient) mutate(ctx context.Context, m *WorkflowBlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowBlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowBlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowBlock mutation op: %q", m.Op())
	}
}

// WorkflowEdgeClient is a client for the WorkflowEdge schema.
type WorkflowEdgeClient struct {
	config
}

// NewWorkflowEdgeClient returns a client for the WorkflowEdge from the given config.
func NewWorkflowEdgeClient(c config) *WorkflowEdgeClient {
	return &WorkflowEdgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowedge.Hooks(f(g(h())))`.
func (c *WorkflowEdgeClient) Use(hooks ...Hook) {
	c.hooks.WorkflowEdge = append(c.hooks.WorkflowEdge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowedge.Intercept(f(g(h())))`.
func (c *WorkflowEdgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowEdge = append(c.inters.WorkflowEdge, interceptors...)
}

// Create returns a builder for creating a WorkflowEdge entity.
func (c *WorkflowEdgeClient) Create() *WorkflowEdgeCreate {
	mutation := newWorkflowEdgeMutation(c.config, OpCreate)
	return &WorkflowEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowEdge entities.
func (c *WorkflowEdgeClient) CreateBulk(builders ...*WorkflowEdgeCreate) *WorkflowEdgeCreateBulk {
	return &WorkflowEdgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowEdgeClient) MapCreateBulk(slice any, setFunc func(*WorkflowEdgeCreate, int)) *WorkflowEdgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowEdgeCreateBulk{err: fmt.Errorf("calling to WorkflowEdgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowEdgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowEdgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowEdge.
func (c *WorkflowEdgeClient) Update() *WorkflowEdgeUpdate {
	mutation := newWorkflowEdgeMutation(c.config, OpUpdate)
	return &WorkflowEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowEdgeClient) UpdateOne(_m *WorkflowEdge) *WorkflowEdgeUpdateOne {
	mutation := newWorkflowEdgeMutation(c.config, OpUpdateOne, withWorkflowEdge(_m))
	return &WorkflowEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowEdgeClient) UpdateOneID(id string) *WorkflowEdgeUpdateOne {
	mutation := newWorkflowEdgeMutation(c.config, OpUpdateOne, withWorkflowEdgeID(id))
	return &WorkflowEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowEdge.
func (c *WorkflowEdgeClient) Delete() *WorkflowEdgeDelete {
	mutation := newWorkflowEdgeMutation(c.config, OpDelete)
	return &WorkflowEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowEdgeClient) DeleteOne(_m *WorkflowEdge) *WorkflowEdgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowEdgeClient) DeleteOneID(id string) *WorkflowEdgeDeleteOne {
	builder := c.Delete().Where(workflowedge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowEdgeDeleteOne{builder}
}

// Query returns a query builder for WorkflowEdge.
func (c *WorkflowEdgeClient) Query() *WorkflowEdgeQuery {
	return &WorkflowEdgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowEdge},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowEdge entity by its id.
func (c *WorkflowEdgeClient) Get(ctx context.Context, id string) (*WorkflowEdge, error) {
	return c.Query().Where(workflowedge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowEdgeClient) GetX(ctx context.Context, id string) *WorkflowEdge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a WorkflowEdge.
func (c *WorkflowEdgeClient) QueryWorkflow(_m *WorkflowEdge) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowedge.Table, workflowedge.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowedge.WorkflowTable, workflowedge.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowEdgeClient) Hooks() []Hook {
	return c.hooks.WorkflowEdge
}

// Interceptors returns the client interceptors.
func (c *WorkflowEdgeClient) Interceptors() []Interceptor {
	return c.inters.WorkflowEdge
}

func (c *WorkflowEdgeClient) mutate(ctx context.Context, m *WorkflowEdgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowEdge mutation op: %q", m.Op())
	}
}

// WorkflowOperationClient is a client for the WorkflowOperation schema.
type WorkflowOperationClient struct {
	config
}

// NewWorkflowOperationClient returns a client for the WorkflowOperation from the given config.
func NewWorkflowOperationClient(c config) *WorkflowOperationClient {
	return &WorkflowOperationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowoperation.Hooks(f(g(h())))`.
func (c *WorkflowOperationClient) Use(hooks ...Hook) {
	c.hooks.WorkflowOperation = append(c.hooks.WorkflowOperation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowoperation.Intercept(f(g(h())))`.
func (c *WorkflowOperationClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowOperation = append(c.inters.WorkflowOperation, interceptors...)
}

// Create returns a builder for creating a WorkflowOperation entity.
func (c *WorkflowOperationClient) Create() *WorkflowOperationCreate {
	mutation := newWorkflowOperationMutation(c.config, OpCreate)
	return &WorkflowOperationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowOperation entities.
func (c *WorkflowOperationClient) CreateBulk(builders ...*WorkflowOperationCreate) *WorkflowOperationCreateBulk {
	return &WorkflowOperationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowOperationClient) MapCreateBulk(slice any, setFunc func(*WorkflowOperationCreate, int)) *WorkflowOperationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowOperationCreateBulk{err: fmt.Errorf("calling to WorkflowOperationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowOperationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowOperationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowOperation.
func (c *WorkflowOperationClient) Update() *WorkflowOperationUpdate {
	mutation := newWorkflowOperationMutation(c.config, OpUpdate)
	return &WorkflowOperationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowOperationClient) UpdateOne(_m *WorkflowOperation) *WorkflowOperationUpdateOne {
	mutation := newWorkflowOperationMutation(c.config, OpUpdateOne, withWorkflowOperation(_m))
	return &WorkflowOperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowOperationClient) UpdateOneID(id string) *WorkflowOperationUpdateOne {
	mutation := newWorkflowOperationMutation(c.config, OpUpdateOne, withWorkflowOperationID(id))
	return &WorkflowOperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowOperation.
func (c *WorkflowOperationClient) Delete() *WorkflowOperationDelete {
	mutation := newWorkflowOperationMutation(c.config, OpDelete)
	return &WorkflowOperationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowOperationClient) DeleteOne(_m *WorkflowOperation) *WorkflowOperationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowOperationClient) DeleteOneID(id string) *WorkflowOperationDeleteOne {
	builder := c.Delete().Where(workflowoperation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowOperationDeleteOne{builder}
}

// Query returns a query builder for WorkflowOperation.
func (c *WorkflowOperationClient) Query() *WorkflowOperationQuery {
	return &WorkflowOperationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowOperation},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowOperation entity by its id.
func (c *WorkflowOperationClient) Get(ctx context.Context, id string) (*WorkflowOperation, error) {
	return c.Query().Where(workflowoperation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowOperationClient) GetX(ctx context.Context, id string) *WorkflowOperation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a WorkflowOperation.
func (c *WorkflowOperationClient) QueryWorkflow(_m *WorkflowOperation) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowoperation.Table, workflowoperation.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowoperation.WorkflowTable, workflowoperation.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowOperationClient) Hooks() []Hook {
	return c.hooks.WorkflowOperation
}

// Interceptors returns the client interceptors.
func (c *WorkflowOperationClient) Interceptors() []Interceptor {
	return c.inters.WorkflowOperation
}

func (c *WorkflowOperationClient) mutate(ctx context.Context, m *WorkflowOperationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowOperationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowOperationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowOperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowOperationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowOperation mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Permission, UserRateLimit, Workflow, WorkflowBlock, WorkflowEdge,
		WorkflowOperation []ent.Hook
	}
	inters struct {
		Permission, UserRateLimit, Workflow, WorkflowBlock, WorkflowEdge,
		WorkflowOperation []ent.Interceptor
	}
)
