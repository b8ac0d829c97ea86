// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/trustlane/vetd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trustlane/vetd/ent/company"
	"github.com/trustlane/vetd/ent/companyanalysis"
	"github.com/trustlane/vetd/ent/verificationjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// CompanyAnalysis is the client for interacting with the CompanyAnalysis builders.
	CompanyAnalysis *CompanyAnalysisClient
	// VerificationJob is the client for interacting with the VerificationJob builders.
	VerificationJob *VerificationJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Company = NewCompanyClient(c.config)
	c.CompanyAnalysis = NewCompanyAnalysisClient(c.config)
	c.VerificationJob = NewVerificationJobClient(c.config)
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
		Company:         NewCompanyClient(cfg),
		CompanyAnalysis: NewCompanyAnalysisClient(cfg),
		VerificationJob: NewVerificationJobClient(cfg),
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
		Company:         NewCompanyClient(cfg),
		CompanyAnalysis: NewCompanyAnalysisClient(cfg),
		VerificationJob: NewVerificationJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Company.
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
	c.Company.Use(hooks...)
	c.CompanyAnalysis.Use(hooks...)
	c.VerificationJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Company.Intercept(interceptors...)
	c.CompanyAnalysis.Intercept(interceptors...)
	c.VerificationJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	case *CompanyAnalysisMutation:
		return c.CompanyAnalysis.mutate(ctx, m)
	case *VerificationJobMutation:
		return c.VerificationJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id string) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id string) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id string) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id string) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnalyses queries the analyses edge of a Company.
func (c *CompanyClient) QueryAnalyses(_m *Company) *CompanyAnalysisQuery {
	query := (&CompanyAnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(companyanalysis.Table, companyanalysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.AnalysesTable, company.AnalysesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Company.
func (c *CompanyClient) QueryJobs(_m *Company) *VerificationJobQuery {
	query := (&VerificationJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(verificationjob.Table, verificationjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.JobsTable, company.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Company mutation op: %q", m.Op())
	}
}

// CompanyAnalysisClient is a client for the CompanyAnalysis schema.
type CompanyAnalysisClient struct {
	config
}

// NewCompanyAnalysisClient returns a client for the CompanyAnalysis from the given config.
func NewCompanyAnalysisClient(c config) *CompanyAnalysisClient {
	return &CompanyAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `companyanalysis.Hooks(f(g(h())))`.
func (c *CompanyAnalysisClient) Use(hooks ...Hook) {
	c.hooks.CompanyAnalysis = append(c.hooks.CompanyAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `companyanalysis.Intercept(f(g(h())))`.
func (c *CompanyAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompanyAnalysis = append(c.inters.CompanyAnalysis, interceptors...)
}

// Create returns a builder for creating a CompanyAnalysis entity.
func (c *CompanyAnalysisClient) Create() *CompanyAnalysisCreate {
	mutation := newCompanyAnalysisMutation(c.config, OpCreate)
	return &CompanyAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompanyAnalysis entities.
func (c *CompanyAnalysisClient) CreateBulk(builders ...*CompanyAnalysisCreate) *CompanyAnalysisCreateBulk {
	return &CompanyAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyAnalysisClient) MapCreateBulk(slice any, setFunc func(*CompanyAnalysisCreate, int)) *CompanyAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyAnalysisCreateBulk{err: fmt.Errorf("calling to CompanyAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompanyAnalysis.
func (c *CompanyAnalysisClient) Update() *CompanyAnalysisUpdate {
	mutation := newCompanyAnalysisMutation(c.config, OpUpdate)
	return &CompanyAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyAnalysisClient) UpdateOne(_m *CompanyAnalysis) *CompanyAnalysisUpdateOne {
	mutation := newCompanyAnalysisMutation(c.config, OpUpdateOne, withCompanyAnalysis(_m))
	return &CompanyAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyAnalysisClient) UpdateOneID(id string) *CompanyAnalysisUpdateOne {
	mutation := newCompanyAnalysisMutation(c.config, OpUpdateOne, withCompanyAnalysisID(id))
	return &CompanyAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompanyAnalysis.
func (c *CompanyAnalysisClient) Delete() *CompanyAnalysisDelete {
	mutation := newCompanyAnalysisMutation(c.config, OpDelete)
	return &CompanyAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyAnalysisClient) DeleteOne(_m *CompanyAnalysis) *CompanyAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyAnalysisClient) DeleteOneID(id string) *CompanyAnalysisDeleteOne {
	builder := c.Delete().Where(companyanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyAnalysisDeleteOne{builder}
}

// Query returns a query builder for CompanyAnalysis.
func (c *CompanyAnalysisClient) Query() *CompanyAnalysisQuery {
	return &CompanyAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompanyAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a CompanyAnalysis entity by its id.
func (c *CompanyAnalysisClient) Get(ctx context.Context, id string) (*CompanyAnalysis, error) {
	return c.Query().Where(companyanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyAnalysisClient) GetX(ctx context.Context, id string) *CompanyAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a CompanyAnalysis.
func (c *CompanyAnalysisClient) QueryCompany(_m *CompanyAnalysis) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(companyanalysis.Table, companyanalysis.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, companyanalysis.CompanyTable, companyanalysis.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyAnalysisClient) Hooks() []Hook {
	return c.hooks.CompanyAnalysis
}

// Interceptors returns the client interceptors.
func (c *CompanyAnalysisClient) Interceptors() []Interceptor {
	return c.inters.CompanyAnalysis
}

func (c *CompanyAnalysisClient) mutate(ctx context.Context, m *CompanyAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompanyAnalysis mutation op: %q", m.Op())
	}
}

// VerificationJobClient is a client for the VerificationJob schema.
type VerificationJobClient struct {
	config
}

// NewVerificationJobClient returns a client for the VerificationJob from the given config.
func NewVerificationJobClient(c config) *VerificationJobClient {
	return &VerificationJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationjob.Hooks(f(g(h())))`.
func (c *VerificationJobClient) Use(hooks ...Hook) {
	c.hooks.VerificationJob = append(c.hooks.VerificationJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationjob.Intercept(f(g(h())))`.
func (c *VerificationJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationJob = append(c.inters.VerificationJob, interceptors...)
}

// Create returns a builder for creating a VerificationJob entity.
func (c *VerificationJobClient) Create() *VerificationJobCreate {
	mutation := newVerificationJobMutation(c.config, OpCreate)
	return &VerificationJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationJob entities.
func (c *VerificationJobClient) CreateBulk(builders ...*VerificationJobCreate) *VerificationJobCreateBulk {
	return &VerificationJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationJobClient) MapCreateBulk(slice any, setFunc func(*VerificationJobCreate, int)) *VerificationJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationJobCreateBulk{err: fmt.Errorf("calling to VerificationJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationJob.
func (c *VerificationJobClient) Update() *VerificationJobUpdate {
	mutation := newVerificationJobMutation(c.config, OpUpdate)
	return &VerificationJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationJobClient) UpdateOne(_m *VerificationJob) *VerificationJobUpdateOne {
	mutation := newVerificationJobMutation(c.config, OpUpdateOne, withVerificationJob(_m))
	return &VerificationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationJobClient) UpdateOneID(id string) *VerificationJobUpdateOne {
	mutation := newVerificationJobMutation(c.config, OpUpdateOne, withVerificationJobID(id))
	return &VerificationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationJob.
func (c *VerificationJobClient) Delete() *VerificationJobDelete {
	mutation := newVerificationJobMutation(c.config, OpDelete)
	return &VerificationJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationJobClient) DeleteOne(_m *VerificationJob) *VerificationJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationJobClient) DeleteOneID(id string) *VerificationJobDeleteOne {
	builder := c.Delete().Where(verificationjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationJobDeleteOne{builder}
}

// Query returns a query builder for VerificationJob.
func (c *VerificationJobClient) Query() *VerificationJobQuery {
	return &VerificationJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationJob},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationJob entity by its id.
func (c *VerificationJobClient) Get(ctx context.Context, id string) (*VerificationJob, error) {
	return c.Query().Where(verificationjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationJobClient) GetX(ctx context.Context, id string) *VerificationJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a VerificationJob.
func (c *VerificationJobClient) QueryCompany(_m *VerificationJob) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationjob.Table, verificationjob.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, verificationjob.CompanyTable, verificationjob.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerificationJobClient) Hooks() []Hook {
	return c.hooks.VerificationJob
}

// Interceptors returns the client interceptors.
func (c *VerificationJobClient) Interceptors() []Interceptor {
	return c.inters.VerificationJob
}

func (c *VerificationJobClient) mutate(ctx context.Context, m *VerificationJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Company, CompanyAnalysis, VerificationJob []ent.Hook
	}
	inters struct {
		Company, CompanyAnalysis, VerificationJob []ent.Interceptor
	}
)
