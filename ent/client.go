// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/finsight/newsflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/ent/feed"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/ent/pipelinetrace"
	"github.com/finsight/newsflow/ent/systemsetting"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Article is the client for interacting with the Article builders.
	Article *ArticleClient
	// Feed is the client for interacting with the Feed builders.
	Feed *FeedClient
	// PipelineJob is the client for interacting with the PipelineJob builders.
	PipelineJob *PipelineJobClient
	// PipelineTrace is the client for interacting with the PipelineTrace builders.
	PipelineTrace *PipelineTraceClient
	// SystemSetting is the client for interacting with the SystemSetting builders.
	SystemSetting *SystemSettingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Article = NewArticleClient(c.config)
	c.Feed = NewFeedClient(c.config)
	c.PipelineJob = NewPipelineJobClient(c.config)
	c.PipelineTrace = NewPipelineTraceClient(c.config)
	c.SystemSetting = NewSystemSettingClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		Article:       NewArticleClient(cfg),
		Feed:          NewFeedClient(cfg),
		PipelineJob:   NewPipelineJobClient(cfg),
		PipelineTrace: NewPipelineTraceClient(cfg),
		SystemSetting: NewSystemSettingClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		Article:       NewArticleClient(cfg),
		Feed:          NewFeedClient(cfg),
		PipelineJob:   NewPipelineJobClient(cfg),
		PipelineTrace: NewPipelineTraceClient(cfg),
		SystemSetting: NewSystemSettingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Article.
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
	c.Article.Use(hooks...)
	c.Feed.Use(hooks...)
	c.PipelineJob.Use(hooks...)
	c.PipelineTrace.Use(hooks...)
	c.SystemSetting.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Article.Intercept(interceptors...)
	c.Feed.Intercept(interceptors...)
	c.PipelineJob.Intercept(interceptors...)
	c.PipelineTrace.Intercept(interceptors...)
	c.SystemSetting.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArticleMutation:
		return c.Article.mutate(ctx, m)
	case *FeedMutation:
		return c.Feed.mutate(ctx, m)
	case *PipelineJobMutation:
		return c.PipelineJob.mutate(ctx, m)
	case *PipelineTraceMutation:
		return c.PipelineTrace.mutate(ctx, m)
	case *SystemSettingMutation:
		return c.SystemSetting.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArticleClient is a client for the Article schema.
type ArticleClient struct {
	config
}

// NewArticleClient returns a client for the Article from the given config.
func NewArticleClient(c config) *ArticleClient {
	return &ArticleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `article.Hooks(f(g(h())))`.
func (c *ArticleClient) Use(hooks ...Hook) {
	c.hooks.Article = append(c.hooks.Article, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `article.Intercept(f(g(h())))`.
func (c *ArticleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Article = append(c.inters.Article, interceptors...)
}

// Create returns a builder for creating a Article entity.
func (c *ArticleClient) Create() *ArticleCreate {
	mutation := newArticleMutation(c.config, OpCreate)
	return &ArticleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Article entities.
func (c *ArticleClient) CreateBulk(builders ...*ArticleCreate) *ArticleCreateBulk {
	return &ArticleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArticleClient) MapCreateBulk(slice any, setFunc func(*ArticleCreate, int)) *ArticleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArticleCreateBulk{err: fmt.Errorf("calling to ArticleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArticleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArticleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Article.
func (c *ArticleClient) Update() *ArticleUpdate {
	mutation := newArticleMutation(c.config, OpUpdate)
	return &ArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArticleClient) UpdateOne(_m *Article) *ArticleUpdateOne {
	mutation := newArticleMutation(c.config, OpUpdateOne, withArticle(_m))
	return &ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArticleClient) UpdateOneID(id string) *ArticleUpdateOne {
	mutation := newArticleMutation(c.config, OpUpdateOne, withArticleID(id))
	return &ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Article.
func (c *ArticleClient) Delete() *ArticleDelete {
	mutation := newArticleMutation(c.config, OpDelete)
	return &ArticleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArticleClient) DeleteOne(_m *Article) *ArticleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArticleClient) DeleteOneID(id string) *ArticleDeleteOne {
	builder := c.Delete().Where(article.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArticleDeleteOne{builder}
}

// Query returns a query builder for Article.
func (c *ArticleClient) Query() *ArticleQuery {
	return &ArticleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArticle},
		inters: c.Interceptors(),
	}
}

// Get returns a Article entity by its id.
func (c *ArticleClient) Get(ctx context.Context, id string) (*Article, error) {
	return c.Query().Where(article.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArticleClient) GetX(ctx context.Context, id string) *Article {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTraces queries the traces edge of a Article.
func (c *ArticleClient) QueryTraces(_m *Article) *PipelineTraceQuery {
	query := (&PipelineTraceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(article.Table, article.FieldID, id),
			sqlgraph.To(pipelinetrace.Table, pipelinetrace.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, article.TracesTable, article.TracesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArticleClient) Hooks() []Hook {
	return c.hooks.Article
}

// Interceptors returns the client interceptors.
func (c *ArticleClient) Interceptors() []Interceptor {
	return c.inters.Article
}

func (c *ArticleClient) mutate(ctx context.Context, m *ArticleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArticleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArticleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArticleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArticleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Article mutation op: %q", m.Op())
	}
}

// FeedClient is a client for the Feed schema.
type FeedClient struct {
	config
}

// NewFeedClient returns a client for the Feed from the given config.
func NewFeedClient(c config) *FeedClient {
	return &FeedClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feed.Hooks(f(g(h())))`.
func (c *FeedClient) Use(hooks ...Hook) {
	c.hooks.Feed = append(c.hooks.Feed, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feed.Intercept(f(g(h())))`.
func (c *FeedClient) Intercept(interceptors ...Interceptor) {
	c.inters.Feed = append(c.inters.Feed, interceptors...)
}

// Create returns a builder for creating a Feed entity.
func (c *FeedClient) Create() *FeedCreate {
	mutation := newFeedMutation(c.config, OpCreate)
	return &FeedCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Feed entities.
func (c *FeedClient) CreateBulk(builders ...*FeedCreate) *FeedCreateBulk {
	return &FeedCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedClient) MapCreateBulk(slice any, setFunc func(*FeedCreate, int)) *FeedCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedCreateBulk{err: fmt.Errorf("calling to FeedClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Feed.
func (c *FeedClient) Update() *FeedUpdate {
	mutation := newFeedMutation(c.config, OpUpdate)
	return &FeedUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedClient) UpdateOne(_m *Feed) *FeedUpdateOne {
	mutation := newFeedMutation(c.config, OpUpdateOne, withFeed(_m))
	return &FeedUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedClient) UpdateOneID(id string) *FeedUpdateOne {
	mutation := newFeedMutation(c.config, OpUpdateOne, withFeedID(id))
	return &FeedUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Feed.
func (c *FeedClient) Delete() *FeedDelete {
	mutation := newFeedMutation(c.config, OpDelete)
	return &FeedDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedClient) DeleteOne(_m *Feed) *FeedDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedClient) DeleteOneID(id string) *FeedDeleteOne {
	builder := c.Delete().Where(feed.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedDeleteOne{builder}
}

// Query returns a query builder for Feed.
func (c *FeedClient) Query() *FeedQuery {
	return &FeedQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeed},
		inters: c.Interceptors(),
	}
}

// Get returns a Feed entity by its id.
func (c *FeedClient) Get(ctx context.Context, id string) (*Feed, error) {
	return c.Query().Where(feed.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedClient) GetX(ctx context.Context, id string) *Feed {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FeedClient) Hooks() []Hook {
	return c.hooks.Feed
}

// Interceptors returns the client interceptors.
func (c *FeedClient) Interceptors() []Interceptor {
	return c.inters.Feed
}

func (c *FeedClient) mutate(ctx context.Context, m *FeedMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Feed mutation op: %q", m.Op())
	}
}

// PipelineJobClient is a client for the PipelineJob schema.
type PipelineJobClient struct {
	config
}

// NewPipelineJobClient returns a client for the PipelineJob from the given config.
func NewPipelineJobClient(c config) *PipelineJobClient {
	return &PipelineJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinejob.Hooks(f(g(h())))`.
func (c *PipelineJobClient) Use(hooks ...Hook) {
	c.hooks.PipelineJob = append(c.hooks.PipelineJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinejob.Intercept(f(g(h())))`.
func (c *PipelineJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineJob = append(c.inters.PipelineJob, interceptors...)
}

// Create returns a builder for creating a PipelineJob entity.
func (c *PipelineJobClient) Create() *PipelineJobCreate {
	mutation := newPipelineJobMutation(c.config, OpCreate)
	return &PipelineJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineJob entities.
func (c *PipelineJobClient) CreateBulk(builders ...*PipelineJobCreate) *PipelineJobCreateBulk {
	return &PipelineJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineJobClient) MapCreateBulk(slice any, setFunc func(*PipelineJobCreate, int)) *PipelineJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineJobCreateBulk{err: fmt.Errorf("calling to PipelineJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineJob.
func (c *PipelineJobClient) Update() *PipelineJobUpdate {
	mutation := newPipelineJobMutation(c.config, OpUpdate)
	return &PipelineJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineJobClient) UpdateOne(_m *PipelineJob) *PipelineJobUpdateOne {
	mutation := newPipelineJobMutation(c.config, OpUpdateOne, withPipelineJob(_m))
	return &PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineJobClient) UpdateOneID(id string) *PipelineJobUpdateOne {
	mutation := newPipelineJobMutation(c.config, OpUpdateOne, withPipelineJobID(id))
	return &PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineJob.
func (c *PipelineJobClient) Delete() *PipelineJobDelete {
	mutation := newPipelineJobMutation(c.config, OpDelete)
	return &PipelineJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineJobClient) DeleteOne(_m *PipelineJob) *PipelineJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineJobClient) DeleteOneID(id string) *PipelineJobDeleteOne {
	builder := c.Delete().Where(pipelinejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineJobDeleteOne{builder}
}

// Query returns a query builder for PipelineJob.
func (c *PipelineJobClient) Query() *PipelineJobQuery {
	return &PipelineJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineJob},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineJob entity by its id.
func (c *PipelineJobClient) Get(ctx context.Context, id string) (*PipelineJob, error) {
	return c.Query().Where(pipelinejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineJobClient) GetX(ctx context.Context, id string) *PipelineJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineJobClient) Hooks() []Hook {
	return c.hooks.PipelineJob
}

// Interceptors returns the client interceptors.
func (c *PipelineJobClient) Interceptors() []Interceptor {
	return c.inters.PipelineJob
}

func (c *PipelineJobClient) mutate(ctx context.Context, m *PipelineJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineJob mutation op: %q", m.Op())
	}
}

// PipelineTraceClient is a client for the PipelineTrace schema.
type PipelineTraceClient struct {
	config
}

// NewPipelineTraceClient returns a client for the PipelineTrace from the given config.
func NewPipelineTraceClient(c config) *PipelineTraceClient {
	return &PipelineTraceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinetrace.Hooks(f(g(h())))`.
func (c *PipelineTraceClient) Use(hooks ...Hook) {
	c.hooks.PipelineTrace = append(c.hooks.PipelineTrace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinetrace.Intercept(f(g(h())))`.
func (c *PipelineTraceClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineTrace = append(c.inters.PipelineTrace, interceptors...)
}

// Create returns a builder for creating a PipelineTrace entity.
func (c *PipelineTraceClient) Create() *PipelineTraceCreate {
	mutation := newPipelineTraceMutation(c.config, OpCreate)
	return &PipelineTraceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineTrace entities.
func (c *PipelineTraceClient) CreateBulk(builders ...*PipelineTraceCreate) *PipelineTraceCreateBulk {
	return &PipelineTraceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineTraceClient) MapCreateBulk(slice any, setFunc func(*PipelineTraceCreate, int)) *PipelineTraceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineTraceCreateBulk{err: fmt.Errorf("calling to PipelineTraceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineTraceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineTraceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineTrace.
func (c *PipelineTraceClient) Update() *PipelineTraceUpdate {
	mutation := newPipelineTraceMutation(c.config, OpUpdate)
	return &PipelineTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineTraceClient) UpdateOne(_m *PipelineTrace) *PipelineTraceUpdateOne {
	mutation := newPipelineTraceMutation(c.config, OpUpdateOne, withPipelineTrace(_m))
	return &PipelineTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineTraceClient) UpdateOneID(id string) *PipelineTraceUpdateOne {
	mutation := newPipelineTraceMutation(c.config, OpUpdateOne, withPipelineTraceID(id))
	return &PipelineTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineTrace.
func (c *PipelineTraceClient) Delete() *PipelineTraceDelete {
	mutation := newPipelineTraceMutation(c.config, OpDelete)
	return &PipelineTraceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineTraceClient) DeleteOne(_m *PipelineTrace) *PipelineTraceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineTraceClient) DeleteOneID(id string) *PipelineTraceDeleteOne {
	builder := c.Delete().Where(pipelinetrace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineTraceDeleteOne{builder}
}

// Query returns a query builder for PipelineTrace.
func (c *PipelineTraceClient) Query() *PipelineTraceQuery {
	return &PipelineTraceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineTrace},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineTrace entity by its id.
func (c *PipelineTraceClient) Get(ctx context.Context, id string) (*PipelineTrace, error) {
	return c.Query().Where(pipelinetrace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineTraceClient) GetX(ctx context.Context, id string) *PipelineTrace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArticle queries the article edge of a PipelineTrace.
func (c *PipelineTraceClient) QueryArticle(_m *PipelineTrace) *ArticleQuery {
	query := (&ArticleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinetrace.Table, pipelinetrace.FieldID, id),
			sqlgraph.To(article.Table, article.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinetrace.ArticleTable, pipelinetrace.ArticleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineTraceClient) Hooks() []Hook {
	return c.hooks.PipelineTrace
}

// Interceptors returns the client interceptors.
func (c *PipelineTraceClient) Interceptors() []Interceptor {
	return c.inters.PipelineTrace
}

func (c *PipelineTraceClient) mutate(ctx context.Context, m *PipelineTraceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineTraceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineTraceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineTrace mutation op: %q", m.Op())
	}
}

// SystemSettingClient is a client for the SystemSetting schema.
type SystemSettingClient struct {
	config
}

// NewSystemSettingClient returns a client for the SystemSetting from the given config.
func NewSystemSettingClient(c config) *SystemSettingClient {
	return &SystemSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `systemsetting.Hooks(f(g(h())))`.
func (c *SystemSettingClient) Use(hooks ...Hook) {
	c.hooks.SystemSetting = append(c.hooks.SystemSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `systemsetting.Intercept(f(g(h())))`.
func (c *SystemSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.SystemSetting = append(c.inters.SystemSetting, interceptors...)
}

// Create returns a builder for creating a SystemSetting entity.
func (c *SystemSettingClient) Create() *SystemSettingCreate {
	mutation := newSystemSettingMutation(c.config, OpCreate)
	return &SystemSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SystemSetting entities.
func (c *SystemSettingClient) CreateBulk(builders ...*SystemSettingCreate) *SystemSettingCreateBulk {
	return &SystemSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SystemSettingClient) MapCreateBulk(slice any, setFunc func(*SystemSettingCreate, int)) *SystemSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SystemSettingCreateBulk{err: fmt.Errorf("calling to SystemSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SystemSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SystemSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SystemSetting.
func (c *SystemSettingClient) Update() *SystemSettingUpdate {
	mutation := newSystemSettingMutation(c.config, OpUpdate)
	return &SystemSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SystemSettingClient) UpdateOne(_m *SystemSetting) *SystemSettingUpdateOne {
	mutation := newSystemSettingMutation(c.config, OpUpdateOne, withSystemSetting(_m))
	return &SystemSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SystemSettingClient) UpdateOneID(id int) *SystemSettingUpdateOne {
	mutation := newSystemSettingMutation(c.config, OpUpdateOne, withSystemSettingID(id))
	return &SystemSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SystemSetting.
func (c *SystemSettingClient) Delete() *SystemSettingDelete {
	mutation := newSystemSettingMutation(c.config, OpDelete)
	return &SystemSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SystemSettingClient) DeleteOne(_m *SystemSetting) *SystemSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SystemSettingClient) DeleteOneID(id int) *SystemSettingDeleteOne {
	builder := c.Delete().Where(systemsetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SystemSettingDeleteOne{builder}
}

// Query returns a query builder for SystemSetting.
func (c *SystemSettingClient) Query() *SystemSettingQuery {
	return &SystemSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSystemSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a SystemSetting entity by its id.
func (c *SystemSettingClient) Get(ctx context.Context, id int) (*SystemSetting, error) {
	return c.Query().Where(systemsetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SystemSettingClient) GetX(ctx context.Context, id int) *SystemSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SystemSettingClient) Hooks() []Hook {
	return c.hooks.SystemSetting
}

// Interceptors returns the client interceptors.
func (c *SystemSettingClient) Interceptors() []Interceptor {
	return c.inters.SystemSetting
}

func (c *SystemSettingClient) mutate(ctx context.Context, m *SystemSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SystemSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SystemSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SystemSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SystemSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SystemSetting mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Article, Feed, PipelineJob, PipelineTrace, SystemSetting []ent.Hook
	}
	inters struct {
		Article, Feed, PipelineJob, PipelineTrace, SystemSetting []ent.Interceptor
	}
)
