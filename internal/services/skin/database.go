package skin

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/unifiedui/docskin/internal/core/docdb"
)

// Database is the facade over a driver database. It hands out one
// Collection per name and remembers it for later calls.
//
// The embedded docdb.Database keeps database-level driver operations
// (ListCollectionNames, Drop, ...) reachable. The raw driver collection is
// available as d.Database.Collection(name).
type Database struct {
	docdb.Database

	logger         zerolog.Logger
	defaultMethods map[string]Method

	mu          sync.Mutex
	collections map[string]*Collection
}

// DatabaseOption configures a Database.
type DatabaseOption func(*Database)

// WithDatabaseLogger sets the logger passed down to every Collection.
func WithDatabaseLogger(logger zerolog.Logger) DatabaseOption {
	return func(d *Database) {
		d.logger = logger
	}
}

// WithDefaultMethods installs methods on every Collection the Database
// creates, before any per-collection binding.
func WithDefaultMethods(methods map[string]Method) DatabaseOption {
	return func(d *Database) {
		d.defaultMethods = methods
	}
}

// NewDatabase wraps db.
func NewDatabase(db docdb.Database, opts ...DatabaseOption) *Database {
	d := &Database{
		Database:    db,
		logger:      log.Logger,
		collections: make(map[string]*Collection),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type bindConfig struct {
	fresh   bool
	methods map[string]Method
}

// BindOption configures Bind.
type BindOption func(*bindConfig)

// Fresh makes Bind replace any existing facade for the name with a new one.
// Methods bound on the old facade are not carried over.
func Fresh() BindOption {
	return func(c *bindConfig) {
		c.fresh = true
	}
}

// WithMethods installs methods on the facade as part of Bind.
func WithMethods(methods map[string]Method) BindOption {
	return func(c *bindConfig) {
		c.methods = methods
	}
}

// Bind makes the facade for name available through Lookup and returns it.
// An existing facade is reused unless Fresh is given.
func (d *Database) Bind(name string, opts ...BindOption) *Collection {
	cfg := &bindConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d.mu.Lock()
	c, ok := d.collections[name]
	if !ok || cfg.fresh {
		c = d.newCollection(name)
		d.collections[name] = c
		d.logger.Debug().Str("collection", name).Bool("fresh", cfg.fresh).Msg("collection bound")
	}
	d.mu.Unlock()

	if len(cfg.methods) > 0 {
		c.BindAll(cfg.methods)
	}
	return c
}

// Lookup returns the facade already created for name.
func (d *Database) Lookup(name string) (*Collection, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.collections[name]
	return c, ok
}

// Collection returns the facade for name, creating it on first use.
func (d *Database) Collection(name string) *Collection {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok := d.collections[name]; ok {
		return c
	}
	c := d.newCollection(name)
	d.collections[name] = c
	return c
}

// Names returns the names of all facades created so far, sorted.
func (d *Database) Names() []string {
	d.mu.Lock()
	names := make([]string, 0, len(d.collections))
	for name := range d.collections {
		names = append(names, name)
	}
	d.mu.Unlock()
	sort.Strings(names)
	return names
}

func (d *Database) newCollection(name string) *Collection {
	c := NewCollection(d.Database.Collection(name), WithLogger(d.logger))
	if len(d.defaultMethods) > 0 {
		c.BindAll(d.defaultMethods)
	}
	return c
}
