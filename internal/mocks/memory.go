package mocks

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedui/docskin/internal/core/docdb"
)

// MemoryDatabase is an in-memory docdb.Database for tests. Collections
// support top-level equality filters, $set/$unset updates, skip and limit.
type MemoryDatabase struct {
	name string

	mu          sync.Mutex
	collections map[string]*MemoryCollection
}

// NewMemoryDatabase creates an empty MemoryDatabase.
func NewMemoryDatabase(name string) *MemoryDatabase {
	return &MemoryDatabase{
		name:        name,
		collections: make(map[string]*MemoryCollection),
	}
}

// Name returns the database name.
func (d *MemoryDatabase) Name() string {
	return d.name
}

// Collection returns the named collection, creating it if needed.
func (d *MemoryDatabase) Collection(name string) docdb.Collection {
	return d.MemoryCollection(name)
}

// MemoryCollection returns the concrete collection for name.
func (d *MemoryDatabase) MemoryCollection(name string) *MemoryCollection {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.collections[name]
	if !ok {
		c = NewMemoryCollection(name)
		d.collections[name] = c
	}
	return c
}

// ListCollectionNames lists collection names in sorted order.
func (d *MemoryDatabase) ListCollectionNames(ctx context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := make([]string, 0, len(d.collections))
	for name := range d.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Drop removes every collection.
func (d *MemoryDatabase) Drop(ctx context.Context) error {
	d.mu.Lock()
	d.collections = make(map[string]*MemoryCollection)
	d.mu.Unlock()
	return nil
}

// MemoryCollection is an in-memory docdb.Collection.
type MemoryCollection struct {
	name string

	mu      sync.Mutex
	docs    []bson.M
	findErr error
}

// NewMemoryCollection creates an empty MemoryCollection.
func NewMemoryCollection(name string) *MemoryCollection {
	return &MemoryCollection{name: name}
}

// SetFindError makes every subsequent Find fail with err.
func (c *MemoryCollection) SetFindError(err error) {
	c.mu.Lock()
	c.findErr = err
	c.mu.Unlock()
}

// Name returns the collection name.
func (c *MemoryCollection) Name() string {
	return c.name
}

// InsertOne inserts a single document, assigning an ObjectID if _id is unset.
func (c *MemoryCollection) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	doc, err := toM(document)
	if err != nil {
		return nil, err
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.docs {
		if valuesEqual(existing["_id"], doc["_id"]) {
			return nil, fmt.Errorf("duplicate _id %v", doc["_id"])
		}
	}
	c.docs = append(c.docs, doc)
	return doc["_id"], nil
}

// InsertMany inserts documents in order.
func (c *MemoryCollection) InsertMany(ctx context.Context, documents []interface{}) ([]interface{}, error) {
	ids := make([]interface{}, 0, len(documents))
	for _, d := range documents {
		id, err := c.InsertOne(ctx, d)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// FindOne returns the first matching document.
func (c *MemoryCollection) FindOne(ctx context.Context, filter interface{}) docdb.SingleResult {
	matches, err := c.match(filter)
	if err != nil {
		return &memorySingleResult{err: err}
	}
	if len(matches) == 0 {
		return &memorySingleResult{err: docdb.ErrNoDocuments}
	}
	return &memorySingleResult{doc: matches[0]}
}

// Find returns a cursor over matching documents after skip and limit.
func (c *MemoryCollection) Find(ctx context.Context, filter interface{}, opts *docdb.FindOptions) (docdb.Cursor, error) {
	c.mu.Lock()
	findErr := c.findErr
	c.mu.Unlock()
	if findErr != nil {
		return nil, findErr
	}

	matches, err := c.match(filter)
	if err != nil {
		return nil, err
	}
	if opts != nil {
		if opts.Skip > 0 {
			if opts.Skip >= int64(len(matches)) {
				matches = nil
			} else {
				matches = matches[opts.Skip:]
			}
		}
		if opts.Limit > 0 && opts.Limit < int64(len(matches)) {
			matches = matches[:opts.Limit]
		}
	}
	return &MemoryCursor{docs: matches, pos: -1}, nil
}

// UpdateOne updates the first matching document.
func (c *MemoryCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *docdb.UpdateOptions) (*docdb.UpdateResult, error) {
	return c.update(filter, update, opts != nil && opts.Upsert, false)
}

// UpdateMany updates every matching document.
func (c *MemoryCollection) UpdateMany(ctx context.Context, filter interface{}, update interface{}) (*docdb.UpdateResult, error) {
	return c.update(filter, update, false, true)
}

// DeleteOne deletes the first matching document.
func (c *MemoryCollection) DeleteOne(ctx context.Context, filter interface{}) (*docdb.DeleteResult, error) {
	return c.delete(filter, false)
}

// DeleteMany deletes every matching document.
func (c *MemoryCollection) DeleteMany(ctx context.Context, filter interface{}) (*docdb.DeleteResult, error) {
	return c.delete(filter, true)
}

// CountDocuments counts matching documents.
func (c *MemoryCollection) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	matches, err := c.match(filter)
	if err != nil {
		return 0, err
	}
	return int64(len(matches)), nil
}

// CreateIndex returns the name the server would generate for keys.
func (c *MemoryCollection) CreateIndex(ctx context.Context, keys interface{}, opts *docdb.IndexOptions) (string, error) {
	if opts != nil && opts.Name != "" {
		return opts.Name, nil
	}
	d, ok := keys.(bson.D)
	if !ok {
		return "", fmt.Errorf("index keys must be bson.D, got %T", keys)
	}
	parts := make([]string, 0, len(d)*2)
	for _, e := range d {
		parts = append(parts, e.Key, fmt.Sprint(e.Value))
	}
	return strings.Join(parts, "_"), nil
}

// Drop removes every document.
func (c *MemoryCollection) Drop(ctx context.Context) error {
	c.mu.Lock()
	c.docs = nil
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored documents.
func (c *MemoryCollection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

func (c *MemoryCollection) match(filter interface{}) ([]bson.M, error) {
	f, err := toM(filter)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	var out []bson.M
	for _, doc := range c.docs {
		if matches(doc, f) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (c *MemoryCollection) update(filter interface{}, update interface{}, upsert, many bool) (*docdb.UpdateResult, error) {
	f, err := toM(filter)
	if err != nil {
		return nil, err
	}
	u, err := toM(update)
	if err != nil {
		return nil, err
	}
	for op := range u {
		if op != "$set" && op != "$unset" {
			return nil, fmt.Errorf("unsupported update operator %q", op)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	result := &docdb.UpdateResult{}
	for _, doc := range c.docs {
		if !matches(doc, f) {
			continue
		}
		result.MatchedCount++
		if applyUpdate(doc, u) {
			result.ModifiedCount++
		}
		if !many {
			break
		}
	}

	if result.MatchedCount == 0 && upsert {
		doc := bson.M{}
		for k, v := range f {
			doc[k] = v
		}
		applyUpdate(doc, u)
		if _, ok := doc["_id"]; !ok {
			doc["_id"] = primitive.NewObjectID()
		}
		c.docs = append(c.docs, doc)
		result.UpsertedCount = 1
		result.UpsertedID = doc["_id"]
	}
	return result, nil
}

func (c *MemoryCollection) delete(filter interface{}, many bool) (*docdb.DeleteResult, error) {
	f, err := toM(filter)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	result := &docdb.DeleteResult{}
	kept := c.docs[:0]
	for _, doc := range c.docs {
		if matches(doc, f) && (many || result.DeletedCount == 0) {
			result.DeletedCount++
			continue
		}
		kept = append(kept, doc)
	}
	c.docs = kept
	return result, nil
}

func applyUpdate(doc bson.M, update bson.M) bool {
	changed := false
	if set, ok := update["$set"]; ok {
		fields, _ := toM(set)
		for k, v := range fields {
			if !valuesEqual(doc[k], v) {
				changed = true
			}
			doc[k] = v
		}
	}
	if unset, ok := update["$unset"]; ok {
		fields, _ := toM(unset)
		for k := range fields {
			if _, exists := doc[k]; exists {
				delete(doc, k)
				changed = true
			}
		}
	}
	return changed
}

func matches(doc bson.M, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

// valuesEqual compares values by their BSON encoding so that, e.g., an int
// filter value matches a stored int32.
func valuesEqual(a, b interface{}) bool {
	ab, errA := bson.Marshal(bson.D{{Key: "v", Value: a}})
	bb, errB := bson.Marshal(bson.D{{Key: "v", Value: b}})
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return bytes.Equal(ab, bb)
}

func toM(v interface{}) (bson.M, error) {
	if v == nil {
		return bson.M{}, nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeInto(doc bson.M, v interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, v)
}

type memorySingleResult struct {
	doc bson.M
	err error
}

func (r *memorySingleResult) Decode(v interface{}) error {
	if r.err != nil {
		return r.err
	}
	return decodeInto(r.doc, v)
}

func (r *memorySingleResult) Err() error {
	return r.err
}

// MemoryCursor iterates over a snapshot of documents.
type MemoryCursor struct {
	docs   []bson.M
	pos    int
	err    error
	closed bool
}

// Next advances the cursor.
func (c *MemoryCursor) Next(ctx context.Context) bool {
	if c.closed || c.err != nil {
		return false
	}
	if err := ctx.Err(); err != nil {
		c.err = err
		return false
	}
	if c.pos+1 >= len(c.docs) {
		return false
	}
	c.pos++
	return true
}

// Decode decodes the current document.
func (c *MemoryCursor) Decode(v interface{}) error {
	if c.pos < 0 || c.pos >= len(c.docs) {
		return fmt.Errorf("cursor is not positioned on a document")
	}
	return decodeInto(c.docs[c.pos], v)
}

// All decodes every remaining document into results, a pointer to a slice.
func (c *MemoryCursor) All(ctx context.Context, results interface{}) error {
	rv := reflect.ValueOf(results)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("results must be a pointer to a slice, got %T", results)
	}
	slice := rv.Elem()
	slice.SetLen(0)
	for c.Next(ctx) {
		elem := reflect.New(slice.Type().Elem())
		if err := c.Decode(elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	if c.err != nil {
		return c.err
	}
	return c.Close(ctx)
}

// Err returns any cursor error.
func (c *MemoryCursor) Err() error {
	return c.err
}

// Close closes the cursor.
func (c *MemoryCursor) Close(ctx context.Context) error {
	c.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (c *MemoryCursor) Closed() bool {
	return c.closed
}
