// Package skin provides identifier-aware and streaming-aware facades over
// the docdb driver boundary.
//
// A Collection embeds the driver collection it wraps, so every raw driver
// operation stays reachable next to the helpers defined here. Driver errors
// are returned exactly as the driver produced them.
package skin

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/docskin/internal/core/docdb"
	"github.com/unifiedui/docskin/internal/pkg/objectid"
)

// Document is a single decoded document.
type Document = bson.M

// Collection is the facade over a single driver collection.
type Collection struct {
	docdb.Collection

	logger zerolog.Logger

	mu      sync.RWMutex
	methods map[string]Method
}

// CollectionOption configures a Collection.
type CollectionOption func(*Collection)

// WithLogger sets the logger used for fire-and-forget failures and stream
// diagnostics.
func WithLogger(logger zerolog.Logger) CollectionOption {
	return func(c *Collection) {
		c.logger = logger
	}
}

// NewCollection wraps coll. The handle is shared, not copied.
func NewCollection(coll docdb.Collection, opts ...CollectionOption) *Collection {
	c := &Collection{
		Collection: coll,
		logger:     log.Logger,
		methods:    make(map[string]Method),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("collection", coll.Name()).Logger()
	return c
}

// byID builds the single-document filter for id.
func byID(id interface{}) bson.M {
	return bson.M{"_id": objectid.Normalize(id)}
}

// FindByID returns the document whose _id matches id, or nil if there is
// none. A string id that is not a valid hex identifier is queried as-is.
func (c *Collection) FindByID(ctx context.Context, id interface{}) (Document, error) {
	var doc Document
	found, err := c.FindByIDInto(ctx, id, &doc)
	if err != nil || !found {
		return nil, err
	}
	return doc, nil
}

// FindByIDInto decodes the document whose _id matches id into v.
// It reports false with a nil error when nothing matched.
func (c *Collection) FindByIDInto(ctx context.Context, id interface{}, v interface{}) (bool, error) {
	err := c.Collection.FindOne(ctx, byID(id)).Decode(v)
	if errors.Is(err, docdb.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateByID applies update to the document whose _id matches id.
func (c *Collection) UpdateByID(ctx context.Context, id interface{}, update interface{}, opts ...*docdb.UpdateOptions) (*docdb.UpdateResult, error) {
	return c.Collection.UpdateOne(ctx, byID(id), update, mergeUpdateOptions(opts))
}

func mergeUpdateOptions(opts []*docdb.UpdateOptions) *docdb.UpdateOptions {
	if len(opts) == 0 {
		return nil
	}
	merged := &docdb.UpdateOptions{}
	for _, o := range opts {
		if o != nil && o.Upsert {
			merged.Upsert = true
		}
	}
	return merged
}

// RemoveByID deletes the document whose _id matches id and returns the
// number of documents removed.
func (c *Collection) RemoveByID(ctx context.Context, id interface{}) (int64, error) {
	result, err := c.Collection.DeleteOne(ctx, byID(id))
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// UpdateCallback receives the outcome of UpdateByIDAsync.
type UpdateCallback func(result *docdb.UpdateResult, err error)

// RemoveCallback receives the outcome of RemoveByIDAsync.
type RemoveCallback func(removed int64, err error)

// UpdateByIDAsync starts UpdateByID in its own goroutine and returns
// immediately. done may be nil, in which case the outcome is discarded.
func (c *Collection) UpdateByIDAsync(ctx context.Context, id interface{}, update interface{}, done UpdateCallback, opts ...*docdb.UpdateOptions) {
	go func() {
		result, err := c.UpdateByID(ctx, id, update, opts...)
		if done == nil {
			c.logUnobserved("updateById", id, err)
			return
		}
		done(result, err)
	}()
}

// RemoveByIDAsync starts RemoveByID in its own goroutine and returns
// immediately. done may be nil, in which case the outcome is discarded.
func (c *Collection) RemoveByIDAsync(ctx context.Context, id interface{}, done RemoveCallback) {
	go func() {
		removed, err := c.RemoveByID(ctx, id)
		if done == nil {
			c.logUnobserved("removeById", id, err)
			return
		}
		done(removed, err)
	}()
}

func (c *Collection) logUnobserved(op string, id interface{}, err error) {
	if err == nil {
		return
	}
	c.logger.Debug().
		Err(err).
		Str("op", op).
		Interface("id", id).
		Msg("fire-and-forget operation failed")
}

// FindItems runs the query described by q and returns every matching
// document in cursor order. With no options it returns the whole
// collection.
func (c *Collection) FindItems(ctx context.Context, q ...QueryOption) ([]Document, error) {
	query := newQuery(q)

	cursor, err := c.Collection.Find(ctx, query.filter, query.options())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
