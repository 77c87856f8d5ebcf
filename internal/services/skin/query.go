package skin

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/docskin/internal/core/docdb"
)

// QueryOption describes part of a query passed to FindItems, FindEach and
// Stream. Omitting every option matches the whole collection with driver
// defaults.
type QueryOption func(*query)

type query struct {
	filter interface{}
	opts   docdb.FindOptions
	hasOpt bool
}

func newQuery(opts []QueryOption) *query {
	q := &query{}
	for _, opt := range opts {
		if opt != nil {
			opt(q)
		}
	}
	if q.filter == nil {
		q.filter = bson.M{}
	}
	return q
}

// options returns nil when no modifier was set.
func (q *query) options() *docdb.FindOptions {
	if !q.hasOpt {
		return nil
	}
	opts := q.opts
	return &opts
}

// Filter restricts the query to documents matching filter.
func Filter(filter interface{}) QueryOption {
	return func(q *query) {
		q.filter = filter
	}
}

// Limit caps the number of documents returned.
func Limit(n int64) QueryOption {
	return func(q *query) {
		q.opts.Limit = n
		q.hasOpt = true
	}
}

// Skip skips the first n matching documents.
func Skip(n int64) QueryOption {
	return func(q *query) {
		q.opts.Skip = n
		q.hasOpt = true
	}
}

// Sort orders the results, e.g. bson.D{{Key: "createdAt", Value: -1}}.
func Sort(sort interface{}) QueryOption {
	return func(q *query) {
		q.opts.Sort = sort
		q.hasOpt = true
	}
}

// Projection limits the fields returned for each document.
func Projection(projection interface{}) QueryOption {
	return func(q *query) {
		q.opts.Projection = projection
		q.hasOpt = true
	}
}

// BatchSize sets how many documents the driver fetches per round trip.
func BatchSize(n int32) QueryOption {
	return func(q *query) {
		q.opts.BatchSize = n
		q.hasOpt = true
	}
}

// WithFindOptions replaces all modifiers with opts. A nil opts clears them.
func WithFindOptions(opts *docdb.FindOptions) QueryOption {
	return func(q *query) {
		if opts == nil {
			q.opts = docdb.FindOptions{}
			q.hasOpt = false
			return
		}
		q.opts = *opts
		q.hasOpt = true
	}
}
