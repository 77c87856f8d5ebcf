package skin

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrInvalidArguments is returned by built-in methods called with the wrong
// arguments.
var ErrInvalidArguments = errors.New("invalid arguments")

// BuiltinMethods returns the methods the gateway binds on every collection:
//
//	count([filter])  number of documents matching filter (all when omitted)
//	exists(id)       whether a document with the given identifier exists
func BuiltinMethods() map[string]Method {
	return map[string]Method{
		"count":  countMethod,
		"exists": existsMethod,
	}
}

func countMethod(ctx context.Context, c *Collection, args ...interface{}) (interface{}, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("%w: count takes at most 1 argument, got %d", ErrInvalidArguments, len(args))
	}
	var filter interface{} = bson.M{}
	if len(args) == 1 && args[0] != nil {
		filter = args[0]
	}
	return c.CountDocuments(ctx, filter)
}

func existsMethod(ctx context.Context, c *Collection, args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: exists takes 1 argument, got %d", ErrInvalidArguments, len(args))
	}
	var doc bson.M
	return c.FindByIDInto(ctx, args[0], &doc)
}
