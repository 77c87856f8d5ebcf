// Package extjson converts between relaxed MongoDB Extended JSON and the
// BSON values the facade works with.
package extjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ParseDocument parses s into an unordered document.
func ParseDocument(s string) (bson.M, error) {
	var doc bson.M
	if err := bson.UnmarshalExtJSON([]byte(s), false, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseOrdered parses s keeping key order, as sort and index specifications
// need.
func ParseOrdered(s string) (bson.D, error) {
	var doc bson.D
	if err := bson.UnmarshalExtJSON([]byte(s), false, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ErrNotArray is returned by ParseArray for input that is not exactly one
// JSON array.
var ErrNotArray = errors.New("extjson: input is not a single JSON array")

// ParseArray parses a JSON array such as `[1, {"$oid": "..."}]`.
func ParseArray(s string) (bson.A, error) {
	data := bytes.TrimSpace([]byte(s))
	// the input is spliced into a wrapper document, so it must be one
	// complete array and nothing else
	if len(data) == 0 || data[0] != '[' || !json.Valid(data) {
		return nil, ErrNotArray
	}

	var wrapper struct {
		V bson.A `bson:"v"`
	}
	if err := bson.UnmarshalExtJSON(append(append([]byte(`{"v":`), data...), '}'), false, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.V, nil
}

// MarshalDocument renders a document as relaxed Extended JSON.
func MarshalDocument(doc interface{}) (json.RawMessage, error) {
	data, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

// MarshalValue renders any BSON value as relaxed Extended JSON. The driver
// only marshals documents at the top level, so the value is wrapped and
// unwrapped again.
func MarshalValue(v interface{}) (json.RawMessage, error) {
	data, err := bson.MarshalExtJSON(bson.D{{Key: "v", Value: v}}, false, false)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unwrap value: %w", err)
	}
	return wrapper["v"], nil
}
