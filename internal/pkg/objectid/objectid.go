// Package objectid converts document identifiers between their canonical
// 12-byte form and the 24-character hex encoding used by callers.
//
// Nothing in this package fails loudly: a value that does not decode is
// reported as such and otherwise passed through untouched, so a query built
// from it simply matches nothing.
package objectid

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HexLength is the length of the hex encoding of an identifier.
const HexLength = 24

// Decode parses a 24-character hex string into an ObjectID.
func Decode(s string) (primitive.ObjectID, bool) {
	if len(s) != HexLength {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// Encode returns the lowercase hex encoding of id.
func Encode(id primitive.ObjectID) string {
	return id.Hex()
}

// IsValid reports whether s decodes to an ObjectID.
func IsValid(s string) bool {
	_, ok := Decode(s)
	return ok
}

// Resolve converts v to its canonical form where possible.
// The boolean reports whether the returned value is an ObjectID.
func Resolve(v interface{}) (interface{}, bool) {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id, true
	case *primitive.ObjectID:
		if id == nil {
			return v, false
		}
		return *id, true
	case string:
		if oid, ok := Decode(id); ok {
			return oid, true
		}
		return id, false
	default:
		return v, false
	}
}

// Normalize returns the canonical ObjectID for v when v is one already or a
// decodable hex string, and v itself otherwise.
func Normalize(v interface{}) interface{} {
	normalized, _ := Resolve(v)
	return normalized
}
