// Package docdb provides the document database type constants.
package docdb

import (
	"fmt"
	"strings"
)

// Type represents the type of document database.
type Type string

const (
	// TypeMongoDB represents a MongoDB database.
	TypeMongoDB Type = "mongodb"
	// TypeCosmosDB represents an Azure Cosmos DB database.
	TypeCosmosDB Type = "cosmosdb"
)

// ParseType converts a configuration value into a Type.
func ParseType(value string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(value))); t {
	case TypeMongoDB, TypeCosmosDB:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported docdb type: %q", value)
	}
}
