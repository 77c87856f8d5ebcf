// Package factory creates document database clients from configuration.
package factory

import (
	"context"
	"fmt"

	"github.com/unifiedui/docskin/internal/config"
	"github.com/unifiedui/docskin/internal/core/docdb"
	"github.com/unifiedui/docskin/internal/infrastructure/docdb/mongodb"
)

// NewClient creates a document database client based on the configuration.
func NewClient(ctx context.Context, cfg config.DocDBConfig) (docdb.Client, error) {
	docDBType, err := docdb.ParseType(cfg.Type)
	if err != nil {
		return nil, err
	}

	switch docDBType {
	// CosmosDB uses the MongoDB protocol, so the same client serves both
	case docdb.TypeMongoDB, docdb.TypeCosmosDB:
		client, err := mongodb.NewClient(ctx, &mongodb.ClientConfig{
			URI:            cfg.URI,
			DatabaseName:   cfg.Database,
			ConnectTimeout: cfg.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported docdb type: %s", docDBType)
	}
}
