package factory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unifiedui/docskin/internal/config"
	"github.com/unifiedui/docskin/internal/infrastructure/docdb/factory"
)

func TestNewClient_UnsupportedType(t *testing.T) {
	client, err := factory.NewClient(context.Background(), config.DocDBConfig{
		Type:     "couchdb",
		URI:      "mongodb://localhost:27017",
		Database: "docskin",
	})

	assert.Nil(t, client)
	assert.EqualError(t, err, `unsupported docdb type: "couchdb"`)
}

func TestNewClient_ValidatesConfig(t *testing.T) {
	for _, docDBType := range []string{"mongodb", "cosmosdb"} {
		t.Run(docDBType, func(t *testing.T) {
			client, err := factory.NewClient(context.Background(), config.DocDBConfig{
				Type: docDBType,
				URI:  "mongodb://localhost:27017",
			})

			assert.Nil(t, client)
			assert.EqualError(t, err, "database name is required")
		})
	}
}
