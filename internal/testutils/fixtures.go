package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedui/docskin/internal/mocks"
)

// Test constants
const (
	TestDatabase   = "docskin_test"
	TestCollection = "article"
	TestArticleHex = "5f1d7a3b9c8e4f0012345678"
)

// TestArticleID is TestArticleHex as an ObjectID.
var TestArticleID, _ = primitive.ObjectIDFromHex(TestArticleHex)

// SeedArticles inserts n articles into the named collection of db. The first
// one carries TestArticleID; the rest get driver-generated ids.
func SeedArticles(t *testing.T, db *mocks.MemoryDatabase, name string, n int) *mocks.MemoryCollection {
	t.Helper()
	coll := db.MemoryCollection(name)
	for i := 0; i < n; i++ {
		doc := bson.M{"n": int32(i), "title": fmt.Sprintf("article %d", i)}
		if i == 0 {
			doc["_id"] = TestArticleID
		}
		_, err := coll.InsertOne(context.Background(), doc)
		require.NoError(t, err)
	}
	return coll
}
