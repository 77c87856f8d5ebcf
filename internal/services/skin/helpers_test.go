package skin_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedui/docskin/internal/mocks"
	"github.com/unifiedui/docskin/internal/services/skin"
)

// seedComments returns a facade over an in-memory collection holding n
// comments numbered 0..n-1 in insertion order.
func seedComments(t *testing.T, n int) (*skin.Collection, *mocks.MemoryCollection, []primitive.ObjectID) {
	t.Helper()

	mem := mocks.NewMemoryCollection("comment")
	ids := make([]primitive.ObjectID, 0, n)
	for i := 0; i < n; i++ {
		id, err := mem.InsertOne(context.Background(), bson.M{
			"n":    i,
			"text": fmt.Sprintf("this is comment %d", i),
		})
		require.NoError(t, err)
		ids = append(ids, id.(primitive.ObjectID))
	}
	return skin.NewCollection(mem), mem, ids
}
