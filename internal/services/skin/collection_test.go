package skin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedui/docskin/internal/core/docdb"
	"github.com/unifiedui/docskin/internal/mocks"
	"github.com/unifiedui/docskin/internal/services/skin"
)

func TestCollection_FindByID(t *testing.T) {
	coll, _, ids := seedComments(t, 3)
	ctx := context.Background()

	t.Run("by ObjectID", func(t *testing.T) {
		doc, err := coll.FindByID(ctx, ids[1])
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, ids[1], doc["_id"])
		assert.Equal(t, "this is comment 1", doc["text"])
	})

	t.Run("by hex string", func(t *testing.T) {
		doc, err := coll.FindByID(ctx, ids[2].Hex())
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, ids[2], doc["_id"])
	})

	t.Run("by pointer", func(t *testing.T) {
		doc, err := coll.FindByID(ctx, &ids[0])
		require.NoError(t, err)
		assert.NotNil(t, doc)
	})

	t.Run("unknown id", func(t *testing.T) {
		doc, err := coll.FindByID(ctx, primitive.NewObjectID())
		assert.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("undecodable id", func(t *testing.T) {
		for _, id := range []interface{}{"foo", "", "5f1d7a3b9c8e4f001234567z", 42} {
			doc, err := coll.FindByID(ctx, id)
			assert.NoError(t, err)
			assert.Nil(t, doc)
		}
	})
}

func TestCollection_FindByID_QueriesLiteralValue(t *testing.T) {
	mockColl := mocks.NewMockCollection("article")
	result := &mocks.MockSingleResult{}
	result.On("Decode", mock.Anything).Return(docdb.ErrNoDocuments)
	mockColl.On("FindOne", mock.Anything, bson.M{"_id": "foo"}).Return(result)

	doc, err := skin.NewCollection(mockColl).FindByID(context.Background(), "foo")

	assert.NoError(t, err)
	assert.Nil(t, doc)
	mockColl.AssertExpectations(t)
}

func TestCollection_FindByID_ForwardsDriverError(t *testing.T) {
	driverErr := errors.New("connection reset")
	mockColl := mocks.NewMockCollection("article")
	result := &mocks.MockSingleResult{}
	result.On("Decode", mock.Anything).Return(driverErr)
	mockColl.On("FindOne", mock.Anything, mock.Anything).Return(result)

	doc, err := skin.NewCollection(mockColl).FindByID(context.Background(), primitive.NewObjectID())

	assert.Nil(t, doc)
	assert.Same(t, driverErr, err)
}

func TestCollection_FindByIDInto(t *testing.T) {
	coll, _, ids := seedComments(t, 1)

	var comment struct {
		ID   primitive.ObjectID `bson:"_id"`
		Text string             `bson:"text"`
	}
	found, err := coll.FindByIDInto(context.Background(), ids[0].Hex(), &comment)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, ids[0], comment.ID)
	assert.Equal(t, "this is comment 0", comment.Text)

	found, err = coll.FindByIDInto(context.Background(), "missing", &comment)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestCollection_UpdateByID_ThenFindByID(t *testing.T) {
	coll, _, ids := seedComments(t, 2)
	ctx := context.Background()
	updatedAt := time.Now().UTC().Truncate(time.Millisecond)

	result, err := coll.UpdateByID(ctx, ids[0].Hex(), bson.M{
		"$set": bson.M{"text": "new title", "updated_at": updatedAt},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.Equal(t, int64(1), result.ModifiedCount)

	doc, err := coll.FindByID(ctx, ids[0])
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "new title", doc["text"])
	assert.Equal(t, primitive.NewDateTimeFromTime(updatedAt), doc["updated_at"])

	other, err := coll.FindByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, "this is comment 1", other["text"])
}

func TestCollection_UpdateByID_PassesOptions(t *testing.T) {
	id := primitive.NewObjectID()
	update := bson.M{"$set": bson.M{"a": 1}}
	mockColl := mocks.NewMockCollection("article")
	mockColl.On("UpdateOne", mock.Anything, bson.M{"_id": id}, update, &docdb.UpdateOptions{Upsert: true}).
		Return(&docdb.UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil)

	result, err := skin.NewCollection(mockColl).UpdateByID(context.Background(), id.Hex(), update, &docdb.UpdateOptions{Upsert: true})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.UpsertedCount)
	mockColl.AssertExpectations(t)
}

func TestCollection_UpdateByID_ForwardsDriverError(t *testing.T) {
	driverErr := errors.New("write conflict")
	mockColl := mocks.NewMockCollection("article")
	mockColl.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, (*docdb.UpdateOptions)(nil)).Return(nil, driverErr)

	result, err := skin.NewCollection(mockColl).UpdateByID(context.Background(), "foo", bson.M{"$set": bson.M{"a": 1}})

	assert.Nil(t, result)
	assert.Same(t, driverErr, err)
}

func TestCollection_RemoveByID(t *testing.T) {
	coll, mem, ids := seedComments(t, 3)
	ctx := context.Background()

	removed, err := coll.RemoveByID(ctx, ids[1].Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Equal(t, 2, mem.Len())

	doc, err := coll.FindByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Nil(t, doc)

	removed, err = coll.RemoveByID(ctx, ids[1].Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	removed, err = coll.RemoveByID(ctx, "never-existed")
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestCollection_UpdateByIDAsync_WithoutCallback(t *testing.T) {
	id := primitive.NewObjectID()
	issued := make(chan struct{})
	mockColl := mocks.NewMockCollection("article")
	mockColl.On("UpdateOne", mock.Anything, bson.M{"_id": id}, mock.Anything, (*docdb.UpdateOptions)(nil)).
		Run(func(mock.Arguments) { close(issued) }).
		Return(nil, errors.New("nobody is listening"))

	coll := skin.NewCollection(mockColl)
	assert.NotPanics(t, func() {
		coll.UpdateByIDAsync(context.Background(), id.Hex(), bson.M{"$set": bson.M{"a": 1}}, nil)
	})

	select {
	case <-issued:
	case <-time.After(time.Second):
		t.Fatal("update was never issued")
	}
}

func TestCollection_UpdateByIDAsync_WithCallback(t *testing.T) {
	coll, _, ids := seedComments(t, 1)

	type outcome struct {
		result *docdb.UpdateResult
		err    error
	}
	done := make(chan outcome, 1)
	coll.UpdateByIDAsync(context.Background(), ids[0], bson.M{"$set": bson.M{"text": "async"}}, func(result *docdb.UpdateResult, err error) {
		done <- outcome{result, err}
	})

	select {
	case o := <-done:
		require.NoError(t, o.err)
		assert.Equal(t, int64(1), o.result.ModifiedCount)
	case <-time.After(time.Second):
		t.Fatal("callback was never invoked")
	}

	doc, err := coll.FindByID(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, "async", doc["text"])
}

func TestCollection_RemoveByIDAsync(t *testing.T) {
	coll, mem, ids := seedComments(t, 2)

	done := make(chan int64, 1)
	coll.RemoveByIDAsync(context.Background(), ids[0].Hex(), func(removed int64, err error) {
		assert.NoError(t, err)
		done <- removed
	})

	select {
	case removed := <-done:
		assert.Equal(t, int64(1), removed)
	case <-time.After(time.Second):
		t.Fatal("callback was never invoked")
	}
	assert.Equal(t, 1, mem.Len())
}

func TestCollection_RemoveByIDAsync_WithoutCallback(t *testing.T) {
	issued := make(chan struct{})
	mockColl := mocks.NewMockCollection("article")
	mockColl.On("DeleteOne", mock.Anything, bson.M{"_id": "foo"}).
		Run(func(mock.Arguments) { close(issued) }).
		Return(&docdb.DeleteResult{DeletedCount: 0}, nil)

	skin.NewCollection(mockColl).RemoveByIDAsync(context.Background(), "foo", nil)

	select {
	case <-issued:
	case <-time.After(time.Second):
		t.Fatal("delete was never issued")
	}
}

func TestCollection_FindItems(t *testing.T) {
	coll, _, _ := seedComments(t, 100)
	ctx := context.Background()

	t.Run("no options returns everything in order", func(t *testing.T) {
		docs, err := coll.FindItems(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 100)
		for i, doc := range docs {
			assert.EqualValues(t, i, doc["n"])
		}
	})

	t.Run("empty filter", func(t *testing.T) {
		docs, err := coll.FindItems(ctx, skin.Filter(bson.M{}))
		require.NoError(t, err)
		assert.Len(t, docs, 100)
	})

	t.Run("limit", func(t *testing.T) {
		docs, err := coll.FindItems(ctx, skin.Filter(bson.M{}), skin.Limit(10))
		require.NoError(t, err)
		assert.Len(t, docs, 10)
	})

	t.Run("limit passed as a filter matches nothing", func(t *testing.T) {
		docs, err := coll.FindItems(ctx, skin.Filter(bson.M{"limit": 10}))
		require.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Len(t, docs, 0)
	})

	t.Run("skip and limit", func(t *testing.T) {
		docs, err := coll.FindItems(ctx, skin.Skip(95), skin.Limit(10))
		require.NoError(t, err)
		require.Len(t, docs, 5)
		assert.EqualValues(t, 95, docs[0]["n"])
	})

	t.Run("filter", func(t *testing.T) {
		docs, err := coll.FindItems(ctx, skin.Filter(bson.M{"n": 42}))
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "this is comment 42", docs[0]["text"])
	})
}

func TestCollection_FindItems_Empty(t *testing.T) {
	coll, _, _ := seedComments(t, 0)

	docs, err := coll.FindItems(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestCollection_FindItems_ForwardsFindError(t *testing.T) {
	findErr := errors.New("mock find() error")
	mockColl := mocks.NewMockCollection("comment")
	mockColl.On("Find", mock.Anything, bson.M{}, (*docdb.FindOptions)(nil)).Return(nil, findErr)

	docs, err := skin.NewCollection(mockColl).FindItems(context.Background())

	assert.Nil(t, docs)
	assert.Same(t, findErr, err)
	mockColl.AssertExpectations(t)
}

func TestCollection_FindItems_PassesModifiers(t *testing.T) {
	sort := bson.D{{Key: "createdAt", Value: -1}}
	cursor := &mocks.MockCursor{}
	cursor.On("All", mock.Anything, mock.Anything).Return(nil)
	cursor.On("Close", mock.Anything).Return(nil)

	mockColl := mocks.NewMockCollection("comment")
	mockColl.On("Find", mock.Anything, bson.M{"a": 1}, &docdb.FindOptions{
		Limit:      5,
		Skip:       10,
		Sort:       sort,
		Projection: bson.M{"a": 1},
		BatchSize:  2,
	}).Return(cursor, nil)

	_, err := skin.NewCollection(mockColl).FindItems(context.Background(),
		skin.Filter(bson.M{"a": 1}),
		skin.Limit(5),
		skin.Skip(10),
		skin.Sort(sort),
		skin.Projection(bson.M{"a": 1}),
		skin.BatchSize(2),
	)

	require.NoError(t, err)
	mockColl.AssertExpectations(t)
	cursor.AssertExpectations(t)
}

func TestCollection_FindItems_WithFindOptions(t *testing.T) {
	coll, _, _ := seedComments(t, 30)

	docs, err := coll.FindItems(context.Background(), skin.WithFindOptions(&docdb.FindOptions{Limit: 7}))
	require.NoError(t, err)
	assert.Len(t, docs, 7)

	docs, err = coll.FindItems(context.Background(), skin.Limit(3), skin.WithFindOptions(nil))
	require.NoError(t, err)
	assert.Len(t, docs, 30)
}

func TestCollection_PassThrough(t *testing.T) {
	coll, _, _ := seedComments(t, 5)
	ctx := context.Background()

	id, err := coll.InsertOne(ctx, bson.M{"title": "raw insert"})
	require.NoError(t, err)

	count, err := coll.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(6), count)

	cursor, err := coll.Find(ctx, bson.M{"_id": id}, nil)
	require.NoError(t, err)
	var docs []skin.Document
	require.NoError(t, cursor.All(ctx, &docs))
	assert.Len(t, docs, 1)

	name, err := coll.CreateIndex(ctx, bson.D{{Key: "title", Value: -1}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "title_-1", name)

	require.NoError(t, coll.Drop(ctx))
	docs, err = coll.FindItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
