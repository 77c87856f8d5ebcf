package extjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedui/docskin/internal/pkg/extjson"
)

const hex = "5f1d7a3b9c8e4f0012345678"

func TestParseDocument(t *testing.T) {
	doc, err := extjson.ParseDocument(`{"_id": {"$oid": "` + hex + `"}, "n": 3}`)
	require.NoError(t, err)

	id, _ := primitive.ObjectIDFromHex(hex)
	assert.Equal(t, id, doc["_id"])
	assert.Equal(t, int32(3), doc["n"])

	_, err = extjson.ParseDocument(`{"n":`)
	assert.Error(t, err)
}

func TestParseOrdered_KeepsKeyOrder(t *testing.T) {
	doc, err := extjson.ParseOrdered(`{"title": -1, "n": 1}`)
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "title", Value: int32(-1)}, {Key: "n", Value: int32(1)}}, doc)
}

func TestParseArray(t *testing.T) {
	args, err := extjson.ParseArray(`["` + hex + `", {"$oid": "` + hex + `"}, 2]`)
	require.NoError(t, err)
	require.Len(t, args, 3)

	id, _ := primitive.ObjectIDFromHex(hex)
	assert.Equal(t, hex, args[0])
	assert.Equal(t, id, args[1])
	assert.Equal(t, int32(2), args[2])

	_, err = extjson.ParseArray(`{"not": "an array"}`)
	assert.Error(t, err)
}

func TestParseArray_RejectsTrailingContent(t *testing.T) {
	for _, in := range []string{
		`[1], "v": [2, 3]`,
		`[1]} , {"x": 1`,
		`[1] [2]`,
		`[1,`,
		``,
		`   `,
	} {
		_, err := extjson.ParseArray(in)
		assert.ErrorIs(t, err, extjson.ErrNotArray, in)
	}

	args, err := extjson.ParseArray("  [1, 2]\n")
	require.NoError(t, err)
	assert.Len(t, args, 2)
}

func TestMarshalValue(t *testing.T) {
	id, _ := primitive.ObjectIDFromHex(hex)

	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{name: "object id", in: id, want: `{"$oid":"` + hex + `"}`},
		{name: "int64", in: int64(5), want: `5`},
		{name: "bool", in: true, want: `true`},
		{name: "string", in: "title_-1", want: `"title_-1"`},
		{name: "nil", in: nil, want: `null`},
		{name: "document", in: bson.M{"n": 1}, want: `{"n":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extjson.MarshalValue(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestMarshalDocument(t *testing.T) {
	id, _ := primitive.ObjectIDFromHex(hex)

	got, err := extjson.MarshalDocument(bson.D{{Key: "_id", Value: id}, {Key: "title", Value: "a"}})
	require.NoError(t, err)
	assert.Equal(t, `{"_id":{"$oid":"`+hex+`"},"title":"a"}`, string(got))
}
