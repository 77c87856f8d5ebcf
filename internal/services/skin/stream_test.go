package skin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/docskin/internal/core/docdb"
	"github.com/unifiedui/docskin/internal/mocks"
	"github.com/unifiedui/docskin/internal/services/skin"
)

func collectSteps(ctx context.Context, coll *skin.Collection, q ...skin.QueryOption) []skin.Step {
	var steps []skin.Step
	coll.FindEach(ctx, func(step skin.Step) {
		steps = append(steps, step)
	}, q...)
	return steps
}

func TestCollection_FindEach_AllDocuments(t *testing.T) {
	coll, _, _ := seedComments(t, 100)

	steps := collectSteps(context.Background(), coll)

	require.Len(t, steps, 101)
	for i, step := range steps[:100] {
		assert.Equal(t, skin.StepDocument, step.Kind)
		assert.NoError(t, step.Err)
		require.NotNil(t, step.Document)
		assert.EqualValues(t, i, step.Document["n"])
	}
	last := steps[100]
	assert.Equal(t, skin.StepEnd, last.Kind)
	assert.Nil(t, last.Document)
	assert.NoError(t, last.Err)
}

func TestCollection_FindEach_WithLimit(t *testing.T) {
	coll, _, _ := seedComments(t, 100)

	steps := collectSteps(context.Background(), coll, skin.Filter(bson.M{}), skin.Limit(20))

	require.Len(t, steps, 21)
	assert.Equal(t, skin.StepEnd, steps[20].Kind)
}

func TestCollection_FindEach_EmptyCollection(t *testing.T) {
	coll, _, _ := seedComments(t, 0)

	steps := collectSteps(context.Background(), coll)

	require.Len(t, steps, 1)
	assert.Equal(t, skin.StepEnd, steps[0].Kind)
}

func TestCollection_FindEach_FindError(t *testing.T) {
	findErr := errors.New("mock find() error")
	mockColl := mocks.NewMockCollection("comment")
	mockColl.On("Find", mock.Anything, bson.M{}, (*docdb.FindOptions)(nil)).Return(nil, findErr).Once()

	steps := collectSteps(context.Background(), skin.NewCollection(mockColl))

	require.Len(t, steps, 1)
	assert.Equal(t, skin.StepError, steps[0].Kind)
	assert.Same(t, findErr, steps[0].Err)
	assert.Nil(t, steps[0].Document)
	mockColl.AssertExpectations(t)
}

func TestCollection_FindEach_CursorErrorMidStream(t *testing.T) {
	cursorErr := errors.New("cursor killed")
	cursor := &mocks.MockCursor{}
	cursor.On("Next", mock.Anything).Return(true).Once()
	cursor.On("Decode", mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(0).(*skin.Document) = skin.Document{"n": 0}
	}).Return(nil).Once()
	cursor.On("Next", mock.Anything).Return(false).Once()
	cursor.On("Err").Return(cursorErr)
	cursor.On("Close", mock.Anything).Return(nil).Once()

	mockColl := mocks.NewMockCollection("comment")
	mockColl.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursor, nil).Once()

	steps := collectSteps(context.Background(), skin.NewCollection(mockColl))

	require.Len(t, steps, 2)
	assert.Equal(t, skin.StepDocument, steps[0].Kind)
	assert.Equal(t, skin.Document{"n": 0}, steps[0].Document)
	assert.Equal(t, skin.StepError, steps[1].Kind)
	assert.Same(t, cursorErr, steps[1].Err)
	cursor.AssertExpectations(t)
}

func TestCollection_FindEach_DecodeError(t *testing.T) {
	decodeErr := errors.New("corrupt document")
	cursor := &mocks.MockCursor{}
	cursor.On("Next", mock.Anything).Return(true).Once()
	cursor.On("Decode", mock.Anything).Return(decodeErr).Once()
	cursor.On("Close", mock.Anything).Return(nil).Once()

	mockColl := mocks.NewMockCollection("comment")
	mockColl.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursor, nil)

	steps := collectSteps(context.Background(), skin.NewCollection(mockColl))

	require.Len(t, steps, 1)
	assert.Equal(t, skin.StepError, steps[0].Kind)
	assert.Same(t, decodeErr, steps[0].Err)
	cursor.AssertExpectations(t)
}

func TestCollection_FindEach_Cancellation(t *testing.T) {
	coll, _, _ := seedComments(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var steps []skin.Step
	coll.FindEach(ctx, func(step skin.Step) {
		steps = append(steps, step)
		if len(steps) == 3 {
			cancel()
		}
	})

	require.Len(t, steps, 4)
	assert.Equal(t, skin.StepError, steps[3].Kind)
	assert.ErrorIs(t, steps[3].Err, context.Canceled)
}

func TestCollection_FindEach_PullsOneAtATime(t *testing.T) {
	coll, _, _ := seedComments(t, 5)
	s := coll.Stream()

	step := s.Next(context.Background())
	require.Equal(t, skin.StepDocument, step.Kind)

	var got []int32
	for {
		step = s.Next(context.Background())
		if step.Terminal() {
			break
		}
		got = append(got, step.Document["n"].(int32))
	}
	assert.Equal(t, skin.StepEnd, step.Kind)
	assert.Equal(t, []int32{1, 2, 3, 4}, got)
}

func TestStream_IsLazy(t *testing.T) {
	mockColl := mocks.NewMockCollection("comment")

	s := skin.NewCollection(mockColl).Stream(skin.Limit(5))

	require.NotNil(t, s)
	require.NoError(t, s.Close(context.Background()))
	mockColl.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
}

func TestStream_TerminalStatesAreSticky(t *testing.T) {
	t.Run("done", func(t *testing.T) {
		coll, _, _ := seedComments(t, 1)
		s := coll.Stream()
		ctx := context.Background()

		assert.Equal(t, skin.StepDocument, s.Next(ctx).Kind)
		assert.Equal(t, skin.StepEnd, s.Next(ctx).Kind)
		assert.Equal(t, skin.StepEnd, s.Next(ctx).Kind)
		assert.NoError(t, s.Err())
	})

	t.Run("failed", func(t *testing.T) {
		findErr := errors.New("unreachable")
		mockColl := mocks.NewMockCollection("comment")
		mockColl.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, findErr).Once()

		s := skin.NewCollection(mockColl).Stream()
		ctx := context.Background()

		first := s.Next(ctx)
		second := s.Next(ctx)

		assert.Equal(t, skin.StepError, first.Kind)
		assert.Equal(t, skin.StepError, second.Kind)
		assert.Same(t, findErr, second.Err)
		assert.Same(t, findErr, s.Err())
		mockColl.AssertNumberOfCalls(t, "Find", 1)
	})
}

func TestStream_CloseReleasesCursor(t *testing.T) {
	cursor := &mocks.MockCursor{}
	cursor.On("Next", mock.Anything).Return(true).Once()
	cursor.On("Decode", mock.Anything).Return(nil).Once()
	cursor.On("Close", mock.Anything).Return(nil).Once()

	mockColl := mocks.NewMockCollection("comment")
	mockColl.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursor, nil)

	s := skin.NewCollection(mockColl).Stream()
	ctx := context.Background()

	assert.Equal(t, skin.StepDocument, s.Next(ctx).Kind)
	require.NoError(t, s.Close(ctx))
	assert.Equal(t, skin.StepEnd, s.Next(ctx).Kind)
	require.NoError(t, s.Close(ctx))
	cursor.AssertExpectations(t)
}

func TestStepKind_String(t *testing.T) {
	assert.Equal(t, "document", skin.StepDocument.String())
	assert.Equal(t, "end", skin.StepEnd.String())
	assert.Equal(t, "error", skin.StepError.String())
	assert.Equal(t, "unknown", skin.StepKind(0).String())
}
