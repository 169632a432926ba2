package xmongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestNewCursorSourceArgs(t *testing.T) {
	t.Parallel()

	cur, err := mongo.NewCursorFromDocuments([]any{idDoc(1)}, nil, nil)
	require.NoError(t, err)

	var nilCtx context.Context
	_, err = NewCursorSource(nilCtx, cur)
	assert.ErrorIs(t, err, ErrNilContext)

	_, err = NewCursorSource(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilCursor)
}

func TestCursorSourceDrains(t *testing.T) {
	t.Parallel()

	cur, err := mongo.NewCursorFromDocuments([]any{
		bson.D{{Key: "_id", Value: int32(1)}, {Key: "a", Value: "x"}},
		bson.D{{Key: "_id", Value: int32(2)}, {Key: "a", Value: "y"}},
	}, nil, nil)
	require.NoError(t, err)

	src, err := NewCursorSource(context.Background(), cur)
	require.NoError(t, err)

	var ids []int32
	for {
		r, err := src.Next()
		require.NoError(t, err)
		if r.IsEOF() {
			break
		}
		require.True(t, r.IsAdvanced())
		id, ok := r.Document().Lookup("_id")
		require.True(t, ok)
		ids = append(ids, id.(int32))

		a, ok := r.Document().Lookup("a")
		require.True(t, ok)
		assert.NotEmpty(t, a)
	}

	assert.Equal(t, []int32{1, 2}, ids)

	// 终态幂等
	for i := 0; i < 3; i++ {
		r, err := src.Next()
		require.NoError(t, err)
		assert.True(t, r.IsEOF())
	}
}
