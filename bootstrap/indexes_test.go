package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBlogIndexesCoverListSort(t *testing.T) {
	idx := BlogIndexes()
	require.Len(t, idx, 2)

	keys, ok := idx[0].Keys.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, keys)
}

func TestUserIndexesEmailKey(t *testing.T) {
	idx := UserIndexes()
	require.Len(t, idx, 1)
	assert.Equal(t, bson.D{{Key: "email", Value: 1}}, idx[0].Keys)
}
