package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEncodesEmptyArrays(t *testing.T) {
	var b Blog
	b.Normalize()

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"likes":[]`)
	assert.Contains(t, string(raw), `"tags":[]`)
}

func TestLikedBy(t *testing.T) {
	b := Blog{Likes: []string{"u1", "u2"}}
	assert.True(t, b.LikedBy("u2"))
	assert.False(t, b.LikedBy("u3"))
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	raw, err := json.Marshal(User{Email: "a@b.c", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
}
