package repository

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"blogs-api/database"
	"blogs-api/internal/models"
)

// mongoDB connects to MONGO_URI and hands back a throwaway database that is
// dropped when the test ends. Tests are skipped when MONGO_URI is unset.
func mongoDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	name := "blogs_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	client, db, err := database.ConnectMongo(ctx, uri, name)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		database.DisconnectMongo(client)
	})
	return db
}

func insertBlog(t *testing.T, repo *BlogRepository, title string) bson.ObjectID {
	t.Helper()
	b := &models.Blog{Title: title, Likes: []string{}, Tags: []string{}, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Insert(context.Background(), b))
	require.False(t, b.ID.IsZero())
	return b.ID
}

func TestMongoToggleLikeAddsThenRemoves(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository(mongoDB(t))
	id := insertBlog(t, repo, "liked")

	b, err := repo.ToggleLike(ctx, id, "u1")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, []string{"u1"}, b.Likes)

	b, err = repo.ToggleLike(ctx, id, "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, b.Likes)

	b, err = repo.ToggleLike(ctx, id, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, b.Likes)

	stored, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, stored.Likes)
}

func TestMongoToggleLikeOperatorLookingUserID(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository(mongoDB(t))
	id := insertBlog(t, repo, "dollar")

	b, err := repo.ToggleLike(ctx, id, "$likes")
	require.NoError(t, err)
	assert.Equal(t, []string{"$likes"}, b.Likes)

	b, err = repo.ToggleLike(ctx, id, "$likes")
	require.NoError(t, err)
	assert.Empty(t, b.Likes)
}

func TestMongoToggleLikeMissingLikesField(t *testing.T) {
	ctx := context.Background()
	db := mongoDB(t)
	repo := NewBlogRepository(db)

	res, err := db.Collection(BlogsCollection).InsertOne(ctx, bson.M{"title": "legacy"})
	require.NoError(t, err)
	id := res.InsertedID.(bson.ObjectID)

	b, err := repo.ToggleLike(ctx, id, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, b.Likes)
}

func TestMongoToggleLikeUnknownBlog(t *testing.T) {
	repo := NewBlogRepository(mongoDB(t))

	b, err := repo.ToggleLike(context.Background(), bson.NewObjectID(), "u1")
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestMongoConcurrentTogglesKeepEveryLike(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository(mongoDB(t))
	id := insertBlog(t, repo, "popular")

	const users = 20
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(uid string) {
			defer wg.Done()
			_, err := repo.ToggleLike(ctx, id, uid)
			assert.NoError(t, err)
		}(fmt.Sprintf("u%d", i))
	}
	wg.Wait()

	b, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, b.Likes, users)
}

func TestMongoFindPageNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := mongoDB(t)
	repo := NewBlogRepository(db)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		require.NoError(t, repo.Insert(ctx, &models.Blog{
			Title:     fmt.Sprint(i),
			Likes:     []string{},
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 10, n)

	page, err := repo.FindPage(ctx, 8, 8)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "1", page[0].Title)
	assert.Equal(t, "0", page[1].Title)
}
