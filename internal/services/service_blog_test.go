package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogs-api/dto"
	"blogs-api/internal/models"
	"blogs-api/internal/repository/memory"
)

func newTestService() *BlogService {
	svc := NewBlogService(memory.NewBlogStore())
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc
}

func seed(t *testing.T, svc *BlogService, n int) []*models.Blog {
	t.Helper()
	out := make([]*models.Blog, 0, n)
	for i := 0; i < n; i++ {
		b, err := svc.Create(context.Background(), dto.CreateBlogDTO{
			Title: fmt.Sprintf("post %d", i),
			Tags:  []string{fmt.Sprintf("tag%d", i%3)},
		}, "u1")
		require.NoError(t, err)
		out = append(out, b)
	}
	return out
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	for _, total := range []int{0, 1, 8, 9, 17} {
		svc := newTestService()
		seed(t, svc, total)

		wantPages := (total + PageSize - 1) / PageSize
		for page := 1; page <= wantPages+1; page++ {
			res, err := svc.List(ctx, page)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(res.Data), PageSize)
			assert.Equal(t, page, res.CurrentPage)
			assert.Equal(t, wantPages, res.NumberOfPages, "total=%d", total)
		}
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService()
	seed(t, svc, 10)

	res, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, res.Data, PageSize)
	assert.Equal(t, "post 9", res.Data[0].Title)

	res, err = svc.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "post 0", res.Data[1].Title)
}

func TestListClampsPage(t *testing.T) {
	svc := newTestService()
	seed(t, svc, 3)

	res, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Len(t, res.Data, 3)
}

type pageRecorder struct {
	*memory.BlogStore
	skips []int64
}

func (r *pageRecorder) FindPage(ctx context.Context, skip, limit int64) ([]models.Blog, error) {
	r.skips = append(r.skips, skip)
	return r.BlogStore.FindPage(ctx, skip, limit)
}

func TestListHugePageIsEmpty(t *testing.T) {
	rec := &pageRecorder{BlogStore: memory.NewBlogStore()}
	svc := NewBlogService(rec)
	seed(t, svc, 3)

	for _, page := range []int{math.MaxInt/PageSize + 2, math.MaxInt} {
		res, err := svc.List(context.Background(), page)
		require.NoError(t, err)
		assert.Equal(t, page, res.CurrentPage)
		assert.Equal(t, 1, res.NumberOfPages)
		assert.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
	}
	for _, skip := range rec.skips {
		assert.GreaterOrEqual(t, skip, int64(0))
	}
}

func TestSearchMatchesTitleOrTag(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	seed(t, svc, 6)
	_, err := svc.Create(ctx, dto.CreateBlogDTO{Title: "Go Concurrency", Tags: []string{"Golang"}}, "u2")
	require.NoError(t, err)

	res, err := svc.Search(ctx, "GOLANG")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Go Concurrency", res[0].Title)

	res, err = svc.Search(ctx, "tag1")
	require.NoError(t, err)
	for _, b := range res {
		hit := strings.Contains(strings.ToLower(b.Title), "tag1")
		for _, tag := range b.Tags {
			hit = hit || strings.Contains(strings.ToLower(tag), "tag1")
		}
		assert.True(t, hit)
	}
	assert.Len(t, res, 2)

	res, err = svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, res, 7)

	res, err = svc.Search(ctx, ".*")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestCreateThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Create(ctx, dto.CreateBlogDTO{Title: "A", Content: "B", Tags: []string{"x"}}, "u1")
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "u1", created.Creator)
	assert.Equal(t, []string{}, created.Likes)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, "B", got.Content)
	assert.Equal(t, []string{"x"}, got.Tags)
	assert.Equal(t, "u1", got.Creator)
}

func TestCreatedAtIsPerDocument(t *testing.T) {
	svc := newTestService()
	blogs := seed(t, svc, 2)
	assert.True(t, blogs[1].CreatedAt.After(blogs[0].CreatedAt))
}

func TestToggleLikeTwiceRestores(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	b := seed(t, svc, 1)[0]

	liked, err := svc.ToggleLike(ctx, b.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, liked.Likes)

	other, err := svc.ToggleLike(ctx, b.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, other.Likes)

	unliked, err := svc.ToggleLike(ctx, b.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, unliked.Likes)
}

func TestToggleLikeRequiresCaller(t *testing.T) {
	svc := newTestService()
	b := seed(t, svc, 1)[0]

	_, err := svc.ToggleLike(context.Background(), b.ID, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestToggleLikeMissingBlog(t *testing.T) {
	got, err := newTestService().ToggleLike(context.Background(), bson.NewObjectID(), "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateEchoesPayload(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	b := seed(t, svc, 1)[0]

	title := "renamed"
	res, err := svc.Update(ctx, b.ID, dto.UpdateBlogDTO{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, b.ID.Hex(), res.ID)
	assert.Equal(t, &title, res.Title)
	assert.Nil(t, res.Content)

	got, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, b.Tags, got.Tags)
}

func TestDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	b := seed(t, svc, 1)[0]

	require.NoError(t, svc.Delete(ctx, b.ID))
	got, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, svc.Delete(ctx, b.ID))
}

func TestParseID(t *testing.T) {
	_, err := ParseID("nope")
	assert.ErrorIs(t, err, ErrInvalidID)

	id := bson.NewObjectID()
	got, err := ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

type failingStore struct {
	memory.BlogStore
}

var errStoreDown = errors.New("store unavailable")

func (*failingStore) Count(context.Context) (int64, error) { return 0, errStoreDown }

func TestListPropagatesStoreError(t *testing.T) {
	svc := NewBlogService(&failingStore{})
	_, err := svc.List(context.Background(), 1)
	assert.ErrorIs(t, err, errStoreDown)
}
