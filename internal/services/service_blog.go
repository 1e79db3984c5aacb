package services

import (
	"context"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogs-api/dto"
	"blogs-api/internal/models"
)

const PageSize = 8

// BlogStore is the persistence the blog use-cases need; repository.BlogRepository
// implements it over MongoDB.
type BlogStore interface {
	Count(ctx context.Context) (int64, error)
	FindPage(ctx context.Context, skip, limit int64) ([]models.Blog, error)
	Search(ctx context.Context, query string) ([]models.Blog, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Blog, error)
	Insert(ctx context.Context, b *models.Blog) error
	Update(ctx context.Context, id bson.ObjectID, u models.BlogUpdate) error
	Delete(ctx context.Context, id bson.ObjectID) error
	ToggleLike(ctx context.Context, id bson.ObjectID, userID string) (*models.Blog, error)
}

type BlogService struct {
	store BlogStore
	now   func() time.Time
}

func NewBlogService(store BlogStore) *BlogService {
	return &BlogService{store: store, now: time.Now}
}

func ParseID(hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}
	return id, nil
}

func numberOfPages(total int64) int {
	return int((total + PageSize - 1) / PageSize)
}

func normalizeAll(items []models.Blog) []models.Blog {
	if items == nil {
		return []models.Blog{}
	}
	for i := range items {
		items[i].Normalize()
	}
	return items
}

// List returns page (1-based) of blogs, newest first. Pages below 1 are read as 1.
func (s *BlogService) List(ctx context.Context, page int) (dto.BlogPageResponse, error) {
	if page < 1 {
		page = 1
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return dto.BlogPageResponse{}, err
	}
	out := dto.BlogPageResponse{
		Data:          []models.Blog{},
		CurrentPage:   page,
		NumberOfPages: numberOfPages(total),
	}
	// offsets past MaxInt64 cannot hold any documents
	if int64(page-1) > (math.MaxInt64-PageSize)/PageSize {
		return out, nil
	}
	items, err := s.store.FindPage(ctx, int64(page-1)*PageSize, PageSize)
	if err != nil {
		return dto.BlogPageResponse{}, err
	}
	out.Data = normalizeAll(items)
	return out, nil
}

func (s *BlogService) Search(ctx context.Context, query string) ([]models.Blog, error) {
	items, err := s.store.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return normalizeAll(items), nil
}

// Get returns nil when no blog has id.
func (s *BlogService) Get(ctx context.Context, id bson.ObjectID) (*models.Blog, error) {
	b, err := s.store.FindByID(ctx, id)
	if err != nil || b == nil {
		return nil, err
	}
	b.Normalize()
	return b, nil
}

func (s *BlogService) Create(ctx context.Context, in dto.CreateBlogDTO, callerID string) (*models.Blog, error) {
	b := &models.Blog{
		Title:     in.Title,
		Content:   in.Content,
		Creator:   callerID,
		Tags:      in.Tags,
		Likes:     []string{},
		CreatedAt: s.now().UTC(),
	}
	b.Normalize()
	if err := s.store.Insert(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update applies the supplied fields and echoes the payload back; it does not
// check that the blog exists.
func (s *BlogService) Update(ctx context.Context, id bson.ObjectID, in dto.UpdateBlogDTO) (dto.UpdatedBlogResponse, error) {
	if err := s.store.Update(ctx, id, in.ToModel()); err != nil {
		return dto.UpdatedBlogResponse{}, err
	}
	return dto.UpdatedBlogResponse{UpdateBlogDTO: in, ID: id.Hex()}, nil
}

func (s *BlogService) Delete(ctx context.Context, id bson.ObjectID) error {
	return s.store.Delete(ctx, id)
}

// ToggleLike adds callerID to the blog's likes or removes it if present.
// A missing blog yields nil.
func (s *BlogService) ToggleLike(ctx context.Context, id bson.ObjectID, callerID string) (*models.Blog, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	b, err := s.store.ToggleLike(ctx, id, callerID)
	if err != nil || b == nil {
		return nil, err
	}
	b.Normalize()
	return b, nil
}
