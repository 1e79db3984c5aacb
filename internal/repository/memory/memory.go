// Package memory keeps blogs and users in process memory. It backs
// `serve --in-memory` and the handler tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogs-api/internal/models"
	"blogs-api/internal/repository"
)

type BlogStore struct {
	mu    sync.RWMutex
	blogs map[bson.ObjectID]models.Blog
}

func NewBlogStore() *BlogStore {
	return &BlogStore{blogs: map[bson.ObjectID]models.Blog{}}
}

func clone(b models.Blog) models.Blog {
	b.Tags = append([]string(nil), b.Tags...)
	b.Likes = append([]string(nil), b.Likes...)
	return b
}

func (s *BlogStore) sorted() []models.Blog {
	out := make([]models.Blog, 0, len(s.blogs))
	for _, b := range s.blogs {
		out = append(out, clone(b))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	return out
}

func (s *BlogStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.blogs)), nil
}

func (s *BlogStore) FindPage(ctx context.Context, skip, limit int64) ([]models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.sorted()
	if skip < 0 || limit <= 0 || skip >= int64(len(all)) {
		return []models.Blog{}, nil
	}
	end := skip + limit
	if end < skip || end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[skip:end], nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (s *BlogStore) Search(ctx context.Context, query string) ([]models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Blog{}
	for _, b := range s.sorted() {
		match := containsFold(b.Title, query)
		for _, t := range b.Tags {
			if match {
				break
			}
			match = containsFold(t, query)
		}
		if match {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BlogStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blogs[id]
	if !ok {
		return nil, nil
	}
	b = clone(b)
	return &b, nil
}

func (s *BlogStore) Insert(ctx context.Context, b *models.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID.IsZero() {
		b.ID = bson.NewObjectID()
	}
	s.blogs[b.ID] = clone(*b)
	return nil
}

func (s *BlogStore) Update(ctx context.Context, id bson.ObjectID, u models.BlogUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blogs[id]
	if !ok {
		return nil
	}
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Content != nil {
		b.Content = *u.Content
	}
	if u.Creator != nil {
		b.Creator = *u.Creator
	}
	if u.Tags != nil {
		b.Tags = append([]string{}, (*u.Tags)...)
	}
	s.blogs[id] = b
	return nil
}

func (s *BlogStore) Delete(ctx context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blogs, id)
	return nil
}

func (s *BlogStore) ToggleLike(ctx context.Context, id bson.ObjectID, userID string) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blogs[id]
	if !ok {
		return nil, nil
	}
	if b.LikedBy(userID) {
		kept := make([]string, 0, len(b.Likes))
		for _, l := range b.Likes {
			if l != userID {
				kept = append(kept, l)
			}
		}
		b.Likes = kept
	} else {
		b.Likes = append(b.Likes, userID)
	}
	s.blogs[id] = b

	out := clone(b)
	return &out, nil
}

type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{byEmail: map[string]models.User{}}
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *UserStore) Insert(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[u.Email]; ok {
		return repository.ErrDuplicate
	}
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	s.byEmail[u.Email] = *u
	return nil
}
