package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Blog struct {
	ID        bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title     string        `json:"title" bson:"title"`
	Content   string        `json:"content" bson:"content"`
	Creator   string        `json:"creator" bson:"creator"`
	Tags      []string      `json:"tags" bson:"tags"`
	Likes     []string      `json:"likes" bson:"likes"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}

// Normalize replaces nil slices so documents written without them still encode as [].
func (b *Blog) Normalize() {
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.Likes == nil {
		b.Likes = []string{}
	}
}

// LikedBy reports whether userID is in the likes set.
func (b *Blog) LikedBy(userID string) bool {
	for _, id := range b.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// BlogUpdate carries only the fields a PATCH supplied; nil means leave as is.
type BlogUpdate struct {
	Title   *string
	Content *string
	Creator *string
	Tags    *[]string
}

func (u BlogUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Creator == nil && u.Tags == nil
}
