package repository

import (
	"context"
	"regexp"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"blogs-api/internal/models"
)

const (
	BlogsCollection = "blogs"
	UsersCollection = "users"
)

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection(BlogsCollection)}
}

func newestFirst() bson.D {
	return bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	}
}

// searchFilter matches query as a literal, case-insensitive substring of the
// title or of any tag.
func searchFilter(query string) bson.M {
	pattern := bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
	return bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"tags": pattern},
	}}
}

func updateSet(u models.BlogUpdate) bson.D {
	set := bson.D{}
	if u.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *u.Title})
	}
	if u.Content != nil {
		set = append(set, bson.E{Key: "content", Value: *u.Content})
	}
	if u.Creator != nil {
		set = append(set, bson.E{Key: "creator", Value: *u.Creator})
	}
	if u.Tags != nil {
		tags := *u.Tags
		if tags == nil {
			tags = []string{}
		}
		set = append(set, bson.E{Key: "tags", Value: tags})
	}
	return set
}

// toggleLikeUpdate flips userID's membership of likes inside a single update
// pipeline, so concurrent toggles on one post are applied one after another.
func toggleLikeUpdate(userID string) mongo.Pipeline {
	uid := bson.D{{Key: "$literal", Value: userID}}
	likes := bson.D{{Key: "$ifNull", Value: bson.A{"$likes", bson.A{}}}}

	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "likes", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{uid, likes}}}},
				{Key: "then", Value: bson.D{{Key: "$filter", Value: bson.D{
					{Key: "input", Value: likes},
					{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", uid}}}},
				}}}},
				{Key: "else", Value: bson.D{{Key: "$concatArrays", Value: bson.A{likes, bson.A{uid}}}}},
			}}}},
		}}},
	}
}

func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "count blogs")
	}
	return n, nil
}

func (r *BlogRepository) FindPage(ctx context.Context, skip, limit int64) ([]models.Blog, error) {
	opts := options.Find().
		SetSort(newestFirst()).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find blogs")
	}
	defer cur.Close(ctx)

	items := []models.Blog{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decode blogs")
	}
	return items, nil
}

func (r *BlogRepository) Search(ctx context.Context, query string) ([]models.Blog, error) {
	cur, err := r.col.Find(ctx, searchFilter(query), options.Find().SetSort(newestFirst()))
	if err != nil {
		return nil, errors.Wrap(err, "search blogs")
	}
	defer cur.Close(ctx)

	items := []models.Blog{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decode blogs")
	}
	return items, nil
}

// FindByID returns nil without error when no blog has id.
func (r *BlogRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Blog, error) {
	var b models.Blog
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find blog %s", id.Hex())
	}
	return &b, nil
}

func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return errors.Wrap(err, "insert blog")
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		b.ID = oid
	}
	return nil
}

func (r *BlogRepository) Update(ctx context.Context, id bson.ObjectID, u models.BlogUpdate) error {
	if u.Empty() {
		return nil
	}
	if _, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: updateSet(u)}}); err != nil {
		return errors.Wrapf(err, "update blog %s", id.Hex())
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrapf(err, "delete blog %s", id.Hex())
	}
	return nil
}

// ToggleLike returns the blog as stored after the toggle, or nil when no blog has id.
func (r *BlogRepository) ToggleLike(ctx context.Context, id bson.ObjectID, userID string) (*models.Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Blog
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, toggleLikeUpdate(userID), opts).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "toggle like on blog %s", id.Hex())
	}
	return &b, nil
}
