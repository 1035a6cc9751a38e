package blogRepository

import (
	"context"
	"time"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/entity"
	contextPkg "github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogDocument is the shape of a blog in the mongo collection.
type BlogDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Details   string             `bson:"details"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
}

var newestFirst = bson.D{
	{Key: "createdAt", Value: -1},
	{Key: "_id", Value: -1},
}

func NewMongo(coll *mongo.Collection, log *logrus.Logger) Repository {
	return &mongoRepository{
		coll: coll,
		log:  log,
	}
}

type mongoRepository struct {
	coll *mongo.Collection
	log  *logrus.Logger
}

// NewClient ignores tx: single-document inserts are atomic on their own.
func (r *mongoRepository) NewClient(_ bool) (Client, error) {
	return Client{
		Blogs:    &mongoBlogsRepository{coll: r.coll, log: r.log},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

// EnsureIndexes creates the index backing the newest-first listing.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    newestFirst,
		Options: options.Index().SetName("createdAt_desc"),
	})
	return err
}

type mongoBlogsRepository struct {
	coll *mongo.Collection
	log  *logrus.Logger
}

func (r *mongoBlogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	doc := toDocument(blog)
	doc.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return entity.Blog{}, err
	}

	return makeBlogFromDocument(doc), nil
}

func (r *mongoBlogsRepository) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(newestFirst))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllBlogs find err")
		return nil, err
	}

	var docs []BlogDocument
	if err := cur.All(ctx, &docs); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllBlogs decode err")
		return nil, err
	}

	result := make([]entity.Blog, 0, len(docs))
	for _, doc := range docs {
		result = append(result, makeBlogFromDocument(doc))
	}

	return result, nil
}

func toDocument(blog entity.Blog) BlogDocument {
	doc := BlogDocument{
		Title:     blog.Title,
		Details:   blog.Details,
		Content:   blog.Content,
		CreatedAt: blog.CreatedAt.UTC(),
	}
	if id, err := primitive.ObjectIDFromHex(blog.ID); err == nil {
		doc.ID = id
	}
	return doc
}

func makeBlogFromDocument(doc BlogDocument) entity.Blog {
	return entity.Blog{
		ID:        doc.ID.Hex(),
		Title:     doc.Title,
		Details:   doc.Details,
		Content:   doc.Content,
		CreatedAt: doc.CreatedAt.UTC(),
	}
}
