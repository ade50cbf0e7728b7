package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoContactRepository is the MongoDB implementation of ContactRepository.
type MongoContactRepository struct {
	coll *mongo.Collection
}

// NewMongoContactRepository creates a MongoContactRepository over db.contacts.
func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{coll: db.Collection(contactsCollection)}
}

var _ ContactRepository = (*MongoContactRepository)(nil)

func (r *MongoContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	_, err := r.coll.InsertOne(ctx, msg)
	return err
}

func (r *MongoContactRepository) List(ctx context.Context, limit int) ([]*model.ContactMessage, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	messages := []*model.ContactMessage{}
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	for _, m := range messages {
		m.CreatedAt = m.CreatedAt.UTC()
	}
	return messages, nil
}

func (r *MongoContactRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}
