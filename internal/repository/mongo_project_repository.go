package repository

import (
	"context"
	"errors"
	"time"

	"github.com/portfolio/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProjectRepository is the MongoDB implementation of ProjectRepository.
type MongoProjectRepository struct {
	coll *mongo.Collection
}

// NewMongoProjectRepository creates a MongoProjectRepository over db.projects.
func NewMongoProjectRepository(db *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{coll: db.Collection(projectsCollection)}
}

var _ ProjectRepository = (*MongoProjectRepository)(nil)

// projectUpdate is the $set document of an update.
type projectUpdate struct {
	model.ProjectInput `bson:",inline"`
	UpdatedAt          time.Time `bson:"updated_at"`
}

func (r *MongoProjectRepository) find(ctx context.Context, filter bson.D, limit int) ([]*model.Project, error) {
	cur, err := r.coll.Find(ctx, filter, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	projects := []*model.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	for _, p := range projects {
		normalizeProject(p)
	}
	return projects, nil
}

// List returns projects ordered by created_at descending.
func (r *MongoProjectRepository) List(ctx context.Context, limit int) ([]*model.Project, error) {
	return r.find(ctx, bson.D{}, limit)
}

// ListFeatured returns featured projects ordered by created_at descending.
func (r *MongoProjectRepository) ListFeatured(ctx context.Context, limit int) ([]*model.Project, error) {
	return r.find(ctx, bson.D{{Key: "featured", Value: true}}, limit)
}

// GetByID returns ErrNotFound when no document has the given id.
func (r *MongoProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	err := r.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	normalizeProject(&p)
	return &p, nil
}

// Create inserts the project as given; id and timestamps must already be set.
func (r *MongoProjectRepository) Create(ctx context.Context, p *model.Project) error {
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

// Update sets every editable field plus updated_at and returns the
// document as it is after the update.
func (r *MongoProjectRepository) Update(ctx context.Context, id string, in model.ProjectInput, updatedAt time.Time) (*model.Project, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p model.Project
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "id", Value: id}},
		bson.D{{Key: "$set", Value: projectUpdate{ProjectInput: in, UpdatedAt: updatedAt}}},
		opts,
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	normalizeProject(&p)
	return &p, nil
}

// Delete returns ErrNotFound when nothing was removed.
func (r *MongoProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored projects.
func (r *MongoProjectRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

// normalizeProject restores the shape the API promises after a BSON round
// trip: UTC timestamps and non-nil lists.
func normalizeProject(p *model.Project) {
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	p.TechStack = nonNil(p.TechStack)
	p.GalleryImages = nonNil(p.GalleryImages)
}
