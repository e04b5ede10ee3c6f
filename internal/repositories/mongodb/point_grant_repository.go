package mongodb

import (
	"context"
	"time"

	"github.com/openunited/commerce-backend/internal/models"
	"github.com/openunited/commerce-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure PointGrantRepository implements the interface
var _ repositories.PointGrantRepository = (*PointGrantRepository)(nil)

// PointGrantRepository handles MongoDB operations for PointGrant
type PointGrantRepository struct {
	collection *mongo.Collection
}

// NewPointGrantRepository creates a new PointGrantRepository
func NewPointGrantRepository(db *mongo.Database) *PointGrantRepository {
	return &PointGrantRepository{
		collection: db.Collection("point_grants"),
	}
}

// Create inserts a new administrative grant
func (r *PointGrantRepository) Create(ctx context.Context, grant *models.PointGrant) error {
	grant.ID = primitive.NewObjectID()
	grant.CreatedAt = time.Now()
	grant.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, grant)
	return err
}

// FindByID finds a grant by ID
func (r *PointGrantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PointGrant, error) {
	var grant models.PointGrant
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&grant)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &grant, nil
}

// Update updates an existing grant
func (r *PointGrantRepository) Update(ctx context.Context, grant *models.PointGrant) error {
	grant.UpdatedAt = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": grant.ID}, bson.M{"$set": grant})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
