package mongodb

import (
	"context"
	"time"

	"github.com/openunited/commerce-backend/internal/models"
	"github.com/openunited/commerce-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure OrganisationRepository implements the interface
var _ repositories.OrganisationRepository = (*OrganisationRepository)(nil)

// OrganisationRepository handles MongoDB operations for Organisation
type OrganisationRepository struct {
	collection *mongo.Collection
}

// NewOrganisationRepository creates a new OrganisationRepository
func NewOrganisationRepository(db *mongo.Database) *OrganisationRepository {
	return &OrganisationRepository{
		collection: db.Collection("organisations"),
	}
}

// Create inserts a new organisation
func (r *OrganisationRepository) Create(ctx context.Context, organisation *models.Organisation) error {
	organisation.ID = primitive.NewObjectID()
	organisation.CreatedAt = time.Now()
	organisation.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, organisation)
	return err
}

// FindByID finds an organisation by ID
func (r *OrganisationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Organisation, error) {
	var organisation models.Organisation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&organisation)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &organisation, nil
}

// FindByUsername finds an organisation by username
func (r *OrganisationRepository) FindByUsername(ctx context.Context, username string) (*models.Organisation, error) {
	var organisation models.Organisation
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&organisation)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &organisation, nil
}

// Update updates an existing organisation
func (r *OrganisationRepository) Update(ctx context.Context, organisation *models.Organisation) error {
	organisation.UpdatedAt = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": organisation.ID}, bson.M{"$set": organisation})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes an organisation by ID
func (r *OrganisationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// FindAll retrieves organisations with pagination
func (r *OrganisationRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Organisation, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	findOptions := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var organisations []*models.Organisation
	if err = cursor.All(ctx, &organisations); err != nil {
		return nil, err
	}
	if organisations == nil {
		organisations = []*models.Organisation{}
	}
	return organisations, nil
}
