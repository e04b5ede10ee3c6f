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

// Compile-time check to ensure PointPriceRepository implements the interface
var _ repositories.PointPriceRepository = (*PointPriceRepository)(nil)

// PointPriceRepository handles MongoDB operations for PointPriceConfiguration
type PointPriceRepository struct {
	collection *mongo.Collection
}

// NewPointPriceRepository creates a new PointPriceRepository
func NewPointPriceRepository(db *mongo.Database) *PointPriceRepository {
	return &PointPriceRepository{
		collection: db.Collection("point_price_configurations"),
	}
}

// Create inserts a new pricing row
func (r *PointPriceRepository) Create(ctx context.Context, price *models.PointPriceConfiguration) error {
	price.ID = primitive.NewObjectID()
	price.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, price)
	return err
}

// FindByID finds a pricing row by ID
func (r *PointPriceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PointPriceConfiguration, error) {
	var price models.PointPriceConfiguration
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&price)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &price, nil
}

// FindApplicable returns the most recently created row whose effective date
// is on or before asOf. Sorting by createdAt rather than applicableFromDate
// lets a back-dated correction created later win over older rows.
func (r *PointPriceRepository) FindApplicable(ctx context.Context, asOf time.Time) (*models.PointPriceConfiguration, error) {
	filter := bson.M{"applicableFromDate": bson.M{"$lte": asOf}}
	findOptions := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var price models.PointPriceConfiguration
	err := r.collection.FindOne(ctx, filter, findOptions).Decode(&price)
	if err != nil {
		return nil, err // mongo.ErrNoDocuments when no row qualifies
	}
	return &price, nil
}

// FindAll retrieves all pricing rows, newest first
func (r *PointPriceRepository) FindAll(ctx context.Context) ([]*models.PointPriceConfiguration, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prices []*models.PointPriceConfiguration
	if err = cursor.All(ctx, &prices); err != nil {
		return nil, err
	}
	if prices == nil {
		prices = []*models.PointPriceConfiguration{}
	}
	return prices, nil
}
