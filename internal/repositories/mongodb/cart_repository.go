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

// Compile-time check to ensure CartRepository implements the interface
var _ repositories.CartRepository = (*CartRepository)(nil)

// CartRepository handles MongoDB operations for Cart
type CartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{
		collection: db.Collection("carts"),
	}
}

// Create inserts a new cart
func (r *CartRepository) Create(ctx context.Context, cart *models.Cart) error {
	cart.ID = primitive.NewObjectID()
	cart.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, cart)
	return err
}

// FindByID finds a cart by ID
func (r *CartRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cart)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &cart, nil
}

// FindByAccountID finds all carts priced for an account, newest first
func (r *CartRepository) FindByAccountID(ctx context.Context, accountID primitive.ObjectID) ([]*models.Cart, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"organisationAccountId": accountID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var carts []*models.Cart
	if err = cursor.All(ctx, &carts); err != nil {
		return nil, err
	}
	if carts == nil {
		carts = []*models.Cart{}
	}
	return carts, nil
}

// Delete deletes a cart by ID
func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
