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

// Compile-time check to ensure SalesOrderRepository implements the interface
var _ repositories.SalesOrderRepository = (*SalesOrderRepository)(nil)

// SalesOrderRepository handles MongoDB operations for SalesOrder
type SalesOrderRepository struct {
	collection *mongo.Collection
}

// NewSalesOrderRepository creates a new SalesOrderRepository
func NewSalesOrderRepository(db *mongo.Database) *SalesOrderRepository {
	return &SalesOrderRepository{
		collection: db.Collection("sales_orders"),
	}
}

// Create inserts a new sales order
func (r *SalesOrderRepository) Create(ctx context.Context, order *models.SalesOrder) error {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindByID finds a sales order by ID
func (r *SalesOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SalesOrder, error) {
	var order models.SalesOrder
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &order, nil
}

// Update updates an existing sales order
func (r *SalesOrderRepository) Update(ctx context.Context, order *models.SalesOrder) error {
	order.UpdatedAt = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": order.ID}, bson.M{"$set": order})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
