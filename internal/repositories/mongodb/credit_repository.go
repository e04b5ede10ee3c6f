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

// Compile-time check to ensure CreditRepository implements the interface
var _ repositories.CreditRepository = (*CreditRepository)(nil)

// CreditRepository handles MongoDB operations for the credit ledger
type CreditRepository struct {
	collection *mongo.Collection
}

// NewCreditRepository creates a new CreditRepository
func NewCreditRepository(db *mongo.Database) *CreditRepository {
	return &CreditRepository{
		collection: db.Collection("organisation_account_credits"),
	}
}

// Create appends a new credit to the ledger
func (r *CreditRepository) Create(ctx context.Context, credit *models.Credit) error {
	credit.ID = primitive.NewObjectID()
	credit.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, credit)
	return err
}

// FindByID finds a credit by ID
func (r *CreditRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Credit, error) {
	var credit models.Credit
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&credit)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &credit, nil
}

// FindByAccountID finds all ledger entries for an account, newest first
func (r *CreditRepository) FindByAccountID(ctx context.Context, accountID primitive.ObjectID) ([]*models.Credit, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"organisationAccountId": accountID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var credits []*models.Credit
	if err = cursor.All(ctx, &credits); err != nil {
		return nil, err
	}
	if credits == nil {
		credits = []*models.Credit{}
	}
	return credits, nil
}

// SumPointsByType aggregates numberOfPoints across the account's ledger
// entries of the given point type. An account with no matching entries sums
// to zero, never null.
func (r *CreditRepository) SumPointsByType(ctx context.Context, accountID primitive.ObjectID, pointType models.PointType) (int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"organisationAccountId": accountID,
			"typeOfPoints":          pointType,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$numberOfPoints"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// Update updates an existing credit
func (r *CreditRepository) Update(ctx context.Context, credit *models.Credit) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": credit.ID}, bson.M{"$set": credit})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a credit from the ledger. Deletion does not touch the
// account's cached balances; callers must trigger recalculation themselves.
func (r *CreditRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
