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

// Compile-time check to ensure AccountRepository implements the interface
var _ repositories.AccountRepository = (*AccountRepository)(nil)

// AccountRepository handles MongoDB operations for OrganisationAccount
type AccountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{
		collection: db.Collection("organisation_accounts"),
	}
}

// Create inserts a new organisation account
func (r *AccountRepository) Create(ctx context.Context, account *models.OrganisationAccount) error {
	account.ID = primitive.NewObjectID()
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, account)
	return err
}

// FindByID finds an account by ID
func (r *AccountRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.OrganisationAccount, error) {
	var account models.OrganisationAccount
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &account, nil
}

// FindByOrganisationID finds the account belonging to an organisation
func (r *AccountRepository) FindByOrganisationID(ctx context.Context, organisationID primitive.ObjectID) (*models.OrganisationAccount, error) {
	var account models.OrganisationAccount
	err := r.collection.FindOne(ctx, bson.M{"organisationId": organisationID}).Decode(&account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Update updates an existing account
func (r *AccountRepository) Update(ctx context.Context, account *models.OrganisationAccount) error {
	account.UpdatedAt = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": account.ID}, bson.M{"$set": account})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes an account by ID
func (r *AccountRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
