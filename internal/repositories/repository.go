package repositories

import (
	"context"
	"time"

	"github.com/openunited/commerce-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganisationRepository defines the interface for organisation data operations
type OrganisationRepository interface {
	Create(ctx context.Context, organisation *models.Organisation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Organisation, error)
	FindByUsername(ctx context.Context, username string) (*models.Organisation, error)
	Update(ctx context.Context, organisation *models.Organisation) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context, page, limit int) ([]*models.Organisation, error)
}

// AccountRepository defines the interface for organisation account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *models.OrganisationAccount) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.OrganisationAccount, error)
	FindByOrganisationID(ctx context.Context, organisationID primitive.ObjectID) (*models.OrganisationAccount, error)
	Update(ctx context.Context, account *models.OrganisationAccount) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CreditRepository defines the interface for credit ledger data operations
type CreditRepository interface {
	Create(ctx context.Context, credit *models.Credit) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Credit, error)
	FindByAccountID(ctx context.Context, accountID primitive.ObjectID) ([]*models.Credit, error)
	// SumPointsByType aggregates numberOfPoints across the account's ledger
	// entries of the given point type. An account with no matching entries
	// sums to zero.
	SumPointsByType(ctx context.Context, accountID primitive.ObjectID, pointType models.PointType) (int64, error)
	Update(ctx context.Context, credit *models.Credit) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PointPriceRepository defines the interface for pricing row data operations
type PointPriceRepository interface {
	Create(ctx context.Context, price *models.PointPriceConfiguration) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.PointPriceConfiguration, error)
	// FindApplicable returns the most recently created row whose
	// applicableFromDate is on or before asOf. Creation order, not effective
	// date, is the tie-break.
	FindApplicable(ctx context.Context, asOf time.Time) (*models.PointPriceConfiguration, error)
	FindAll(ctx context.Context) ([]*models.PointPriceConfiguration, error)
}

// CartRepository defines the interface for cart data operations
type CartRepository interface {
	Create(ctx context.Context, cart *models.Cart) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error)
	FindByAccountID(ctx context.Context, accountID primitive.ObjectID) ([]*models.Cart, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SalesOrderRepository defines the interface for sales order data operations
type SalesOrderRepository interface {
	Create(ctx context.Context, order *models.SalesOrder) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.SalesOrder, error)
	Update(ctx context.Context, order *models.SalesOrder) error
}

// PointGrantRepository defines the interface for administrative grant data operations
type PointGrantRepository interface {
	Create(ctx context.Context, grant *models.PointGrant) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.PointGrant, error)
	Update(ctx context.Context, grant *models.PointGrant) error
}

// AdminUserRepository defines the interface for admin user data operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
}
