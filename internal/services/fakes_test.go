package services

import (
	"context"
	"testing"
	"time"

	"github.com/openunited/commerce-backend/internal/models"
	"github.com/openunited/commerce-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes. They mirror the mongodb implementations'
// contract: mongo.ErrNoDocuments for missing documents, IDs assigned on
// create. Error fields inject failures for the paths under test.

type fakeTxnRunner struct {
	calls int
}

func (f *fakeTxnRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeAccountRepo struct {
	accounts  map[primitive.ObjectID]*models.OrganisationAccount
	updateErr error
	updates   int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[primitive.ObjectID]*models.OrganisationAccount)}
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *models.OrganisationAccount) error {
	account.ID = primitive.NewObjectID()
	account.CreatedAt = time.Now()
	stored := *account
	f.accounts[account.ID] = &stored
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.OrganisationAccount, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	found := *account
	return &found, nil
}

func (f *fakeAccountRepo) FindByOrganisationID(ctx context.Context, organisationID primitive.ObjectID) (*models.OrganisationAccount, error) {
	for _, account := range f.accounts {
		if account.OrganisationID == organisationID {
			found := *account
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *models.OrganisationAccount) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.accounts[account.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.updates++
	stored := *account
	f.accounts[account.ID] = &stored
	return nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.accounts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.accounts, id)
	return nil
}

type fakeCreditRepo struct {
	credits   []*models.Credit
	createErr error
	sumErr    error
}

func newFakeCreditRepo() *fakeCreditRepo {
	return &fakeCreditRepo{}
}

func (f *fakeCreditRepo) Create(ctx context.Context, credit *models.Credit) error {
	if f.createErr != nil {
		return f.createErr
	}
	credit.ID = primitive.NewObjectID()
	credit.CreatedAt = time.Now()
	stored := *credit
	f.credits = append(f.credits, &stored)
	return nil
}

func (f *fakeCreditRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Credit, error) {
	for _, credit := range f.credits {
		if credit.ID == id {
			found := *credit
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCreditRepo) FindByAccountID(ctx context.Context, accountID primitive.ObjectID) ([]*models.Credit, error) {
	var out []*models.Credit
	for _, credit := range f.credits {
		if credit.OrganisationAccountID == accountID {
			found := *credit
			out = append(out, &found)
		}
	}
	return out, nil
}

func (f *fakeCreditRepo) SumPointsByType(ctx context.Context, accountID primitive.ObjectID, pointType models.PointType) (int64, error) {
	if f.sumErr != nil {
		return 0, f.sumErr
	}
	var total int64
	for _, credit := range f.credits {
		if credit.OrganisationAccountID == accountID && credit.TypeOfPoints == pointType {
			total += int64(credit.NumberOfPoints)
		}
	}
	return total, nil
}

func (f *fakeCreditRepo) Update(ctx context.Context, credit *models.Credit) error {
	for i, stored := range f.credits {
		if stored.ID == credit.ID {
			updated := *credit
			f.credits[i] = &updated
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeCreditRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, stored := range f.credits {
		if stored.ID == id {
			f.credits = append(f.credits[:i], f.credits[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakePointPriceRepo struct {
	prices []*models.PointPriceConfiguration
}

func newFakePointPriceRepo() *fakePointPriceRepo {
	return &fakePointPriceRepo{}
}

func (f *fakePointPriceRepo) Create(ctx context.Context, price *models.PointPriceConfiguration) error {
	price.ID = primitive.NewObjectID()
	if price.CreatedAt.IsZero() {
		price.CreatedAt = time.Now()
	}
	stored := *price
	f.prices = append(f.prices, &stored)
	return nil
}

func (f *fakePointPriceRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PointPriceConfiguration, error) {
	for _, price := range f.prices {
		if price.ID == id {
			found := *price
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePointPriceRepo) FindApplicable(ctx context.Context, asOf time.Time) (*models.PointPriceConfiguration, error) {
	var best *models.PointPriceConfiguration
	for _, price := range f.prices {
		if price.ApplicableFromDate.After(asOf) {
			continue
		}
		if best == nil || price.CreatedAt.After(best.CreatedAt) {
			best = price
		}
	}
	if best == nil {
		return nil, mongo.ErrNoDocuments
	}
	found := *best
	return &found, nil
}

func (f *fakePointPriceRepo) FindAll(ctx context.Context) ([]*models.PointPriceConfiguration, error) {
	out := make([]*models.PointPriceConfiguration, 0, len(f.prices))
	for _, price := range f.prices {
		found := *price
		out = append(out, &found)
	}
	return out, nil
}

type fakeCartRepo struct {
	carts     map[primitive.ObjectID]*models.Cart
	createErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[primitive.ObjectID]*models.Cart)}
}

func (f *fakeCartRepo) Create(ctx context.Context, cart *models.Cart) error {
	if f.createErr != nil {
		return f.createErr
	}
	cart.ID = primitive.NewObjectID()
	cart.CreatedAt = time.Now()
	stored := *cart
	f.carts[cart.ID] = &stored
	return nil
}

func (f *fakeCartRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error) {
	cart, ok := f.carts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	found := *cart
	return &found, nil
}

func (f *fakeCartRepo) FindByAccountID(ctx context.Context, accountID primitive.ObjectID) ([]*models.Cart, error) {
	var out []*models.Cart
	for _, cart := range f.carts {
		if cart.OrganisationAccountID == accountID {
			found := *cart
			out = append(out, &found)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.carts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.carts, id)
	return nil
}

type fakeSalesOrderRepo struct {
	orders    map[primitive.ObjectID]*models.SalesOrder
	updateErr error
}

func newFakeSalesOrderRepo() *fakeSalesOrderRepo {
	return &fakeSalesOrderRepo{orders: make(map[primitive.ObjectID]*models.SalesOrder)}
}

func (f *fakeSalesOrderRepo) Create(ctx context.Context, order *models.SalesOrder) error {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	stored := *order
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeSalesOrderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SalesOrder, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	found := *order
	return &found, nil
}

func (f *fakeSalesOrderRepo) Update(ctx context.Context, order *models.SalesOrder) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.orders[order.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	stored := *order
	f.orders[order.ID] = &stored
	return nil
}

type fakePointGrantRepo struct {
	grants map[primitive.ObjectID]*models.PointGrant
}

func newFakePointGrantRepo() *fakePointGrantRepo {
	return &fakePointGrantRepo{grants: make(map[primitive.ObjectID]*models.PointGrant)}
}

func (f *fakePointGrantRepo) Create(ctx context.Context, grant *models.PointGrant) error {
	grant.ID = primitive.NewObjectID()
	grant.CreatedAt = time.Now()
	stored := *grant
	f.grants[grant.ID] = &stored
	return nil
}

func (f *fakePointGrantRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PointGrant, error) {
	grant, ok := f.grants[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	found := *grant
	return &found, nil
}

func (f *fakePointGrantRepo) Update(ctx context.Context, grant *models.PointGrant) error {
	if _, ok := f.grants[grant.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	stored := *grant
	f.grants[grant.ID] = &stored
	return nil
}

func newObjectID(t *testing.T) primitive.ObjectID {
	t.Helper()
	return primitive.NewObjectID()
}

// Compile-time checks that the fakes satisfy the repository interfaces
var (
	_ repositories.AccountRepository    = (*fakeAccountRepo)(nil)
	_ repositories.CreditRepository     = (*fakeCreditRepo)(nil)
	_ repositories.PointPriceRepository = (*fakePointPriceRepo)(nil)
	_ repositories.CartRepository       = (*fakeCartRepo)(nil)
	_ repositories.SalesOrderRepository = (*fakeSalesOrderRepo)(nil)
	_ repositories.PointGrantRepository = (*fakePointGrantRepo)(nil)
	_ TransactionRunner                 = (*fakeTxnRunner)(nil)
)
