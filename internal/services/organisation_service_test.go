package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openunited/commerce-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeOrganisationRepo struct {
	organisations map[primitive.ObjectID]*models.Organisation
}

func newFakeOrganisationRepo() *fakeOrganisationRepo {
	return &fakeOrganisationRepo{organisations: make(map[primitive.ObjectID]*models.Organisation)}
}

func (f *fakeOrganisationRepo) Create(ctx context.Context, organisation *models.Organisation) error {
	organisation.ID = primitive.NewObjectID()
	organisation.CreatedAt = time.Now()
	stored := *organisation
	f.organisations[organisation.ID] = &stored
	return nil
}

func (f *fakeOrganisationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Organisation, error) {
	organisation, ok := f.organisations[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	found := *organisation
	return &found, nil
}

func (f *fakeOrganisationRepo) FindByUsername(ctx context.Context, username string) (*models.Organisation, error) {
	for _, organisation := range f.organisations {
		if organisation.Username == username {
			found := *organisation
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeOrganisationRepo) Update(ctx context.Context, organisation *models.Organisation) error {
	if _, ok := f.organisations[organisation.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	stored := *organisation
	f.organisations[organisation.ID] = &stored
	return nil
}

func (f *fakeOrganisationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.organisations[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.organisations, id)
	return nil
}

func (f *fakeOrganisationRepo) FindAll(ctx context.Context, page, limit int) ([]*models.Organisation, error) {
	out := make([]*models.Organisation, 0, len(f.organisations))
	for _, organisation := range f.organisations {
		found := *organisation
		out = append(out, &found)
	}
	return out, nil
}

func TestCreateAndRenameOrganisation(t *testing.T) {
	repo := newFakeOrganisationRepo()
	service := NewOrganisationService(repo)

	organisation, err := service.CreateOrganisation(context.Background(), "acme", "Acme Corp")
	if err != nil {
		t.Fatalf("CreateOrganisation: %v", err)
	}
	if organisation.ID.IsZero() {
		t.Fatal("CreateOrganisation returned organisation without an ID")
	}

	renamed, err := service.UpdateOrganisation(context.Background(), organisation.ID, "Acme Holdings")
	if err != nil {
		t.Fatalf("UpdateOrganisation: %v", err)
	}
	if renamed.Name != "Acme Holdings" {
		t.Errorf("Name = %q, want %q", renamed.Name, "Acme Holdings")
	}
	if renamed.Username != "acme" {
		t.Errorf("Username = %q, want unchanged %q", renamed.Username, "acme")
	}

	stored, err := repo.FindByID(context.Background(), organisation.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.Name != "Acme Holdings" {
		t.Errorf("persisted Name = %q, want %q", stored.Name, "Acme Holdings")
	}
}

func TestUpdateOrganisationMissing(t *testing.T) {
	service := NewOrganisationService(newFakeOrganisationRepo())

	_, err := service.UpdateOrganisation(context.Background(), primitive.NewObjectID(), "Whatever")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateOrganisation error = %v, want ErrNotFound", err)
	}
}

func TestDeleteOrganisationReportsMissing(t *testing.T) {
	repo := newFakeOrganisationRepo()
	service := NewOrganisationService(repo)

	organisation, err := service.CreateOrganisation(context.Background(), "acme", "Acme Corp")
	if err != nil {
		t.Fatalf("CreateOrganisation: %v", err)
	}

	if ok := service.DeleteOrganisation(context.Background(), organisation.ID); !ok {
		t.Error("DeleteOrganisation = false for an existing organisation, want true")
	}
	if ok := service.DeleteOrganisation(context.Background(), organisation.ID); ok {
		t.Error("DeleteOrganisation = true for a deleted organisation, want false")
	}
}
