package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
	"github.com/norbert15/CostTracker2Backend/internal/identity"
)

type stubDirectory map[string]int64

func (d stubDirectory) FindIdentityByUsername(username string) (*identity.Principal, error) {
	id, ok := d[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &identity.Principal{ID: id, Username: username}, nil
}

func newTestService(t *testing.T) (Service, *MockRepository) {
	t.Helper()
	repo := NewMockRepository()
	repo.Seed(Category{ID: 1, UserID: DefaultOwnerID, Name: "Food", Color: "#ff0000", Icon: "food", Type: TypeExpense})
	repo.Seed(Category{ID: 2, UserID: DefaultOwnerID, Name: "Salary", Color: "#00ff00", Icon: "wallet", Type: TypeIncome})
	resolver := identity.NewResolver(stubDirectory{"norbert15": 7, "janedoe": 8})
	return NewService(repo, resolver), repo
}

func activeCtx(username string) context.Context {
	return identity.WithSubject(context.Background(), username)
}

func TestCreate_Success(t *testing.T) {
	service, repo := newTestService(t)

	created, err := service.Create(activeCtx("norbert15"), &Request{
		Name:  "Travel",
		Color: "#0000ff",
		Icon:  "plane",
		Type:  TypeExpense,
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(7), created.UserID)

	stored, err := repo.FindByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Travel", stored.Name)
}

func TestCreate_TypeOutOfRange(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Create(activeCtx("norbert15"), &Request{
		Name:  "Travel",
		Color: "#0000ff",
		Icon:  "plane",
		Type:  3,
	})

	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "The category type must be 1 or 2!")
}

func TestCreate_BothTypesAccepted(t *testing.T) {
	service, _ := newTestService(t)
	ctx := activeCtx("norbert15")

	_, err := service.Create(ctx, &Request{Name: "Rent", Color: "#111111", Icon: "home", Type: TypeExpense})
	assert.NoError(t, err)

	_, err = service.Create(ctx, &Request{Name: "Bonus", Color: "#222222", Icon: "gift", Type: TypeIncome})
	assert.NoError(t, err)
}

func TestCreate_AggregatesMissingFields(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Create(activeCtx("norbert15"), &Request{})

	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.Len(t, verr.Fields, 4)
	assert.Contains(t, verr.Fields, "name is required!")
	assert.Contains(t, verr.Fields, "type is required!")
}

func TestCreate_NilRequestReturnsStaticFieldList(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Create(activeCtx("norbert15"), nil)

	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, requiredFields, verr.Fields)
}

func TestCreate_NoIdentity(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Create(context.Background(), &Request{})
	assert.ErrorIs(t, err, apperrors.ErrNoActiveUser)
}

func TestListForActiveUser_MergesDefaultsWithOwn(t *testing.T) {
	service, repo := newTestService(t)
	repo.Seed(Category{ID: 10, UserID: 7, Name: "Hobby", Color: "#333333", Icon: "dice", Type: TypeExpense})
	repo.Seed(Category{ID: 11, UserID: 8, Name: "Pets", Color: "#444444", Icon: "paw", Type: TypeExpense})

	list, err := service.ListForActiveUser(activeCtx("norbert15"))
	assert.NoError(t, err)
	assert.Len(t, list, 3)

	names := make([]string, 0, len(list))
	for _, c := range list {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"Food", "Salary", "Hobby"}, names)
}

func TestUpdate_Success(t *testing.T) {
	service, repo := newTestService(t)
	repo.Seed(Category{ID: 10, UserID: 7, Name: "Hobby", Color: "#333333", Icon: "dice", Type: TypeExpense})

	updated, err := service.Update(activeCtx("norbert15"), 10, &Request{
		Name:  "Hobbies",
		Color: "#555555",
		Icon:  "dice",
		Type:  TypeExpense,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Hobbies", updated.Name)

	stored, err := repo.FindByID(10)
	assert.NoError(t, err)
	assert.Equal(t, "#555555", stored.Color)
}

func TestUpdate_DefaultCategoryRejected(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Update(activeCtx("norbert15"), 1, &Request{
		Name:  "Groceries",
		Color: "#555555",
		Icon:  "cart",
		Type:  TypeExpense,
	})

	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "Default categories cannot be modified or deleted!")
}

func TestUpdate_OtherUsersCategoryNotFound(t *testing.T) {
	service, repo := newTestService(t)
	repo.Seed(Category{ID: 11, UserID: 8, Name: "Pets", Color: "#444444", Icon: "paw", Type: TypeExpense})

	_, err := service.Update(activeCtx("norbert15"), 11, &Request{
		Name:  "Pets!",
		Color: "#444444",
		Icon:  "paw",
		Type:  TypeExpense,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDelete_Success(t *testing.T) {
	service, repo := newTestService(t)
	repo.Seed(Category{ID: 10, UserID: 7, Name: "Hobby", Color: "#333333", Icon: "dice", Type: TypeExpense})

	err := service.Delete(activeCtx("norbert15"), 10)
	assert.NoError(t, err)

	_, err = repo.FindByID(10)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDelete_DefaultCategoryRejected(t *testing.T) {
	service, _ := newTestService(t)

	err := service.Delete(activeCtx("norbert15"), 2)

	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "Default categories cannot be modified or deleted!")
}

func TestDelete_UnknownCategory(t *testing.T) {
	service, _ := newTestService(t)

	err := service.Delete(activeCtx("norbert15"), 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
