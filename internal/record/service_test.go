package record

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
	"github.com/norbert15/CostTracker2Backend/internal/category"
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

// newTestService pins the clock to June 2024 so the year range checks are
// deterministic.
func newTestService(t *testing.T) (*service, *MockRepository, *category.MockRepository) {
	t.Helper()
	categories := category.NewMockRepository()
	categories.Seed(category.Category{ID: 1, UserID: category.DefaultOwnerID, Name: "Food", Color: "#ff0000", Icon: "food", Type: category.TypeExpense})
	categories.Seed(category.Category{ID: 2, UserID: category.DefaultOwnerID, Name: "Salary", Color: "#00ff00", Icon: "wallet", Type: category.TypeIncome})

	repo := NewMockRepository(categories)
	resolver := identity.NewResolver(stubDirectory{"norbert15": 7})

	svc := NewService(repo, categories, resolver).(*service)
	svc.now = func() time.Time {
		return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc, repo, categories
}

func activeCtx(username string) context.Context {
	return identity.WithSubject(context.Background(), username)
}

func TestCreate_Success(t *testing.T) {
	svc, repo, _ := newTestService(t)

	created, err := svc.Create(activeCtx("norbert15"), &CreateRequest{
		CategoryID: 1,
		Value:      500,
		Comment:    "groceries",
		Month:      "2024-05",
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC), created.CreatedAt)

	stored, err := repo.FindByOwnerAndMonth(7, "2024-05")
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCreate_ValueZero(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(activeCtx("norbert15"), &CreateRequest{
		CategoryID: 1,
		Value:      0,
		Month:      "2024-05",
	})

	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "Value cannot be 0!")
}

func TestCreate_ValueBoundary(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := activeCtx("norbert15")

	_, err := svc.Create(ctx, &CreateRequest{CategoryID: 1, Value: maxAbsValue, Month: "2024-05"})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, &CreateRequest{CategoryID: 1, Value: -maxAbsValue, Month: "2024-05"})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, &CreateRequest{CategoryID: 1, Value: maxAbsValue + 1, Month: "2024-05"})
	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "The value must be between -1000000000 and 1000000000!")
}

func TestCreate_MonthNotACalendarMonth(t *testing.T) {
	svc, _, _ := newTestService(t)

	// "2024-13" passes the syntax rule but is not a real month.
	_, err := svc.Create(activeCtx("norbert15"), &CreateRequest{
		CategoryID: 1,
		Value:      100,
		Month:      "2024-13",
	})

	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.NotContains(t, verr.Fields, "Month must match the yyyy-MM format!")
	assert.Contains(t, verr.Fields, "Month must be a valid calendar month!")
}

func TestCreate_MonthNotZeroPadded(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(activeCtx("norbert15"), &CreateRequest{
		CategoryID: 1,
		Value:      100,
		Month:      "2024-2",
	})

	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "Month must match the yyyy-MM format!")
}

func TestCreate_UnknownCategory(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(activeCtx("norbert15"), &CreateRequest{
		CategoryID: 999,
		Value:      100,
		Month:      "2024-05",
	})

	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "Category with id 999 does not exist!")
}

func TestCreate_AllViolationsReportedTogether(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(activeCtx("norbert15"), &CreateRequest{
		CategoryID: 999,
		Value:      0,
		Month:      "bogus",
	})

	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.Len(t, verr.Fields, 4)
}

func TestCreate_NoIdentity(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), &CreateRequest{CategoryID: 1, Value: 100, Month: "2024-05"})
	assert.ErrorIs(t, err, apperrors.ErrNoActiveUser)
}

func TestListByMonthAndType_GroupsAndSums(t *testing.T) {
	svc, _, categories := newTestService(t)
	categories.Seed(category.Category{ID: 10, UserID: 7, Name: "Hobby", Color: "#333333", Icon: "dice", Type: category.TypeExpense})
	ctx := activeCtx("norbert15")

	mustCreate := func(categoryID, value int64, month string) {
		t.Helper()
		_, err := svc.Create(ctx, &CreateRequest{CategoryID: categoryID, Value: value, Month: month})
		assert.NoError(t, err)
	}
	mustCreate(1, 500, "2024-05")
	mustCreate(1, 250, "2024-05")
	mustCreate(10, 100, "2024-05")
	mustCreate(1, 999, "2024-04") // other month, must not appear
	mustCreate(2, 3000, "2024-05") // income, must not appear for expense listing

	groups, err := svc.ListByMonthAndType(ctx, "2024-05", category.TypeExpense)
	assert.NoError(t, err)
	assert.Len(t, groups, 2)

	sums := map[string]int64{}
	for _, g := range groups {
		sums[g.Category.Name] = g.Sum
	}
	assert.Equal(t, int64(750), sums["Food"])
	assert.Equal(t, int64(100), sums["Hobby"])
}

func TestListByMonthAndType_EmptyCategoriesIncluded(t *testing.T) {
	svc, _, _ := newTestService(t)

	groups, err := svc.ListByMonthAndType(activeCtx("norbert15"), "2024-05", category.TypeExpense)
	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "Food", groups[0].Category.Name)
	assert.Empty(t, groups[0].Records)
	assert.Zero(t, groups[0].Sum)
}

func TestListByMonthAndType_InvalidParameters(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ListByMonthAndType(activeCtx("norbert15"), "2024-13", 3)

	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "Month must be a valid calendar month!")
	assert.Contains(t, verr.Fields, "The category type must be 1 or 2!")
}

func TestListByYearAndType_SumsPerMonth(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := activeCtx("norbert15")

	mustCreate := func(categoryID, value int64, month string) {
		t.Helper()
		_, err := svc.Create(ctx, &CreateRequest{CategoryID: categoryID, Value: value, Month: month})
		assert.NoError(t, err)
	}
	mustCreate(1, 500, "2024-05")
	mustCreate(1, 250, "2024-05")
	mustCreate(1, 100, "2024-04")
	mustCreate(2, 3000, "2024-05") // income, excluded
	mustCreate(1, 999, "2023-05")  // other year, excluded

	totals, err := svc.ListByYearAndType(ctx, 2024, category.TypeExpense)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []MonthlyTotal{
		{Month: "2024-04", Total: 100},
		{Month: "2024-05", Total: 750},
	}, totals)
}

func TestListByYearAndType_YearRange(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := activeCtx("norbert15")

	_, err := svc.ListByYearAndType(ctx, 2019, category.TypeExpense)
	verr, ok := apperrors.AsValidation(err)
	assert.True(t, ok)
	assert.Contains(t, verr.Fields, "The year must be between 2020 and 2024!")

	_, err = svc.ListByYearAndType(ctx, 2025, category.TypeExpense)
	_, ok = apperrors.AsValidation(err)
	assert.True(t, ok)

	_, err = svc.ListByYearAndType(ctx, 2020, category.TypeExpense)
	assert.NoError(t, err)

	_, err = svc.ListByYearAndType(ctx, 2024, category.TypeExpense)
	assert.NoError(t, err)
}
