package dish

import (
	"context"
	"testing"

	"familykitchen/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockDishRepo struct {
	mock.Mock
}

func (m *mockDishRepo) List(ctx context.Context) ([]domain.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dish), args.Error(1)
}

func (m *mockDishRepo) GetByID(ctx context.Context, id int64) (*domain.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *mockDishRepo) Create(ctx context.Context, d *domain.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDishRepo) Update(ctx context.Context, id int64, ch domain.DishChanges) (*domain.Dish, error) {
	args := m.Called(ctx, id, ch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *mockDishRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func boolPtr(b bool) *bool         { return &b }
func strPtr(s string) *string      { return &s }
func listPtr(l []string) *[]string { return &l }

func TestCreate_AppliesDefaultsAndCleansIngredients(t *testing.T) {
	repo := new(mockDishRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(d *domain.Dish) bool {
		return d.Name == "Mapo Tofu" &&
			d.Image == domain.DefaultDishImage &&
			d.Available &&
			d.CreatedBy == 1 &&
			assert.ObjectsAreEqual([]string{"Tofu", "Chili"}, d.Ingredients)
	})).Return(nil)

	d, err := svc.Create(ctx, 1, CreateDishRequest{
		Name:        "  Mapo Tofu ",
		Category:    "vegetable",
		Ingredients: []string{" Tofu ", "", "  ", "Chili"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryVegetable, d.Category)
	repo.AssertExpectations(t)
}

func TestCreate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		req  CreateDishRequest
		want error
	}{
		{"blank name", CreateDishRequest{Name: " ", Category: "meat", Ingredients: []string{"Pork"}}, ErrInvalidName},
		{"bad category", CreateDishRequest{Name: "Soup", Category: "soup", Ingredients: []string{"Water"}}, ErrInvalidCategory},
		{"no ingredients", CreateDishRequest{Name: "Air", Category: "drink", Ingredients: []string{}}, ErrEmptyIngredients},
		{"blank ingredients", CreateDishRequest{Name: "Air", Category: "drink", Ingredients: []string{" ", ""}}, ErrEmptyIngredients},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockDishRepo)
			_, err := NewService(repo).Create(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_RespectsExplicitAvailability(t *testing.T) {
	repo := new(mockDishRepo)
	ctx := context.Background()
	repo.On("Create", ctx, mock.Anything).Return(nil)

	d, err := NewService(repo).Create(ctx, 1, CreateDishRequest{
		Name:        "Hand-pulled Noodles",
		Category:    "staple",
		Ingredients: []string{"Flour"},
		Available:   boolPtr(false),
		Image:       "/uploads/noodles.png",
	})
	require.NoError(t, err)
	assert.False(t, d.Available)
	assert.Equal(t, "/uploads/noodles.png", d.Image)
}

func TestUpdate_OnlyProvidedFields(t *testing.T) {
	repo := new(mockDishRepo)
	svc := NewService(repo)
	ctx := context.Background()

	want := domain.DishChanges{Available: boolPtr(false), Name: strPtr("Rice")}
	repo.On("Update", ctx, int64(3), want).Return(&domain.Dish{ID: 3, Name: "Rice"}, nil)

	d, err := svc.Update(ctx, 3, UpdateDishRequest{Available: boolPtr(false), Name: strPtr(" Rice ")})
	require.NoError(t, err)
	assert.Equal(t, "Rice", d.Name)
	repo.AssertExpectations(t)
}

func TestUpdate_ValidatesProvidedFields(t *testing.T) {
	repo := new(mockDishRepo)
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Update(ctx, 1, UpdateDishRequest{Ingredients: listPtr([]string{" "})})
	assert.ErrorIs(t, err, ErrEmptyIngredients)

	_, err = svc.Update(ctx, 1, UpdateDishRequest{Category: strPtr("dessert")})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.Update(ctx, 1, UpdateDishRequest{Name: strPtr("")})
	assert.ErrorIs(t, err, ErrInvalidName)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotFoundMapping(t *testing.T) {
	repo := new(mockDishRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Delete", ctx, int64(404)).Return(gorm.ErrRecordNotFound)
	repo.On("Update", ctx, int64(404), mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(ctx, 404)
	assert.ErrorIs(t, err, ErrDishNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 404), ErrDishNotFound)
	_, err = svc.Update(ctx, 404, UpdateDishRequest{Selected: boolPtr(true)})
	assert.ErrorIs(t, err, ErrDishNotFound)
}
