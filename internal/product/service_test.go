package product_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tajerhq/tajer/internal/money"
	"github.com/tajerhq/tajer/internal/product"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    product.CreateParams
		setupMock func(m *product.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "valid product",
			params: product.CreateParams{
				Name:  "Sugar 1kg",
				Price: 1000,
				Stock: 50,
			},
			setupMock: func(m *product.MockRepository) {
				m.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *product.Product) error {
						p.ID = uuid.New()
						p.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:    "missing name rejected",
			params:  product.CreateParams{Price: 1000, Stock: 1},
			wantErr: product.ErrMissingName,
		},
		{
			name:    "negative price rejected",
			params:  product.CreateParams{Name: "Sugar", Price: -1, Stock: 1},
			wantErr: product.ErrNegativePrice,
		},
		{
			name:    "negative stock rejected",
			params:  product.CreateParams{Name: "Sugar", Price: 1000, Stock: -1},
			wantErr: product.ErrNegativeStock,
		},
		{
			name: "zero price and stock allowed",
			params: product.CreateParams{
				Name: "Sample",
			},
			setupMock: func(m *product.MockRepository) {
				m.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := product.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := product.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.params.Name, got.Name)
		})
	}
}

func TestService_Update_RevalidatesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	existing := &product.Product{ID: id, Name: "Sugar 1kg", Price: 1000, Stock: 50}

	repo := product.NewMockRepository(ctrl)
	repo.EXPECT().GetProduct(gomock.Any(), id).Return(existing, nil)

	svc := product.NewService(repo)

	badPrice := money.Cents(-500)
	_, err := svc.Update(context.Background(), id, product.UpdateParams{Price: &badPrice})
	assert.ErrorIs(t, err, product.ErrNegativePrice)
}

func TestService_ImportBatch_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := product.NewMockRepository(ctrl)
	itx := product.NewMockImportTx(ctrl)
	svc := product.NewService(repo)

	params := []product.CreateParams{
		{Name: "Sugar 1kg", Price: 1000, Stock: 50},
		{Name: "Tea 250g", Price: 550, Stock: 20},
	}
	names := []string{"Sugar 1kg", "Tea 250g"}

	repo.EXPECT().BeginImport(gomock.Any(), names).Return(itx, nil)
	itx.EXPECT().FindExisting(gomock.Any(), names).Return(nil, nil)
	itx.EXPECT().CreateProducts(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, result.Imported, 2)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_ImportBatch_WithConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := product.NewMockRepository(ctrl)
	itx := product.NewMockImportTx(ctrl)
	svc := product.NewService(repo)

	params := []product.CreateParams{
		{Name: "Sugar 1kg", Price: 1000, Stock: 50},
		{Name: "Tea 250g", Price: 550, Stock: 20},
	}

	existing := &product.Product{ID: uuid.New(), Name: "sugar 1KG", Price: 900, Stock: 10}

	repo.EXPECT().BeginImport(gomock.Any(), gomock.Any()).Return(itx, nil)
	itx.EXPECT().FindExisting(gomock.Any(), gomock.Any()).Return([]*product.Product{existing}, nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	// Name matching is case-insensitive.
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, params[0], result.Conflicts[0].Incoming)
	assert.Equal(t, existing, result.Conflicts[0].Existing)
	require.Len(t, result.New, 1)
	assert.Equal(t, params[1], result.New[0])
}

func TestService_ImportBatch_RejectsInvalidRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := product.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	_, err := svc.ImportBatch(context.Background(), []product.CreateParams{
		{Name: "Sugar", Price: -1, Stock: 1},
	})
	assert.ErrorIs(t, err, product.ErrNegativePrice)
}

func TestService_ImportBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := product.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	result, err := svc.ImportBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := product.NewMockRepository(ctrl)
	itx := product.NewMockImportTx(ctrl)
	svc := product.NewService(repo)

	params := []product.CreateParams{
		{Name: "Sugar 1kg", Price: 1000, Stock: 50},
	}

	repo.EXPECT().BeginImport(gomock.Any(), gomock.Any()).Return(itx, nil)
	itx.EXPECT().CreateProducts(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	products, err := svc.CreateBatch(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, money.Cents(1000), products[0].Price)
}
