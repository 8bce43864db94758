package products

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/jak-krittin/minishop-backend/pkg/errors"
	"github.com/jak-krittin/minishop-backend/pkg/types"
)

func newTestService(t *testing.T) (Service, *Repository) {
	t.Helper()

	repo := NewRepository(setupProductsTestDB(t))
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func sampleInput(name string) ProductInput {
	return ProductInput{
		Name:        name,
		Description: "desc",
		Barcode:     "bar-" + name,
		Stock:       3,
		Price:       decimal.NewFromFloat(12.50),
		CategoryID:  1,
		UserID:      1,
		StatusID:    1,
	}
}

func TestServiceCreateAndGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, sampleInput("widget"))
	require.NoError(t, err)
	assert.Equal(t, types.StatusOK, created.Status)
	assert.Equal(t, "Product created successfully", created.Message)

	dto, ok := created.Product.(*ProductDTO)
	require.True(t, ok)
	require.NotZero(t, dto.ID)

	loaded, err := svc.GetProduct(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, "widget", loaded.Name)
	assert.True(t, loaded.Price.Equal(decimal.NewFromFloat(12.50)))
}

func TestServiceGetMissingReturnsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetProduct(context.Background(), 404)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Equal(t, "product not found", typed.Message())
}

func TestServiceUpdateWithoutImageKeepsStoredFilename(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	withImage := sampleInput("cam")
	image := "cam.png"
	withImage.Image = &image
	created, err := svc.CreateProduct(ctx, withImage)
	require.NoError(t, err)
	id := created.Product.(*ProductDTO).ID

	updated, err := svc.UpdateProduct(ctx, id, sampleInput("cam-v2"))
	require.NoError(t, err)
	assert.Equal(t, "Product updated successfully", updated.Message)

	dto := updated.Product.(*ProductDTO)
	assert.Equal(t, "cam-v2", dto.Name)
	require.NotNil(t, dto.Image)
	assert.Equal(t, "cam.png", *dto.Image)
}

func TestServiceUpdateWithImageOverwrites(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, sampleInput("lens"))
	require.NoError(t, err)
	id := created.Product.(*ProductDTO).ID

	input := sampleInput("lens")
	image := "lens-new.png"
	input.Image = &image

	updated, err := svc.UpdateProduct(ctx, id, input)
	require.NoError(t, err)

	dto := updated.Product.(*ProductDTO)
	require.NotNil(t, dto.Image)
	assert.Equal(t, "lens-new.png", *dto.Image)
}

func TestServiceDeleteMissingStillSucceeds(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.DeleteProduct(context.Background(), 12345)
	require.NoError(t, err)
	assert.Equal(t, "Product deleted successfully", result.Message)
	assert.Equal(t, DeletedProduct{ID: 12345}, result.Product)
}

func TestServiceListOrdering(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, sampleInput("one"))
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, sampleInput("two"))
	require.NoError(t, err)

	rows, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "two", rows[0].Name)
	assert.Equal(t, "one", rows[1].Name)
}
