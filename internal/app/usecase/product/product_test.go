package product

import (
	"context"
	"errors"
	"testing"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/storage/memory"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/errors"
	"github.com/avGenie/go-order-admin/internal/app/usecase/images"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID = entity.UserID("ac2a4811-4f10-487f-bde3-e39a14af7cd8")

	pngDataURI = "data:image/png;base64,iVBORw0KGgo="
)

type fakeUploader struct {
	uploaded []images.Image
	err      error
}

func (u *fakeUploader) Upload(ctx context.Context, image images.Image) (string, error) {
	if u.err != nil {
		return "", u.err
	}

	u.uploaded = append(u.uploaded, image)

	return "https://cdn.example.com/products/uploaded." + image.Extension, nil
}

func widgetInput(images ...string) entity.ProductInput {
	return entity.ProductInput{
		Name:        " Widget ",
		Category:    "tools",
		Description: "steel widget",
		Price:       decimal.NewNullDecimal(decimal.RequireFromString("9.99")),
		Images:      images,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	uploader := &fakeUploader{}
	catalog := New(memory.NewMemoryStorage(), uploader)

	product, err := catalog.Create(ctx, ownerID, widgetInput("https://example.com/widget.png", pngDataURI))
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, []string{
		"https://example.com/widget.png",
		"https://cdn.example.com/products/uploaded.png",
	}, product.Images)
	assert.Equal(t, product.CreatedAt, product.UpdatedAt)

	require.Len(t, uploader.uploaded, 1)
	assert.Equal(t, "image/png", uploader.uploaded[0].ContentType)
}

func TestCreateErrors(t *testing.T) {
	uploadErr := errors.New("bucket unavailable")

	tests := []struct {
		name     string
		uploader ImageUploader
		input    entity.ProductInput
		wantErr  error
	}{
		{
			name:     "empty name",
			uploader: &fakeUploader{},
			input:    entity.ProductInput{Category: "tools", Description: "d", Price: decimal.NewNullDecimal(decimal.NewFromInt(1))},
			wantErr:  usecase.ErrValidation,
		},
		{
			name:     "empty category",
			uploader: &fakeUploader{},
			input:    entity.ProductInput{Name: "Widget", Description: "d", Price: decimal.NewNullDecimal(decimal.NewFromInt(1))},
			wantErr:  usecase.ErrValidation,
		},
		{
			name:     "negative price",
			uploader: &fakeUploader{},
			input:    entity.ProductInput{Name: "Widget", Category: "tools", Description: "d", Price: decimal.NewNullDecimal(decimal.NewFromInt(-1))},
			wantErr:  usecase.ErrValidation,
		},
		{
			name:     "price omitted",
			uploader: &fakeUploader{},
			input:    entity.ProductInput{Name: "Widget", Category: "tools", Description: "d"},
			wantErr:  usecase.ErrValidation,
		},
		{
			name:     "description omitted",
			uploader: &fakeUploader{},
			input:    entity.ProductInput{Name: "Widget", Category: "tools", Price: decimal.NewNullDecimal(decimal.Zero)},
			wantErr:  usecase.ErrValidation,
		},
		{
			name:     "unsupported image reference",
			uploader: &fakeUploader{},
			input:    widgetInput("ftp://example.com/widget.png"),
			wantErr:  usecase.ErrValidation,
		},
		{
			name:     "data uri without image hosting",
			uploader: nil,
			input:    widgetInput(pngDataURI),
			wantErr:  usecase.ErrImageHostingDisabled,
		},
		{
			name:     "upload failure",
			uploader: &fakeUploader{err: uploadErr},
			input:    widgetInput(pngDataURI),
			wantErr:  uploadErr,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			storage := memory.NewMemoryStorage()
			catalog := New(storage, test.uploader)

			_, err := catalog.Create(context.Background(), ownerID, test.input)
			assert.ErrorIs(t, err, test.wantErr)

			products, err := catalog.ListByOwner(context.Background(), ownerID)
			require.NoError(t, err)
			assert.Empty(t, products)
		})
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	catalog := New(memory.NewMemoryStorage(), nil)

	_, err := catalog.Create(ctx, ownerID, widgetInput())
	require.NoError(t, err)
	ball, err := catalog.Create(ctx, ownerID, entity.ProductInput{
		Name:        "Ball",
		Category:    "toys",
		Description: "rubber ball",
		Price:       decimal.NewNullDecimal(decimal.NewFromInt(3)),
	})
	require.NoError(t, err)
	_, err = catalog.Create(ctx, "6f28a678-7eba-4a4e-966c-7fedc6420df7", widgetInput())
	require.NoError(t, err)

	products, err := catalog.ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = catalog.ListByCategory(ctx, ownerID, "toys")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, ball.ID, products[0].ID)
}
