package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/errors"
	"github.com/avGenie/go-order-admin/internal/app/usecase/images"
	"github.com/avGenie/go-order-admin/internal/app/validator"
	"go.uber.org/zap"
)

type ProductStorage interface {
	CreateProduct(ctx context.Context, product entity.Product) (entity.Product, error)
	GetProducts(ctx context.Context, ownerID entity.UserID, filter entity.ProductFilter) (entity.Products, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, image images.Image) (string, error)
}

type Catalog struct {
	storage  ProductStorage
	uploader ImageUploader
	now      func() time.Time
}

// New creates a catalog. A nil uploader disables data uri images.
func New(storage ProductStorage, uploader ImageUploader) *Catalog {
	return &Catalog{
		storage:  storage,
		uploader: uploader,
		now:      time.Now,
	}
}

func (c *Catalog) Create(ctx context.Context, ownerID entity.UserID, input entity.ProductInput) (entity.Product, error) {
	err := validator.Product(input)
	if err != nil {
		return entity.Product{}, err
	}

	imageURLs, err := c.resolveImages(ctx, input.Images)
	if err != nil {
		return entity.Product{}, err
	}

	now := c.now().UTC()
	product, err := c.storage.CreateProduct(ctx, entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		Price:       input.Price.Decimal,
		Images:      imageURLs,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return entity.Product{}, err
	}

	zap.L().Debug("product created", zap.String("product_id", product.ID.String()), zap.Int("images", len(imageURLs)))

	return product, nil
}

func (c *Catalog) ListByOwner(ctx context.Context, ownerID entity.UserID) (entity.Products, error) {
	return c.storage.GetProducts(ctx, ownerID, entity.ProductFilter{})
}

func (c *Catalog) ListByCategory(ctx context.Context, ownerID entity.UserID, category string) (entity.Products, error) {
	return c.storage.GetProducts(ctx, ownerID, entity.ProductFilter{Category: category})
}

// resolveImages keeps remote URLs as is and uploads data uri payloads.
func (c *Catalog) resolveImages(ctx context.Context, rawImages []string) ([]string, error) {
	urls := make([]string, 0, len(rawImages))
	for _, raw := range rawImages {
		if images.IsRemoteURL(raw) {
			urls = append(urls, raw)
			continue
		}

		if !images.IsDataURI(raw) {
			return nil, fmt.Errorf("%w: image must be an http(s) url or a data uri", usecase.ErrValidation)
		}

		if c.uploader == nil {
			return nil, usecase.ErrImageHostingDisabled
		}

		image, err := images.ParseDataURI(raw)
		if err != nil {
			return nil, err
		}

		url, err := c.uploader.Upload(ctx, image)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}
