package products

import (
	"context"
	"net/http"
	"strings"
	"time"

	httputils "github.com/avGenie/go-order-admin/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-admin/internal/app/converter"
	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=products.go -destination=mock/products.go -package=mock

const categoryParam = "category"

type ProductCatalog interface {
	Create(ctx context.Context, ownerID entity.UserID, input entity.ProductInput) (entity.Product, error)
	ListByOwner(ctx context.Context, ownerID entity.UserID) (entity.Products, error)
	ListByCategory(ctx context.Context, ownerID entity.UserID, category string) (entity.Products, error)
}

type Product struct {
	catalog ProductCatalog
	timeout time.Duration
}

func New(catalog ProductCatalog, timeout time.Duration) Product {
	if timeout <= 0 {
		timeout = httputils.RequestTimeout
	}

	return Product{
		catalog: catalog,
		timeout: timeout,
	}
}

func (p *Product) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while creating product", zap.Error(err))
			return
		}

		var request model.CreateProductRequest
		err = httputils.DecodeJSON(w, r, &request)
		if err != nil {
			zap.L().Info("error while decoding create product request", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), p.timeout)
		defer cancel()

		product, err := p.catalog.Create(ctx, userID, converter.ConvertCreateProductRequestToInput(request))
		if err != nil {
			httputils.WriteUsecaseError(w, err, "error while creating product")
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertProductToResponse(product))
	}
}

// GetProducts lists the owner's products, narrowed to one category when the
// category query parameter is set.
func (p *Product) GetProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while getting products", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), p.timeout)
		defer cancel()

		var products entity.Products
		category := strings.TrimSpace(r.URL.Query().Get(categoryParam))
		if len(category) != 0 {
			products, err = p.catalog.ListByCategory(ctx, userID, category)
		} else {
			products, err = p.catalog.ListByOwner(ctx, userID)
		}
		if err != nil {
			httputils.WriteUsecaseError(w, err, "error while getting products")
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertProductsToResponses(products))
	}
}
