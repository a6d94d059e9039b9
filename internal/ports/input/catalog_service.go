package input

import "storefront/internal/domain"

// CatalogService interface - Input port (use case)
// Defines what the application can do with products
type CatalogService interface {
	CreateProduct(request domain.ProductRequest) (*domain.ProductResponse, error)
	GetProduct(id string) (*domain.ProductResponse, error)
	GetProducts(condition domain.QueryProductRequest) (*domain.ProductListResponse, error)
}
