package output

import "storefront/internal/domain"

// ProductRepository interface - Output port
// Defines what the application needs from catalog persistence
type ProductRepository interface {
	CreateProduct(request domain.ProductRequest) (*domain.ProductResponse, error)
	GetProduct(id string) (*domain.ProductResponse, error)
	GetProducts(condition domain.QueryProductRequest) (*domain.ProductListResponse, error)
}
