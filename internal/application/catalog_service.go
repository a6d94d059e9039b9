package application

import (
	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const (
	defaultPage    = 1
	defaultPerPage = 100
	defaultOrderBy = "id"
)

// sortableColumns lists the product columns a listing may be ordered by
var sortableColumns = map[string]bool{
	"id":           true,
	"name":         true,
	"brand":        true,
	"price":        true,
	"rating":       true,
	"review_count": true,
	"created_at":   true,
}

// CatalogService struct - Application service implementing catalog use cases
type CatalogService struct {
	repo output.ProductRepository
}

// NewCatalogService func - Creates new catalog service
func NewCatalogService(repo output.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// CreateProduct func - Use case: Add a product to the catalog
func (s *CatalogService) CreateProduct(request domain.ProductRequest) (*domain.ProductResponse, error) {
	if request.Price != nil && request.Price.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}
	result, err := s.repo.CreateProduct(request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}

// GetProduct func - Use case: Get a single product
func (s *CatalogService) GetProduct(id string) (*domain.ProductResponse, error) {
	return s.repo.GetProduct(id)
}

// GetProducts func - Use case: List products with pagination and filtering
func (s *CatalogService) GetProducts(condition domain.QueryProductRequest) (*domain.ProductListResponse, error) {
	var (
		page    int
		perPage int
		offset  int
	)
	if condition.Page != nil && *condition.Page > 0 {
		page = *condition.Page
	} else {
		page = defaultPage
	}
	condition.Page = &page
	if condition.Limit != nil && *condition.Limit > 0 {
		perPage = *condition.Limit
	} else {
		perPage = defaultPerPage
	}
	condition.Limit = &perPage
	offset = (page - 1) * perPage
	condition.Pagination = &domain.Pagination{
		Limit:  perPage,
		Offset: offset,
	}

	asc := true
	if condition.Asc != nil {
		asc = *condition.Asc
	}
	orderBy := defaultOrderBy
	if condition.OrderBy != nil && sortableColumns[*condition.OrderBy] {
		orderBy = *condition.OrderBy
	} else if condition.OrderBy != nil {
		logrus.Warnf("Ignoring unsupported order_by %q", *condition.OrderBy)
	}
	condition.SortMethod = &domain.SortMethod{
		Asc:     asc,
		OrderBy: orderBy,
	}
	return s.repo.GetProducts(condition)
}
