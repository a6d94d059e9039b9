package postgres

import (
	"errors"

	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ output.ProductRepository = (*ProductRepository)(nil)

// ProductRepository struct - Secondary/Driven adapter for the PostgreSQL catalog
type ProductRepository struct {
	dbGorm *gorm.DB
}

// NewProductRepository func - Creates new PostgreSQL product repository
func NewProductRepository(dbGorm *gorm.DB) *ProductRepository {
	return &ProductRepository{
		dbGorm: dbGorm,
	}
}

// CreateProduct func - Creates a new product in the database
func (p *ProductRepository) CreateProduct(request domain.ProductRequest) (*domain.ProductResponse, error) {
	product := domain.Product{
		ID:               request.ID,
		Name:             request.Name,
		Brand:            request.Brand,
		Description:      request.Description,
		Price:            request.Price,
		OriginalPrice:    request.OriginalPrice,
		Images:           domain.JoinList(request.Images),
		Colors:           domain.JoinList(request.Colors),
		Sizes:            domain.JoinList(request.Sizes),
		Rating:           request.Rating,
		ReviewCount:      request.ReviewCount,
		IsNew:            request.IsNew,
		IsSale:           request.IsSale,
		IsLimitedEdition: request.IsLimitedEdition,
	}
	if err := p.dbGorm.Create(&product).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	response := toProductResponse(product)
	return &response, nil
}

// GetProduct func - Retrieves a single product by id
func (p *ProductRepository) GetProduct(id string) (*domain.ProductResponse, error) {
	var product domain.Product
	err := p.dbGorm.Where(p.condition(domain.QueryProductRequest{ID: &id})).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	response := toProductResponse(product)
	return &response, nil
}

func (p *ProductRepository) condition(condition domain.QueryProductRequest) map[string]interface{} {
	expression := make(map[string]interface{})
	if condition.ID != nil {
		expression["id"] = *condition.ID
	}
	return expression
}

// GetProducts func - Retrieves products from the database with filtering and pagination
func (p *ProductRepository) GetProducts(condition domain.QueryProductRequest) (*domain.ProductListResponse, error) {
	var products []domain.Product

	tx := p.dbGorm.Model(&domain.Product{}).Where(p.condition(condition))
	// Query values arrive already decoded
	if condition.Name != nil {
		tx = tx.Where("name ILIKE ?", "%"+*condition.Name+"%")
	}
	if condition.Brand != nil {
		tx = tx.Where("brand ILIKE ?", *condition.Brand)
	}

	var totalItem int64
	if err := tx.Session(&gorm.Session{}).Count(&totalItem).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	if condition.ID == nil && condition.SortMethod != nil && condition.Pagination != nil {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: condition.SortMethod.OrderBy},
			Desc:   !condition.SortMethod.Asc,
		})
		tx = tx.Limit(condition.Pagination.Limit).Offset(condition.Pagination.Offset)
	}

	if err := tx.Find(&products).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	result := domain.ProductListResponse{
		Products:    make([]domain.ProductResponse, 0, len(products)),
		CurrentPage: condition.Page,
		TotalItem:   &totalItem,
	}
	if condition.Pagination != nil {
		result.PerPage = &condition.Pagination.Limit
	}
	for _, product := range products {
		result.Products = append(result.Products, toProductResponse(product))
	}
	return &result, nil
}

func toProductResponse(product domain.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:               product.ID,
		Name:             product.Name,
		Brand:            product.Brand,
		Description:      product.Description,
		Price:            product.Price,
		OriginalPrice:    product.OriginalPrice,
		Images:           domain.SplitList(product.Images),
		Colors:           domain.SplitList(product.Colors),
		Sizes:            domain.SplitList(product.Sizes),
		Rating:           product.Rating,
		ReviewCount:      product.ReviewCount,
		IsNew:            product.IsNew,
		IsSale:           product.IsSale,
		IsLimitedEdition: product.IsLimitedEdition,
		CreatedAt:        product.CreatedAt,
		UpdatedAt:        product.UpdatedAt,
	}
}
