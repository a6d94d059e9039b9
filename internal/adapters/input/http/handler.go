package http

import (
	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	catalog   input.CatalogService
	carts     input.CartService
	orders    input.OrderService
	db        *gorm.DB
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(catalog input.CatalogService, carts input.CartService, orders input.OrderService, db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{
		catalog:   catalog,
		carts:     carts,
		orders:    orders,
		db:        db,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// CreateProduct godoc
// @Summary Create product
// @Description Add a product to the catalog
// @Tags PRODUCT
// @Accept application/json
// @Success 201 {object} map[string]interface{}
// @Router /v1/api/products	[post]
// @Produce json
// @param CreateProduct body ProductRequest true "CreateProduct"
func (hdl *HTTPHandler) CreateProduct(c *fiber.Ctx) error {
	var request ProductRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return validationFailed(c, err)
	}
	// Convert HTTP request to domain request
	domainReq := domain.ProductRequest{
		ID:               request.ID,
		Name:             request.Name,
		Brand:            request.Brand,
		Description:      request.Description,
		Price:            request.Price,
		OriginalPrice:    request.OriginalPrice,
		Images:           request.Images,
		Colors:           request.Colors,
		Sizes:            request.Sizes,
		Rating:           request.Rating,
		ReviewCount:      request.ReviewCount,
		IsNew:            request.IsNew,
		IsSale:           request.IsSale,
		IsLimitedEdition: request.IsLimitedEdition,
	}
	response, err := hdl.catalog.CreateProduct(domainReq)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Created, Data: response})
}

// GetProduct godoc
// @Summary Get product
// @Description Get a single product
// @Tags PRODUCT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/products/{id}	[get]
// @Produce json
// @param id path string true "product id"
func (hdl *HTTPHandler) GetProduct(c *fiber.Ctx) error {
	response, err := hdl.catalog.GetProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// GetProducts godoc
// @Summary List products
// @Description List products with pagination and filtering
// @Tags PRODUCT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/products	[get]
// @Produce json
// @param page query int false "page"
// @param limit query int false "limit"
// @param order_by query string false "order_by"
// @param asc query bool false "asc"
// @param name query string false "name"
// @param brand query string false "brand"
func (hdl *HTTPHandler) GetProducts(c *fiber.Ctx) error {
	condition := QueryProductRequest{}
	if err := c.QueryParser(&condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(condition); err != nil {
		return validationFailed(c, err)
	}
	// Convert HTTP query request to domain query request
	domainCondition := domain.QueryProductRequest{
		Name:    condition.Name,
		Brand:   condition.Brand,
		Limit:   condition.Limit,
		Page:    condition.Page,
		OrderBy: condition.OrderBy,
		Asc:     condition.Asc,
	}
	result, err := hdl.catalog.GetProducts(domainCondition)
	if err != nil {
		return respondError(c, err)
	}
	data := result.Products
	if data == nil {
		data = make([]domain.ProductResponse, 0)
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status:      Success,
		Data:        data,
		CurrentPage: result.CurrentPage,
		PerPage:     result.PerPage,
		TotalItem:   result.TotalItem,
	})
}

func validationFailed(c *fiber.Ctx, err error) error {
	msg := ResponseBody{
		Status: BadRequest,
	}
	msg.Status.Message = []string{
		err.Error(),
	}
	return c.Status(fiber.StatusBadRequest).JSON(msg)
}

func respondError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status.Code >= fiber.StatusInternalServerError {
		logrus.Errorln(err)
	}
	return c.Status(status.Code).JSON(ResponseBody{Status: status})
}
