package http

import (
	"context"

	"storefront/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func cartIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("cartId"))
}

// CreateCart godoc
// @Summary Create cart
// @Description Issue a new empty cart
// @Tags CART
// @Accept application/json
// @Success 201 {object} map[string]interface{}
// @Router /v1/api/cart	[post]
// @Produce json
func (hdl *HTTPHandler) CreateCart(c *fiber.Ctx) error {
	cartID, err := hdl.carts.CreateCart(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Created, Data: CreateCartResponse{CartID: cartID}})
}

// GetCart godoc
// @Summary Get cart
// @Description Get the items and totals of a cart
// @Tags CART
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/cart/{cartId}	[get]
// @Produce json
// @param cartId path string true "uuid"
func (hdl *HTTPHandler) GetCart(c *fiber.Ctx) error {
	cartID, err := cartIDParam(c)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	snapshot, err := hdl.carts.GetCart(c.UserContext(), cartID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toCartResponse(cartID, snapshot)})
}

// AddToCart godoc
// @Summary Add to cart
// @Description Add a product variant; an existing entry with the same id, color and size is merged
// @Tags CART
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/cart/{cartId}/items	[post]
// @Produce json
// @param cartId path string true "uuid"
// @param AddToCart body CartItemRequest true "AddToCart"
func (hdl *HTTPHandler) AddToCart(c *fiber.Ctx) error {
	return hdl.mutateCart(c, hdl.carts.AddToCart)
}

// UpdateQuantity godoc
// @Summary Update quantity
// @Description Set the quantity of a cart entry; zero or less removes it
// @Tags CART
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/cart/{cartId}/items	[put]
// @Produce json
// @param cartId path string true "uuid"
// @param UpdateQuantity body CartItemRequest true "UpdateQuantity"
func (hdl *HTTPHandler) UpdateQuantity(c *fiber.Ctx) error {
	return hdl.mutateCart(c, hdl.carts.UpdateQuantity)
}

// RemoveFromCart godoc
// @Summary Remove from cart
// @Description Remove the entry with the given id, color and size
// @Tags CART
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/cart/{cartId}/items	[delete]
// @Produce json
// @param cartId path string true "uuid"
// @param RemoveFromCart body CartItemRequest true "RemoveFromCart"
func (hdl *HTTPHandler) RemoveFromCart(c *fiber.Ctx) error {
	return hdl.mutateCart(c, hdl.carts.RemoveFromCart)
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove every entry of a cart
// @Tags CART
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/cart/{cartId}	[delete]
// @Produce json
// @param cartId path string true "uuid"
func (hdl *HTTPHandler) ClearCart(c *fiber.Ctx) error {
	cartID, err := cartIDParam(c)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	snapshot, err := hdl.carts.ClearCart(c.UserContext(), cartID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toCartResponse(cartID, snapshot)})
}

// GetCartSummary godoc
// @Summary Cart summary
// @Description Price the cart with shipping and tax
// @Tags CART
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/cart/{cartId}/summary	[get]
// @Produce json
// @param cartId path string true "uuid"
func (hdl *HTTPHandler) GetCartSummary(c *fiber.Ctx) error {
	cartID, err := cartIDParam(c)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	quote, err := hdl.orders.Quote(c.UserContext(), cartID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: quote})
}

type cartMutation func(ctx context.Context, request domain.CartItemRequest) (*domain.CartSnapshot, error)

func (hdl *HTTPHandler) mutateCart(c *fiber.Ctx, mutation cartMutation) error {
	cartID, err := cartIDParam(c)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	var request CartItemRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return validationFailed(c, err)
	}
	snapshot, err := mutation(c.UserContext(), domain.CartItemRequest{
		CartID:    cartID,
		ProductID: request.ProductID,
		Color:     request.Color,
		Size:      request.Size,
		Quantity:  request.Quantity,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toCartResponse(cartID, snapshot)})
}
