package http

import (
	"storefront/internal/domain"
	"storefront/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Checkout godoc
// @Summary Checkout
// @Description Place an order for the cart contents and clear the cart
// @Tags ORDER
// @Accept application/json
// @Success 201 {object} map[string]interface{}
// @Router /v1/api/cart/{cartId}/checkout	[post]
// @Produce json
// @param cartId path string true "uuid"
// @param Checkout body CheckoutRequest true "Checkout"
func (hdl *HTTPHandler) Checkout(c *fiber.Ctx) error {
	cartID, err := cartIDParam(c)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	var request CheckoutRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return validationFailed(c, err)
	}
	response, err := hdl.orders.Checkout(c.UserContext(), domain.CheckoutRequest{
		CartID:  cartID,
		UserID:  request.UserID,
		Name:    request.Name,
		Address: request.Address,
		Phone:   request.Phone,
	})
	metrics.RecordCheckout(err == nil)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Created, Data: response})
}

// GetOrders godoc
// @Summary Order history
// @Description List a user's orders, newest first, with estimated delivery dates
// @Tags ORDER
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/orders/{userId}	[get]
// @Produce json
// @param userId path string true "user id"
func (hdl *HTTPHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := hdl.orders.GetOrders(c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	if orders == nil {
		orders = make([]domain.OrderResponse, 0)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: orders})
}
