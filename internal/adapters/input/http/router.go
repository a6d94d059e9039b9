package http

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the health check and the /v1/api routes on app
func (hdl *HTTPHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", hdl.HealthCheck)

	api := app.Group("/v1/api")
	{
		api.Get("/products", hdl.GetProducts)
		api.Get("/products/:id", hdl.GetProduct)
		api.Post("/products", hdl.CreateProduct)

		api.Post("/cart", hdl.CreateCart)
		api.Get("/cart/:cartId", hdl.GetCart)
		api.Delete("/cart/:cartId", hdl.ClearCart)
		api.Post("/cart/:cartId/items", hdl.AddToCart)
		api.Put("/cart/:cartId/items", hdl.UpdateQuantity)
		api.Delete("/cart/:cartId/items", hdl.RemoveFromCart)
		api.Get("/cart/:cartId/summary", hdl.GetCartSummary)
		api.Post("/cart/:cartId/checkout", hdl.Checkout)

		api.Get("/orders/:userId", hdl.GetOrders)
	}
}
