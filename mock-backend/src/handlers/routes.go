package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the REST contract on app. With requireAuth the
// product routes sit behind RequireToken.
func RegisterRoutes(app *fiber.App, products *ProductHandler, auth *AuthHandler, requireAuth bool) {
	app.Get("/health", products.HealthCheck)

	api := app.Group("/api")
	api.Post("/auth/login", auth.Login)

	productsGroup := api.Group("/products")
	if requireAuth {
		productsGroup.Use(auth.RequireToken)
	}
	productsGroup.Get("/", products.ListProducts)
	productsGroup.Post("/", products.CreateProduct)
	productsGroup.Get("/:id", products.GetProduct)
	productsGroup.Put("/:id", products.UpdateProduct)
	productsGroup.Delete("/:id", products.DeleteProduct)
}
