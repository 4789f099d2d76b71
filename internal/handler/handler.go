package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"music-storefront/internal/middleware"
	"music-storefront/internal/service"
)

type Handlers struct {
	Auth      *AuthHandler
	Profile   *ProfileHandler
	Catalog   *CatalogHandler
	Comment   *CommentHandler
	Favorite  *FavoriteHandler
	Cart      *CartHandler
	Dashboard *DashboardHandler
}

func NewHandlers(services *service.Services, cookie middleware.SessionCookie) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(services.Auth, cookie),
		Profile:   NewProfileHandler(services.Profile, cookie),
		Catalog:   NewCatalogHandler(services.Catalog, services.Comment),
		Comment:   NewCommentHandler(services.Comment),
		Favorite:  NewFavoriteHandler(services.Favorite),
		Cart:      NewCartHandler(services.Cart),
		Dashboard: NewDashboardHandler(services.Dashboard),
	}
}

func SetupRoutes(app *fiber.App, h *Handlers, services *service.Services, cookie middleware.SessionCookie, logger *zap.Logger) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	sessionRequired := middleware.SessionRequired(services.Auth, cookie, logger)

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/me", sessionRequired, h.Auth.Me)

	profile := v1.Group("/profile", sessionRequired)
	profile.Get("/", h.Profile.Get)
	profile.Patch("/", h.Profile.Update)
	profile.Delete("/", h.Profile.Delete)
	profile.Post("/avatar", h.Profile.UploadAvatar)

	v1.Get("/users/:userId/avatar", h.Profile.Avatar)

	products := v1.Group("/products")
	products.Get("/", h.Catalog.ListProducts)
	products.Get("/top", h.Catalog.TopProducts)
	products.Get("/suggest", h.Catalog.Suggest)
	products.Get("/:productId", h.Catalog.GetProduct)
	products.Get("/:productId/rating", h.Catalog.GetRating)
	products.Post("/:productId/rating", sessionRequired, h.Catalog.Rate)
	products.Get("/:productId/comments", h.Comment.List)
	products.Post("/:productId/comments", sessionRequired, h.Comment.Create)

	comments := v1.Group("/comments")
	comments.Patch("/:commentId", sessionRequired, h.Comment.Update)
	comments.Post("/:commentId/vote", sessionRequired, h.Comment.Vote)
	comments.Get("/:commentId/rating", h.Comment.Rating)

	v1.Get("/music-types", h.Catalog.MusicTypes)
	v1.Get("/brands", h.Catalog.Brands)
	v1.Get("/brands/:brandId", h.Catalog.GetBrand)
	v1.Get("/categories", h.Catalog.Categories)
	v1.Get("/categories/:categoryId/products", h.Catalog.CategoryProducts)

	favorites := v1.Group("/favorites", sessionRequired)
	favorites.Get("/", h.Favorite.List)
	favorites.Post("/", h.Favorite.Add)
	favorites.Get("/check", h.Favorite.Check)
	favorites.Delete("/:favoriteId", h.Favorite.Remove)

	cart := v1.Group("/cart", sessionRequired)
	cart.Get("/", h.Cart.Get)
	cart.Post("/items", h.Cart.AddItem)
	cart.Patch("/items/:itemId", h.Cart.UpdateItem)
	cart.Delete("/items/:itemId", h.Cart.RemoveItem)
	cart.Post("/checkout", h.Cart.Checkout)

	orders := v1.Group("/orders", sessionRequired)
	orders.Get("/", h.Cart.History)
	orders.Get("/barcode", h.Cart.Barcode)

	reports := v1.Group("/reports", sessionRequired, middleware.RequireAdmin())
	reports.Get("/sales", h.Dashboard.Sales)
}
