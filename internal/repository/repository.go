package repository

import (
	"music-storefront/internal/shopapi"
)

type Repositories struct {
	User     UserRepository
	Product  ProductRepository
	Brand    BrandRepository
	Category CategoryRepository
	Comment  CommentRepository
	Favorite FavoriteRepository
	Order    OrderRepository
	Report   ReportRepository
	Session  SessionRepository
}

func NewRepositories(api *shopapi.Client, sessions SessionRepository) *Repositories {
	return &Repositories{
		User:     NewUserRepository(api),
		Product:  NewProductRepository(api),
		Brand:    NewBrandRepository(api),
		Category: NewCategoryRepository(api),
		Comment:  NewCommentRepository(api),
		Favorite: NewFavoriteRepository(api),
		Order:    NewOrderRepository(api),
		Report:   NewReportRepository(api),
		Session:  sessions,
	}
}
