package service

import (
	"go.uber.org/zap"

	"music-storefront/internal/commenttree"
	"music-storefront/internal/config"
	"music-storefront/internal/repository"
	"music-storefront/internal/service/auth"
	"music-storefront/internal/service/cart"
	"music-storefront/internal/service/catalog"
	"music-storefront/internal/service/comment"
	"music-storefront/internal/service/dashboard"
	"music-storefront/internal/service/favorite"
	"music-storefront/internal/service/profile"
)

type Services struct {
	Auth      auth.Service
	Profile   profile.Service
	Catalog   catalog.Service
	Comment   comment.Service
	Favorite  favorite.Service
	Cart      cart.Service
	Dashboard dashboard.Service
}

func NewServices(repos *repository.Repositories, cache repository.Cache, cfg *config.Config, logger *zap.Logger) *Services {
	treeDefaults := commenttree.Options{
		MaxDepth:           cfg.CommentMaxDepth,
		MaxChildrenPerNode: cfg.CommentMaxChildren,
	}

	commentService := comment.NewService(repos.Comment, repos.Product, treeDefaults, logger)

	return &Services{
		Auth:      auth.NewService(repos.User, repos.Session, cfg, logger),
		Profile:   profile.NewService(repos.User, repos.Session, logger),
		Catalog:   catalog.NewService(repos.Product, repos.Brand, repos.Category, commentService, cache, logger),
		Comment:   commentService,
		Favorite:  favorite.NewService(repos.Favorite),
		Cart:      cart.NewService(repos.Order, logger),
		Dashboard: dashboard.NewService(repos.Report, cache, logger),
	}
}
