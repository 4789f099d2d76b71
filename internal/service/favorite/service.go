package favorite

import (
	"context"
	"net/http"

	"music-storefront/internal/domain"
	"music-storefront/internal/repository"
	"music-storefront/internal/shopapi"
)

type Service interface {
	List(ctx context.Context, session *domain.Session) ([]domain.Favorite, error)
	Add(ctx context.Context, session *domain.Session, productID domain.ID) (*domain.FavoriteCreated, error)
	Remove(ctx context.Context, session *domain.Session, favoriteID domain.ID) error
	Check(ctx context.Context, session *domain.Session, productID domain.ID) (domain.FavoriteStatus, error)
}

type service struct {
	favoriteRepo repository.FavoriteRepository
}

func NewService(favoriteRepo repository.FavoriteRepository) Service {
	return &service{favoriteRepo: favoriteRepo}
}

func (s *service) List(ctx context.Context, session *domain.Session) ([]domain.Favorite, error) {
	favorites, err := s.favoriteRepo.List(ctx, session.AccessToken)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}
	return favorites, nil
}

func (s *service) Add(ctx context.Context, session *domain.Session, productID domain.ID) (*domain.FavoriteCreated, error) {
	created, err := s.favoriteRepo.Add(ctx, session.AccessToken, productID)
	if err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{
			http.StatusBadRequest: domain.ErrAlreadyFavorite,
			http.StatusNotFound:   domain.ErrProductNotFound,
		})
	}
	return created, nil
}

func (s *service) Remove(ctx context.Context, session *domain.Session, favoriteID domain.ID) error {
	err := s.favoriteRepo.Remove(ctx, session.AccessToken, favoriteID)
	return shopapi.MapStatus(err, map[int]error{http.StatusNotFound: domain.ErrFavoriteNotFound})
}

func (s *service) Check(ctx context.Context, session *domain.Session, productID domain.ID) (domain.FavoriteStatus, error) {
	return s.favoriteRepo.Check(ctx, session.AccessToken, productID)
}
