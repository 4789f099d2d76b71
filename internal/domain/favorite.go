package domain

type Favorite struct {
	ID        ID       `json:"id"`
	ProductID ID       `json:"product_id"`
	Product   *Product `json:"product,omitempty"`
}

type AddFavoriteInput struct {
	ProductID ID `json:"product_id" validate:"required"`
}

type FavoriteCreated struct {
	Status     string `json:"status"`
	FavoriteID ID     `json:"favorite_id"`
}

type FavoriteStatus struct {
	IsFavorite bool `json:"is_favorite"`
	FavoriteID *ID  `json:"favorite_id,omitempty"`
}
