package domain

import "errors"

var (
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrForbidden          = errors.New("forbidden")
	ErrNotCommentAuthor   = errors.New("only the author can edit this comment")
	ErrEmptyComment       = errors.New("comment content is empty")
	ErrPurchaseRequired   = errors.New("product must be purchased before commenting")
	ErrProductNotFound    = errors.New("product not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrBrandNotFound      = errors.New("brand not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrAvatarNotFound     = errors.New("avatar not found")
	ErrInvalidPriceRange  = errors.New("minimum price is above maximum price")
	ErrAlreadyFavorite    = errors.New("product is already in favorites")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrNothingToCheckout  = errors.New("no cart items selected")
	ErrOutOfStock         = errors.New("not enough items in stock")
)
