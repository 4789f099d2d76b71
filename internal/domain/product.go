package domain

type Brand struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	Logo        *string `json:"logo,omitempty"`
}

type MusicType struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	CategoryID ID     `json:"category_id"`
}

type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type ProductImage struct {
	ID        ID     `json:"id"`
	ImagePath string `json:"image_path"`
}

type Product struct {
	ID          ID             `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Quantity    int            `json:"quantity"`
	BrandID     ID             `json:"brand_id"`
	MusicTypeID *ID            `json:"music_type_id,omitempty"`
	Image       *string        `json:"image,omitempty"`
	Images      []ProductImage `json:"images"`
	AvgRating   float64        `json:"avg_rating"`
	Brand       *Brand         `json:"brand,omitempty"`
	MusicType   *MusicType     `json:"music_type,omitempty"`
}

func (p *Product) InStock() bool {
	return p.Quantity > 0
}

type ProductFilter struct {
	Query       string   `query:"q"`
	PriceMin    *float64 `query:"price_min" validate:"omitempty,gte=0"`
	PriceMax    *float64 `query:"price_max" validate:"omitempty,gte=0"`
	BrandID     ID       `query:"brand_id"`
	MusicTypeID ID       `query:"music_type_id"`
	PaginationParams
}

type ProductRating struct {
	Average float64 `json:"average"`
}

type RateProductInput struct {
	Value int `json:"value" validate:"required,min=1,max=5"`
}

type ProductRatingVote struct {
	ID    ID  `json:"id"`
	Value int `json:"value"`
}

// ProductDetail is everything the product page shows in one response.
type ProductDetail struct {
	Product  *Product       `json:"product"`
	Rating   ProductRating  `json:"rating"`
	Comments []*CommentNode `json:"comments"`
}

type BrandPage struct {
	Brand    *Brand    `json:"brand"`
	Products []Product `json:"products"`
}

type SalesReport struct {
	TotalSold int                 `json:"total_sold"`
	Products  []ProductSalesEntry `json:"products"`
}

type ProductSalesEntry struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	SoldCount int    `json:"sold_count"`
}

type CategoryPage struct {
	Category *Category `json:"category"`
	Products []Product `json:"products"`
}
