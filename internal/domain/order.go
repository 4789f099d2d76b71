package domain

import "time"

type OrderStatus string

const (
	OrderStatusOrdered   OrderStatus = "ORDERED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

type Order struct {
	ID        ID          `json:"id"`
	UserID    ID          `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
	Status    OrderStatus `json:"status"`
	Items     []OrderItem `json:"order_items"`
	Barcode   *string     `json:"barcode,omitempty"`
}

func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

type OrderItem struct {
	ID        ID      `json:"id"`
	OrderID   ID      `json:"order_id"`
	ProductID ID      `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

func (i OrderItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Cart is the open ORDERED order of a user, as shown on the cart page.
type Cart struct {
	OrderID *ID         `json:"order_id"`
	Items   []OrderItem `json:"items"`
	Total   float64     `json:"total"`
}

func NewCart(order *Order) Cart {
	if order == nil {
		return Cart{Items: []OrderItem{}}
	}
	items := order.Items
	if items == nil {
		items = []OrderItem{}
	}
	id := order.ID
	return Cart{OrderID: &id, Items: items, Total: order.Total()}
}

type AddCartItemInput struct {
	ProductID ID  `json:"product_id" validate:"required"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type CheckoutInput struct {
	ItemIDs []ID `json:"item_ids" validate:"required,min=1"`
}

type CheckoutResult struct {
	Success    bool   `json:"success"`
	NewOrderID ID     `json:"new_order_id"`
	Message    string `json:"message"`
}

type OrderBarcode struct {
	BarcodeURL string `json:"barcode_url"`
}
