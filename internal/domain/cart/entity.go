// internal/domain/cart/entity.go
package cart

// LineItem represents one row of the cart, identified by product id
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"` // unit price, never negative
	Image    string `json:"image"`
	Quantity int    `json:"quantity"` // always >= 1 while the line exists
}

// Totals represents calculated cart totals. Always recomputed from the
// current line items, never stored.
type Totals struct {
	ItemCount     int   `json:"item_count"`     // number of distinct lines
	TotalQuantity int   `json:"total_quantity"` // sum of all quantities
	SubTotal      int64 `json:"sub_total"`      // sum of price * quantity
	DeliveryFee   int64 `json:"delivery_fee"`
	TotalAmount   int64 `json:"total_amount"` // sub total + delivery fee
}

// AddRequest represents an add-to-cart request. Quantity below 1 is
// treated as 1.
type AddRequest struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"min=0"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// UpdateQuantityRequest represents a quantity update request. Zero or
// negative removes the line entirely.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
