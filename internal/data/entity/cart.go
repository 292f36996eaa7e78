package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the per-user container of line items. Lookup is by user id;
// one cart per user is enforced by a unique index on the carts table.
type Cart struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	Items      []CartItem `db:"-"`
	Active     bool       `db:"active"`
	ModifiedOn time.Time  `db:"modified_on"`
}

// CartItem is one product-quantity pairing inside a cart. Name and price are
// a denormalized copy of the product at the time of add. Items are keyed by
// product id within one cart.
type CartItem struct {
	ID        uuid.UUID `db:"id"`
	CartID    uuid.UUID `db:"cart_id"`
	ProductID uuid.UUID `db:"product_id"`
	Name      string    `db:"name"`
	Price     float64   `db:"price"`
	Quantity  int       `db:"quantity"`
}
