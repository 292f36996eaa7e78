package response

import (
	"time"

	"shop-backend/internal/data/entity"
)

type CartResponse struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	Items      []CartItemResponse `json:"items"`
	Active     bool               `json:"active"`
	ModifiedOn time.Time          `json:"modified_on"`
}

type CartItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func CartToResponse(cart *entity.Cart) CartResponse {
	items := make([]CartItemResponse, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	return CartResponse{
		ID:         cart.ID.String(),
		UserID:     cart.UserID.String(),
		Items:      items,
		Active:     cart.Active,
		ModifiedOn: cart.ModifiedOn,
	}
}
