package request

type ProductRequest struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Price float64 `json:"price" validate:"required,gt=0"`
}
