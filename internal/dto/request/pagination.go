package request

// ListRequest carries the common list query parameters
// (?page=&limit=&order=&sort=). Order/Sort are whitelisted at the
// repository layer.
type ListRequest struct {
	Page  int    `json:"page" validate:"min=1"`
	Limit int    `json:"limit" validate:"min=1,max=100"`
	Order string `json:"order,omitempty"`
	Sort  string `json:"sort,omitempty"`
}

func (p ListRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.LimitOrDefault()
}

func (p ListRequest) LimitOrDefault() int {
	if p.Limit < 1 {
		return 10
	}
	if p.Limit > 100 {
		return 100
	}
	return p.Limit
}
