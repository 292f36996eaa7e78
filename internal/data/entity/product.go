package entity

type Product struct {
	Base
	Name  string  `db:"name"`
	Price float64 `db:"price"`
}
