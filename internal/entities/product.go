package entities

// ProductSnapshot - состояние товара на момент проверки, не персистится
type ProductSnapshot struct {
	ID          int64
	Name        string
	Description string
	Price       int
	Quantity    int
}
