package entities

type SearchCriteria struct {
	// nil - фильтр не применяется
	Status *OrderStatus
	ItemID *int64
}

type Page struct {
	Number int
	Size   int
}

type OrderPage struct {
	Orders []Order
	Total  int64
	Page   int
	Size   int
}

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
)
