package handlers

import "github.com/Samvel1-1/Electronics/internal/domain"

type purchaseRequest struct {
	Email          string     `json:"email"`
	ProductName    string     `json:"productName"`
	Cart           []cartItem `json:"cart"`
	PriceFormatted string     `json:"priceFormatted"`
}

// cartItem accepts both "quantity" and the short "qty" the storefront sends.
type cartItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
}

func (i cartItem) quantity() int {
	if i.Quantity > 0 {
		return i.Quantity
	}
	return i.Qty
}

func mapCart(cart []cartItem) []domain.OrderItem {
	if len(cart) == 0 {
		return nil
	}
	items := make([]domain.OrderItem, len(cart))
	for i, c := range cart {
		items[i] = domain.OrderItem{
			Name:      c.Name,
			Quantity:  c.quantity(),
			UnitPrice: c.Price,
		}
	}
	return items
}

type cancelRequest struct {
	OrderID string `json:"orderId"`
	Email   string `json:"email"`
}

type productRequest struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Img      string `json:"img"`
	Category string `json:"category"`
}

type bulkIndicesRequest struct {
	Indices []int `json:"indices"`
}

type categoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type bulkNamesRequest struct {
	Names []string `json:"names"`
}
