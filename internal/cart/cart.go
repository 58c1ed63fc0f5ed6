package cart

import (
	"fmt"
	"strings"

	"restaurant-deluxe/internal/domain"
)

const (
	TaxRate    = 0.16
	ServiceFee = 0.10
)

type Item struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Cart is a session-scoped value object owned by one customer session. It is
// never shared between sessions; persistence across reloads goes through a
// Store at session boundaries.
type Cart struct {
	Items []Item `json:"items"`
}

func (c *Cart) Add(p domain.Product, qty int) {
	if qty <= 0 {
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  qty,
	})
}

func (c *Cart) Remove(productID int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) SetQuantity(productID, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Empty() bool { return len(c.Items) == 0 }

func (c *Cart) Clear() { c.Items = nil }

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Service  float64 `json:"service"`
	Total    float64 `json:"total"`
}

func (c *Cart) Totals() Totals {
	var subtotal float64
	for _, it := range c.Items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}
	t := Totals{
		Subtotal: subtotal,
		Tax:      subtotal * TaxRate,
		Service:  subtotal * ServiceFee,
	}
	t.Total = t.Subtotal + t.Tax + t.Service
	return t
}

// Summary encodes the line items the way the kitchen reads them:
// "1x Filet Mignon, 2x Signature Cocktail".
func (c *Cart) Summary() string {
	parts := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
	}
	return strings.Join(parts, ", ")
}
