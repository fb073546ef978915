package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ItemPrice struct {
	Amount       string `bson:"amount" json:"amount"`
	CurrencyCode string `bson:"currencyCode" json:"currencyCode"`
}

type SelectedOption struct {
	Name  string `bson:"name" json:"name"`
	Value string `bson:"value" json:"value"`
}

// CartItem is one purchasable line. Identity within a cart is the
// variantId, not the product id: the same product in two sizes is two
// lines.
type CartItem struct {
	ProductId       primitive.ObjectID `bson:"productId" json:"productId"`
	Product         *Product           `bson:"-" json:"product,omitempty"`
	VariantId       string             `bson:"variantId" json:"variantId"`
	VariantTitle    string             `bson:"variantTitle" json:"variantTitle"`
	Price           ItemPrice          `bson:"price" json:"price"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	SelectedOptions []SelectedOption   `bson:"selectedOptions" json:"selectedOptions"`
}

// Cart holds one user's open cart. One cart per user; the document
// survives emptying.
type Cart struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Add merges item into the cart. An existing line with the same
// variantId has its quantity incremented by item.Quantity; otherwise the
// item is appended.
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].VariantId == item.VariantId {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity sets the quantity of the line identified by variantId.
// A quantity of zero or less removes the line. Returns false when no
// such line exists.
func (c *Cart) SetQuantity(variantId string, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].VariantId == variantId {
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

// Remove drops the line identified by variantId if present.
func (c *Cart) Remove(variantId string) {
	for i := range c.Items {
		if c.Items[i].VariantId == variantId {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}
