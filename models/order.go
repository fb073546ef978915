package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a snapshot of a cart line at checkout time. Name, image
// and price are captured here so later product edits do not rewrite
// order history.
type OrderItem struct {
	ProductId       primitive.ObjectID `bson:"productId" json:"productId"`
	VariantId       string             `bson:"variantId" json:"variantId"`
	Name            string             `bson:"name" json:"name"`
	Image           string             `bson:"image" json:"image"`
	Price           ItemPrice          `bson:"price" json:"price"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	SelectedOptions []SelectedOption   `bson:"selectedOptions" json:"selectedOptions"`
}

type ShippingInfo struct {
	FirstName  string `bson:"firstName" json:"firstName"`
	LastName   string `bson:"lastName" json:"lastName"`
	Email      string `bson:"email" json:"email"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
}

// Order is created once at checkout and immutable afterwards except for
// the delivered flag, which only ever transitions false to true.
// User is nil for guest checkouts.
type Order struct {
	Id            primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	User          *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Items         []OrderItem         `bson:"items" json:"items"`
	ShippingInfo  ShippingInfo        `bson:"shippingInfo" json:"shippingInfo"`
	PaymentMethod string              `bson:"paymentMethod" json:"paymentMethod"`
	TotalPrice    float64             `bson:"totalPrice" json:"totalPrice"`
	IsDelivered   bool                `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt   *time.Time          `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// OwnedBy reports whether the order belongs to userId. Guest orders
// belong to nobody.
func (o *Order) OwnedBy(userId primitive.ObjectID) bool {
	return o.User != nil && *o.User == userId
}
