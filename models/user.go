package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id         primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName  string               `bson:"firstName" json:"firstName"`
	LastName   string               `bson:"lastName" json:"lastName"`
	Email      string               `bson:"email" json:"email"`
	Password   string               `bson:"password" json:"-"`
	Phone      string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Address    string               `bson:"address,omitempty" json:"address,omitempty"`
	City       string               `bson:"city,omitempty" json:"city,omitempty"`
	State      string               `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode string               `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Wishlist   []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	IsAdmin    bool                 `bson:"isAdmin" json:"isAdmin"`
	CreatedAt  time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// InWishlist reports whether productId is already on the wishlist.
func (u *User) InWishlist(productId primitive.ObjectID) bool {
	for _, id := range u.Wishlist {
		if id == productId {
			return true
		}
	}
	return false
}

// ToggleWishlist adds productId when absent and removes it when present,
// returning true when the product ends up on the list.
func (u *User) ToggleWishlist(productId primitive.ObjectID) bool {
	for i, id := range u.Wishlist {
		if id == productId {
			u.Wishlist = append(u.Wishlist[:i], u.Wishlist[i+1:]...)
			return false
		}
	}
	u.Wishlist = append(u.Wishlist, productId)
	return true
}
