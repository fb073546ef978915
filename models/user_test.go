package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToggleWishlist(t *testing.T) {
	productId := primitive.NewObjectID()
	user := &User{Wishlist: []primitive.ObjectID{}}

	if !user.ToggleWishlist(productId) {
		t.Error("first toggle should add the product")
	}
	if !user.InWishlist(productId) {
		t.Error("product should be on the wishlist after adding")
	}

	if user.ToggleWishlist(productId) {
		t.Error("second toggle should remove the product")
	}
	if user.InWishlist(productId) {
		t.Error("product should be off the wishlist after removing")
	}
}

func TestToggleWishlistKeepsOthers(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	user := &User{Wishlist: []primitive.ObjectID{first, second}}

	user.ToggleWishlist(first)

	if user.InWishlist(first) {
		t.Error("first product should be removed")
	}
	if !user.InWishlist(second) {
		t.Error("second product should survive the toggle")
	}
}
