package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrderOwnedBy(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	order := &Order{User: &owner}
	if !order.OwnedBy(owner) {
		t.Error("owner should own the order")
	}
	if order.OwnedBy(other) {
		t.Error("non-owner should not own the order")
	}
}

func TestGuestOrderOwnedByNobody(t *testing.T) {
	guest := &Order{}
	if guest.OwnedBy(primitive.NewObjectID()) {
		t.Error("guest order should belong to nobody")
	}
}
