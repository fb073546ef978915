package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func item(variantId string, quantity int) CartItem {
	return CartItem{
		ProductId: primitive.NewObjectID(),
		VariantId: variantId,
		Quantity:  quantity,
		Price:     ItemPrice{Amount: "799", CurrencyCode: "INR"},
	}
}

func TestCartAddMergesByVariant(t *testing.T) {
	cart := &Cart{}

	cart.Add(item("v1", 2))
	cart.Add(item("v1", 2))

	if len(cart.Items) != 1 {
		t.Fatalf("got %d lines, want 1", len(cart.Items))
	}
	if cart.Items[0].Quantity != 4 {
		t.Errorf("got quantity %d, want 4", cart.Items[0].Quantity)
	}
}

func TestCartAddDistinctVariants(t *testing.T) {
	cart := &Cart{}

	cart.Add(item("v1", 1))
	cart.Add(item("v2", 1))

	if len(cart.Items) != 2 {
		t.Fatalf("got %d lines, want 2", len(cart.Items))
	}
}

func TestCartSetQuantity(t *testing.T) {
	cart := &Cart{}
	cart.Add(item("v1", 3))

	if !cart.SetQuantity("v1", 7) {
		t.Fatal("SetQuantity reported missing line")
	}
	if cart.Items[0].Quantity != 7 {
		t.Errorf("got quantity %d, want 7", cart.Items[0].Quantity)
	}
}

func TestCartSetQuantityZeroRemoves(t *testing.T) {
	cart := &Cart{}
	cart.Add(item("v1", 3))
	cart.Add(item("v2", 1))

	if !cart.SetQuantity("v1", 0) {
		t.Fatal("SetQuantity reported missing line")
	}
	if len(cart.Items) != 1 || cart.Items[0].VariantId != "v2" {
		t.Errorf("v1 should be removed, cart items: %+v", cart.Items)
	}
}

func TestCartSetQuantityMissing(t *testing.T) {
	cart := &Cart{}
	if cart.SetQuantity("absent", 1) {
		t.Error("SetQuantity on an absent variant should report false")
	}
}

func TestCartRemove(t *testing.T) {
	cart := &Cart{}
	cart.Add(item("v1", 1))
	cart.Add(item("v2", 1))

	cart.Remove("v1")
	if len(cart.Items) != 1 || cart.Items[0].VariantId != "v2" {
		t.Errorf("unexpected items after remove: %+v", cart.Items)
	}

	// Removing an absent variant is a no-op.
	cart.Remove("v1")
	if len(cart.Items) != 1 {
		t.Errorf("remove of absent variant changed the cart: %+v", cart.Items)
	}
}
