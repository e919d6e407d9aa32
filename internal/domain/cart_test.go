package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(id string, price float64) CartItem {
	return CartItem{ProductID: id, Name: "product " + id, Price: price, Image: "img"}
}

func TestCart_Add(t *testing.T) {
	cart := Cart{}

	cart.Add(item("p1", 10))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].Quantity)

	// re-adding the same product keeps the cart as it was
	cart.IncreaseQuantity("p1")
	cart.Add(item("p1", 10))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].Quantity)
}

func TestCart_Remove(t *testing.T) {
	cart := Cart{}
	cart.Add(item("p1", 10))
	cart.Add(item("p2", 20))

	cart.Remove("p1")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)

	cart.Remove("unknown")
	assert.Len(t, cart.Items, 1)
}

func TestCart_Quantity(t *testing.T) {
	cart := Cart{}
	cart.Add(item("p1", 10))

	cart.IncreaseQuantity("p1")
	cart.IncreaseQuantity("p1")
	assert.Equal(t, int64(3), cart.Items[0].Quantity)

	cart.DecreaseQuantity("p1")
	assert.Equal(t, int64(2), cart.Items[0].Quantity)

	// quantity floors at 1, the item is never removed by decrementing
	cart.DecreaseQuantity("p1")
	cart.DecreaseQuantity("p1")
	cart.DecreaseQuantity("p1")
	assert.Equal(t, int64(1), cart.Items[0].Quantity)
	assert.Len(t, cart.Items, 1)

	cart.IncreaseQuantity("unknown")
	cart.DecreaseQuantity("unknown")
	assert.Len(t, cart.Items, 1)
}

func TestCart_Subset(t *testing.T) {
	cart := Cart{}
	cart.Add(item("p1", 10))
	cart.Add(item("p2", 20))
	cart.Add(item("p3", 30))

	subset := cart.Subset([]string{"p3", "p1", "unknown"})
	assert.Len(t, subset, 2)
	assert.Equal(t, "p1", subset[0].ProductID)
	assert.Equal(t, "p3", subset[1].ProductID)

	// the cart itself is untouched
	assert.Len(t, cart.Items, 3)

	assert.Empty(t, cart.Subset(nil))
	assert.Empty(t, cart.Subset([]string{"unknown"}))
}

func TestCart_Clear(t *testing.T) {
	cart := Cart{}
	cart.Add(item("p1", 10))
	cart.Add(item("p2", 20))

	cart.Clear()
	assert.Empty(t, cart.Items)
}

func TestComputeTotal(t *testing.T) {
	items := []CartItem{
		{ProductID: "p1", Price: 10, Quantity: 2},
		{ProductID: "p2", Price: 5.5, Quantity: 3},
	}

	assert.InDelta(t, 36.5, ComputeTotal(items), 1e-9)
	assert.Zero(t, ComputeTotal(nil))
}
