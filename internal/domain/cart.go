package domain

// CartItem is one line item in a cart: a product id plus a snapshot of the
// product fields captured when the item was added. The snapshot is never
// re-fetched while the item sits in the cart.
type CartItem struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Brand       string  `json:"brand,omitempty"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Quantity    int64   `json:"quantity"`
}

// Cart holds at most one line item per product id. It is a plain value with
// no notion of identity; callers decide which session it belongs to. All
// mutating operations are total: unknown product ids are safe no-ops.
type Cart struct {
	Items []CartItem `json:"items"`
}

func (c *Cart) index(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add inserts the snapshot with quantity 1. Re-adding a product already in
// the cart leaves its quantity unchanged; bumping quantity is a separate
// explicit operation.
func (c *Cart) Add(item CartItem) {
	if c.index(item.ProductID) >= 0 {
		return
	}

	item.Quantity = 1
	c.Items = append(c.Items, item)
}

func (c *Cart) Remove(productID string) {
	i := c.index(productID)
	if i < 0 {
		return
	}

	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

func (c *Cart) IncreaseQuantity(productID string) {
	i := c.index(productID)
	if i < 0 {
		return
	}

	c.Items[i].Quantity++
}

// DecreaseQuantity floors at 1; it never removes the item.
func (c *Cart) DecreaseQuantity(productID string) {
	i := c.index(productID)
	if i < 0 {
		return
	}

	if c.Items[i].Quantity > 1 {
		c.Items[i].Quantity--
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Subset returns copies of the line items whose product id is in ids,
// preserving cart order. It does not mutate the cart.
func (c Cart) Subset(ids []string) []CartItem {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	var items []CartItem
	for _, item := range c.Items {
		if selected[item.ProductID] {
			items = append(items, item)
		}
	}

	return items
}

// ComputeTotal sums price times quantity over the given line items.
func ComputeTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}
