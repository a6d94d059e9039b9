package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// identityKeySeparator joins the parts of an identity key
const identityKeySeparator = "-"

// LineItem represents one product/variant/quantity entry in a cart
type LineItem struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	ImageRef  string          `json:"image"`
	Quantity  int             `json:"quantity"`
	Color     string          `json:"color,omitempty"`
	Size      string          `json:"size,omitempty"`
}

// IdentityKey returns the composite key used to merge and match cart entries.
// Absent color and size take part in the key as empty strings.
func IdentityKey(productID, color, size string) string {
	return productID + identityKeySeparator + color + identityKeySeparator + size
}

// Key returns the identity key of the line item
func (i LineItem) Key() string {
	return IdentityKey(i.ProductID, i.Color, i.Size)
}

// Subtotal returns unit price times quantity
func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartSnapshot is an immutable view of a cart handed to readers and listeners
type CartSnapshot struct {
	Items     []LineItem      `json:"items"`
	ItemCount int             `json:"item_count"`
	CartTotal decimal.Decimal `json:"cart_total"`
}

// Cart is the ordered collection of line items. It carries no derived state;
// ItemCount and Total are computed from the items on every call.
type Cart struct {
	items []LineItem
}

// NewCart creates a cart from the given items. Entries sharing an identity
// key are merged into the first occurrence.
func NewCart(items []LineItem) *Cart {
	c := &Cart{items: make([]LineItem, 0, len(items))}
	for _, item := range items {
		if idx := c.indexOf(item.Key()); idx >= 0 {
			c.items[idx].Quantity += item.Quantity
			continue
		}
		c.items = append(c.items, item)
	}
	return c
}

// Add merges the item into the cart. An existing entry with the same identity
// only accumulates quantity; its name and price are kept.
func (c *Cart) Add(item LineItem) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if item.UnitPrice.IsNegative() {
		return ErrInvalidPrice
	}
	if idx := c.indexOf(item.Key()); idx >= 0 {
		c.items[idx].Quantity += item.Quantity
		return nil
	}
	c.items = append(c.items, item)
	return nil
}

// Remove deletes the entry matching the item's identity.
// It reports whether an entry was removed.
func (c *Cart) Remove(item LineItem) bool {
	idx := c.indexOf(item.Key())
	if idx < 0 {
		return false
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return true
}

// UpdateQuantity sets the quantity of the matching entry.
// A quantity of zero or below removes the entry.
func (c *Cart) UpdateQuantity(item LineItem, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(item)
	}
	idx := c.indexOf(item.Key())
	if idx < 0 {
		return false
	}
	c.items[idx].Quantity = quantity
	return true
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.items = make([]LineItem, 0)
}

// Len returns the number of distinct entries
func (c *Cart) Len() int {
	return len(c.items)
}

// ItemCount returns the sum of all quantities
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total returns the sum of unit price times quantity at full precision
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Items returns a copy of the line items in insertion order
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Snapshot returns an immutable view including the derived aggregates
func (c *Cart) Snapshot() CartSnapshot {
	return CartSnapshot{
		Items:     c.Items(),
		ItemCount: c.ItemCount(),
		CartTotal: c.Total(),
	}
}

// MarshalJSON encodes the cart as a bare array of line items
func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items())
}

// DecodeCart parses a stored JSON array of line items. Entries with a
// quantity below one are dropped.
func DecodeCart(data []byte) (*Cart, error) {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	valid := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		valid = append(valid, item)
	}
	return NewCart(valid), nil
}

func (c *Cart) indexOf(key string) int {
	for i := range c.items {
		if c.items[i].Key() == key {
			return i
		}
	}
	return -1
}
