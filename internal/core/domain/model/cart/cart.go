package cart

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created through
	// the NewCart factory method or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Cart is a user's mutable, restaurant-scoped pending selection of items.
// It is the aggregate root for everything that happens before an order is placed.
//
// Cart follows these invariants:
//   - Exactly one cart per user (enforced by the store's unique key on user id)
//   - Every line item belongs to the cart's bound restaurant
//   - Adding an item from a different restaurant clears the cart and rebinds it
//   - Line quantities are always at least 1
//
// A cart is created lazily on the first add, logically emptied (not deleted) when
// an order is created from it, and physically deleted only when its owning user
// or its restaurant is removed.
type Cart struct {
	// userID is the owning user; it doubles as the cart's identity.
	userID kernel.UUID

	// restaurantID and restaurantName denormalize the restaurant the cart is bound to.
	restaurantID   kernel.UUID
	restaurantName string

	// items is the ordered list of lines.
	items []Item

	// isConstructed ensures the cart was created via a constructor.
	isConstructed bool
}

// NewCart creates an empty cart for a user, bound to a restaurant.
// Returns a validation error if the user id, restaurant id, or restaurant name
// is missing.
func NewCart(userID, restaurantID kernel.UUID, restaurantName string) (*Cart, error) {
	c := &Cart{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setUserID(userID),
		c.setRestaurant(restaurantID, restaurantName),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCart reconstructs a cart from persistence. Every item must have been
// built through NewItem (repositories rebuild them the same way).
func RestoreCart(userID, restaurantID kernel.UUID, restaurantName string, items []Item) (*Cart, error) {
	c, err := NewCart(userID, restaurantID, restaurantName)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	c.items = append(c.items, items...)

	return c, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// UserID returns the owning user's id.
func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// RestaurantID returns the id of the restaurant the cart is bound to.
func (c *Cart) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// RestaurantName returns the denormalized restaurant name.
func (c *Cart) RestaurantName() string {
	return c.restaurantName
}

// Items returns a copy of the cart's lines in insertion order.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// ItemCount returns the number of lines in the cart.
func (c *Cart) ItemCount() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Total returns the sum of price multiplied by quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// AddItem adds a line to the cart.
//
// If restaurantID differs from the cart's current binding, the cart is cleared
// and rebound to the new restaurant before the item is inserted. If a line with
// the same catalog item id already exists, its quantity is increased by the new
// line's quantity and its note is overwritten when the new line carries one.
// Otherwise the line is appended.
func (c *Cart) AddItem(restaurantID kernel.UUID, restaurantName string, item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	if restaurantName == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}

	if !c.restaurantID.IsEqual(restaurantID) {
		c.items = nil
		if err := c.setRestaurant(restaurantID, restaurantName); err != nil {
			return err
		}
	}

	for idx := range c.items {
		if c.items[idx].catalogItemID.IsEqual(item.catalogItemID) {
			merged, err := NewItem(
				item.catalogItemID,
				item.name,
				item.price,
				item.imageURL,
				c.items[idx].quantity+item.quantity,
				mergeNote(c.items[idx].note, item.note),
			)
			if err != nil {
				return err
			}
			c.items[idx] = merged
			return nil
		}
	}

	c.items = append(c.items, item)
	return nil
}

// UpdateItem changes the quantity (and optionally the note) of an existing line.
// note is left untouched when nil. Returns an ObjectNotFoundError when no line
// matches catalogItemID and a range error when quantity is below 1.
func (c *Cart) UpdateItem(catalogItemID kernel.UUID, quantity int, note *string) error {
	for idx := range c.items {
		if c.items[idx].catalogItemID.IsEqual(catalogItemID) {
			newNote := c.items[idx].note
			if note != nil {
				newNote = *note
			}
			updated, err := NewItem(
				c.items[idx].catalogItemID,
				c.items[idx].name,
				c.items[idx].price,
				c.items[idx].imageURL,
				quantity,
				newNote,
			)
			if err != nil {
				return err
			}
			c.items[idx] = updated
			return nil
		}
	}
	return errs.NewObjectNotFoundError("cartItem", catalogItemID.String())
}

// RemoveItem deletes the line matching catalogItemID.
// Returns an ObjectNotFoundError when no line matches.
func (c *Cart) RemoveItem(catalogItemID kernel.UUID) error {
	for idx := range c.items {
		if c.items[idx].catalogItemID.IsEqual(catalogItemID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("cartItem", catalogItemID.String())
}

// Clear empties the item list in place. The cart itself, including its
// restaurant binding, persists.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *Cart) setRestaurant(restaurantID kernel.UUID, restaurantName string) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	if restaurantName == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	c.restaurantID = restaurantID
	c.restaurantName = restaurantName
	return nil
}

func mergeNote(existing, incoming string) string {
	if incoming != "" {
		return incoming
	}
	return existing
}
