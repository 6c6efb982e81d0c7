package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a request to put a catalog item into a user's
// cart. Carries the restaurant binding plus the denormalized item fields the
// cart snapshots.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(userID, restaurantID, "Luigi's",
//	    itemID, "Margherita Pizza", decimal.NewFromFloat(10.00), "", 2, "no basil")
//	if err != nil {
//	    return fmt.Errorf("invalid cart item: %w", err)
//	}
//
//	handler := NewAddCartItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID         kernel.UUID
	restaurantID   kernel.UUID
	restaurantName string
	catalogItemID  kernel.UUID
	name           string
	price          decimal.Decimal
	imageURL       string
	quantity       int
	note           string

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add an item to a cart.
// Validates ids, restaurant name, item name, price, and quantity.
func NewAddCartItemCommand(
	userID kernel.UUID,
	restaurantID kernel.UUID,
	restaurantName string,
	catalogItemID kernel.UUID,
	name string,
	price decimal.Decimal,
	imageURL string,
	quantity int,
	note string,
) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		imageURL: imageURL,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRestaurant(restaurantID, restaurantName),
		cmd.setItem(catalogItemID, name, price, quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c AddCartItemCommand) UserID() kernel.UUID { return c.userID }

// RestaurantID returns the restaurant the item belongs to.
func (c AddCartItemCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// RestaurantName returns the denormalized restaurant name.
func (c AddCartItemCommand) RestaurantName() string { return c.restaurantName }

// Item builds the validated cart line from the command fields.
func (c AddCartItemCommand) Item() (cart.Item, error) {
	return cart.NewItem(c.catalogItemID, c.name, c.price, c.imageURL, c.quantity, c.note)
}

func (c *AddCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.userID = userID
	return nil
}

func (c *AddCartItemCommand) setRestaurant(restaurantID kernel.UUID, restaurantName string) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	if restaurantName == "" {
		return errs.NewValueIsRequiredError("restaurantName")
	}
	c.restaurantID = restaurantID
	c.restaurantName = restaurantName
	return nil
}

func (c *AddCartItemCommand) setItem(catalogItemID kernel.UUID, name string, price decimal.Decimal, quantity int) error {
	// Full line validation happens in cart.NewItem; the checks here reject
	// obviously broken input before a transaction is opened.
	if err := catalogItemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemId", err)
	}
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("item price")
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.catalogItemID = catalogItemID
	c.name = name
	c.price = price
	c.quantity = quantity
	return nil
}
