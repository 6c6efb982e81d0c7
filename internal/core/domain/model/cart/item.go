package cart

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a cart line: a catalog item captured with its name, price, and image
// at the moment of adding, plus a quantity and an optional free-text note.
// The denormalized fields shield the cart (and later the order snapshot) from
// catalog edits made after the item was picked.
type Item struct {
	catalogItemID kernel.UUID
	name          string
	price         decimal.Decimal
	imageURL      string
	quantity      int
	note          string

	isConstructed bool
}

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// NewItem creates a validated cart line.
//
// Validation rules:
//   - catalogItemID must be a valid UUID
//   - name must not be empty
//   - price must not be negative
//   - quantity must be at least 1
//
// imageURL and note are optional.
func NewItem(catalogItemID kernel.UUID, name string, price decimal.Decimal, imageURL string, quantity int, note string) (Item, error) {
	item := Item{
		imageURL:      imageURL,
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setCatalogItemID(catalogItemID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// CatalogItemID returns the id of the catalog item this line refers to.
func (i Item) CatalogItemID() kernel.UUID {
	return i.catalogItemID
}

// Name returns the item's name as it was at the time of adding.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price captured at the time of adding.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// ImageURL returns the item's image link captured at the time of adding.
func (i Item) ImageURL() string {
	return i.imageURL
}

// Quantity returns how many units of the item the line holds.
func (i Item) Quantity() int {
	return i.quantity
}

// Note returns the free-text note attached to the line, if any.
func (i Item) Note() string {
	return i.note
}

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setCatalogItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.catalogItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("item price")
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}
	if quantity > maxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}
	i.quantity = quantity
	return nil
}

// maxQuantity caps a single line; an order of more than this per item is a data
// entry mistake, not a purchase.
const maxQuantity = 99
