package order

import (
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one line of an order's snapshot. Unlike a cart line it is frozen:
// once the order exists, later catalog or price changes never alter it.
type Item struct {
	catalogItemID kernel.UUID
	name          string
	price         decimal.Decimal
	imageURL      string
	quantity      int
	note          string

	isConstructed bool
}

// ErrOrderItemIsNotConstructed is returned when an Item was not created through
// NewItem or SnapshotCartItems.
var ErrOrderItemIsNotConstructed = errors.New("order Item must be created via NewItem constructor")

// maxQuantity mirrors the cart line cap; a snapshot line can never hold more
// than a cart line could.
const maxQuantity = 99

// NewItem creates a validated snapshot line. Used by repositories when
// reconstructing orders; business code builds lines through SnapshotCartItems.
func NewItem(catalogItemID kernel.UUID, name string, price decimal.Decimal, imageURL string, quantity int, note string) (Item, error) {
	if err := catalogItemID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if price.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("item price")
	}
	if quantity < 1 || quantity > maxQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}

	return Item{
		catalogItemID: catalogItemID,
		name:          name,
		price:         price,
		imageURL:      imageURL,
		quantity:      quantity,
		note:          note,
		isConstructed: true,
	}, nil
}

// SnapshotCartItems copies cart lines by value into order snapshot lines.
func SnapshotCartItems(lines []cart.Item) ([]Item, error) {
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		item, err := NewItem(
			line.CatalogItemID(),
			line.Name(),
			line.Price(),
			line.ImageURL(),
			line.Quantity(),
			line.Note(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Validate ensures the Item was constructed through a constructor.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// CatalogItemID returns the catalog item id recorded in the snapshot.
func (i Item) CatalogItemID() kernel.UUID { return i.catalogItemID }

// Name returns the item name at order time.
func (i Item) Name() string { return i.name }

// Price returns the unit price at order time.
func (i Item) Price() decimal.Decimal { return i.price }

// ImageURL returns the image link at order time.
func (i Item) ImageURL() string { return i.imageURL }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int { return i.quantity }

// Note returns the free-text note attached to the line.
func (i Item) Note() string { return i.note }

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}
