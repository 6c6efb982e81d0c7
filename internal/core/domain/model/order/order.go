package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// DeletedRestaurantName replaces the denormalized restaurant name on every order
// of a restaurant that has been removed from the catalog service.
const DeletedRestaurantName = "DELETED RESTAURANT"

// Order is an immutable-snapshot commitment created from a cart, tracked through
// the fulfillment status machine. It is the aggregate root of the order side of
// the system.
//
// Order follows these invariants:
//   - The item snapshot and total amount are fixed at creation; the total always
//     equals the sum of price times quantity over the snapshot
//   - The order number is unique across the system
//   - Status only ever moves forward; delivered and cancelled are terminal
//   - Orders are never hard-deleted: account removal redacts contact fields,
//     restaurant removal relabels the restaurant name
//
// The mutable envelope around the snapshot consists of the status, the payment
// status, the delivery linkage fields, the estimated delivery time, and the
// instructions field, which doubles as an append-only audit trail.
type Order struct {
	// id is the internal unique identifier of the order.
	id kernel.UUID

	// number is the human-readable order number shown to customers.
	number string

	// userID is the customer who placed the order.
	userID kernel.UUID

	// restaurantID and restaurantName identify the restaurant at order time.
	restaurantID   kernel.UUID
	restaurantName string

	// items is the snapshot copied by value from the cart.
	items []Item

	// status is the current state in the fulfillment lifecycle.
	status Status

	// totalAmount is the snapshot sum, never recomputed after creation.
	totalAmount decimal.Decimal

	// address is the delivery destination.
	address Address

	// contactPhone is the customer's phone for this delivery.
	contactPhone string

	// paymentMethod is the customer-chosen method; paymentStatus mirrors the
	// payment service.
	paymentMethod string
	paymentStatus PaymentStatus

	// estimatedDeliveryTime is set by staff alongside status updates.
	estimatedDeliveryTime *time.Time

	// specialInstructions carries free text plus appended audit lines.
	specialInstructions string

	// delivery linkage produced by the external delivery subsystem.
	deliveryID         *kernel.UUID
	deliveryPersonID   *kernel.UUID
	deliveryPersonName string

	// isConstructed ensures the order was created via a constructor.
	isConstructed bool
}

// NewOrder creates a pending order from a non-empty item snapshot.
//
// The total amount is computed here, once, as the sum of price times quantity
// over the snapshot, and never changes afterwards. Payment starts pending.
func NewOrder(
	id kernel.UUID,
	number string,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	restaurantName string,
	items []Item,
	address Address,
	contactPhone string,
	paymentMethod string,
	specialInstructions string,
) (*Order, error) {
	o := &Order{
		status:              Pending,
		paymentStatus:       PaymentPending,
		paymentMethod:       paymentMethod,
		specialInstructions: specialInstructions,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setUserID(userID),
		o.setRestaurant(restaurantID, restaurantName),
		o.setItems(items),
		o.setAddress(address),
		o.setContactPhone(contactPhone),
	); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.totalAmount = total

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without recomputing the
// total: the stored amount is the amount, even when a later recomputation over
// a redacted record would disagree. The snapshot is the source of truth.
func RestoreOrder(
	id kernel.UUID,
	number string,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	restaurantName string,
	items []Item,
	status Status,
	totalAmount decimal.Decimal,
	address Address,
	contactPhone string,
	paymentMethod string,
	paymentStatus PaymentStatus,
	estimatedDeliveryTime *time.Time,
	specialInstructions string,
	deliveryID *kernel.UUID,
	deliveryPersonID *kernel.UUID,
	deliveryPersonName string,
) (*Order, error) {
	o, err := NewOrder(id, number, userID, restaurantID, restaurantName, items, address, contactPhone, paymentMethod, specialInstructions)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.totalAmount = totalAmount
	o.paymentStatus = paymentStatus
	o.estimatedDeliveryTime = estimatedDeliveryTime
	o.deliveryID = deliveryID
	o.deliveryPersonID = deliveryPersonID
	o.deliveryPersonName = deliveryPersonName
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the human-readable order number.
func (o *Order) Number() string { return o.number }

// UserID returns the customer who placed the order.
func (o *Order) UserID() kernel.UUID { return o.userID }

// RestaurantID returns the restaurant the order was placed with.
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }

// RestaurantName returns the denormalized restaurant name.
func (o *Order) RestaurantName() string { return o.restaurantName }

// Items returns a copy of the snapshot lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status { return o.status }

// TotalAmount returns the snapshot total fixed at creation time.
func (o *Order) TotalAmount() decimal.Decimal { return o.totalAmount }

// Address returns the delivery destination.
func (o *Order) Address() Address { return o.address }

// ContactPhone returns the delivery contact phone.
func (o *Order) ContactPhone() string { return o.contactPhone }

// PaymentMethod returns the customer-chosen payment method, empty when unset.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// PaymentStatus returns the mirrored payment reconciliation state.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// EstimatedDeliveryTime returns the staff-set delivery estimate, nil when unset.
func (o *Order) EstimatedDeliveryTime() *time.Time { return o.estimatedDeliveryTime }

// SpecialInstructions returns the free-text instructions plus audit lines.
func (o *Order) SpecialInstructions() string { return o.specialInstructions }

// DeliveryID returns the externally assigned delivery id, nil when unassigned.
func (o *Order) DeliveryID() *kernel.UUID { return o.deliveryID }

// DeliveryPersonID returns the externally assigned delivery person id, nil when
// unassigned.
func (o *Order) DeliveryPersonID() *kernel.UUID { return o.deliveryPersonID }

// DeliveryPersonName returns the delivery person's display name, empty when
// unassigned.
func (o *Order) DeliveryPersonName() string { return o.deliveryPersonName }

// ChangeStatus moves the order to newStatus, optionally recording an estimated
// delivery time. Vocabulary membership is checked and terminal states cannot be
// left; stage skipping within the non-terminal sequence is allowed.
func (o *Order) ChangeStatus(newStatus Status, estimatedDeliveryTime *time.Time) error {
	next, err := o.status.ChangeTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	if estimatedDeliveryTime != nil {
		o.estimatedDeliveryTime = estimatedDeliveryTime
	}
	return nil
}

// Cancel moves the order to cancelled and appends a timestamped audit line to
// the instructions field. cancelledBy names the acting role ("customer",
// "restaurant_admin", "system", ...). Fails when the order is delivered.
func (o *Order) Cancel(reason, cancelledBy string, at time.Time) error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = next
	if reason == "" {
		reason = "no reason given"
	}
	o.appendAudit(at, fmt.Sprintf("cancelled by %s: %s", cancelledBy, reason))
	return nil
}

// UpdateDetails edits the delivery address, contact phone, or special
// instructions. Permitted only while the order is pending; nil fields are left
// untouched.
func (o *Order) UpdateDetails(address *Address, contactPhone *string, specialInstructions *string) error {
	if o.status != Pending {
		return errs.NewInvalidOrderStateError(
			fmt.Sprintf("Can only update details of a pending order, current status is %s", o.status),
			o.status.String(),
		)
	}

	if address != nil {
		if err := o.setAddress(*address); err != nil {
			return err
		}
	}
	if contactPhone != nil {
		if err := o.setContactPhone(*contactPhone); err != nil {
			return err
		}
	}
	if specialInstructions != nil {
		o.specialInstructions = *specialInstructions
	}
	return nil
}

// AssignDelivery attaches the identifiers produced by the external delivery
// subsystem. deliveryID is required; the person fields may follow later.
func (o *Order) AssignDelivery(deliveryID kernel.UUID, deliveryPersonID *kernel.UUID, deliveryPersonName string) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryId", err)
	}
	if deliveryPersonID != nil {
		if err := deliveryPersonID.Validate(); err != nil {
			return err
		}
	}

	o.deliveryID = &deliveryID
	o.deliveryPersonID = deliveryPersonID
	o.deliveryPersonName = deliveryPersonName
	return nil
}

// SetPaymentStatus mirrors a payment service fact onto the order.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

// Redact overwrites the order's personal fields with the redaction sentinel
// after the owning account has been deleted. The snapshot, amounts, and status
// history stay intact.
func (o *Order) Redact(at time.Time) {
	o.contactPhone = RedactedValue
	o.address = RedactedAddress()
	o.appendAudit(at, "account deleted, contact details redacted")
}

// MarkRestaurantDeleted relabels the denormalized restaurant name after the
// restaurant has been removed from the catalog.
func (o *Order) MarkRestaurantDeleted() {
	o.restaurantName = DeletedRestaurantName
}

func (o *Order) appendAudit(at time.Time, line string) {
	entry := fmt.Sprintf("[%s] %s", at.UTC().Format(time.RFC3339), line)
	if o.specialInstructions == "" {
		o.specialInstructions = entry
		return
	}
	o.specialInstructions += "\n" + entry
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setRestaurant(restaurantID kernel.UUID, restaurantName string) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	if restaurantName == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	o.restaurantID = restaurantID
	o.restaurantName = restaurantName
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setContactPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("contactPhone")
	}
	o.contactPhone = phone
	return nil
}
