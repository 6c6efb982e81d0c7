// Package order provides domain entities and business logic for order management
// in the food-order system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: the aggregate root holding the immutable cart snapshot and the
//     mutable status/delivery envelope around it
//   - Status: the fulfillment state machine
//   - PaymentStatus: the mirrored payment reconciliation state
//   - Address: the delivery destination value object
//   - Item: one frozen line of the order snapshot
//
// Key business rules:
//   - Orders are created only from a non-empty cart snapshot; the total amount
//     is fixed at creation as the sum of price times quantity
//   - Status moves forward through pending, confirmed, preparing, ready,
//     out_for_delivery, delivered; cancelled is reachable from any non-terminal
//     state; delivered and cancelled are terminal
//   - Cancellation appends a timestamped audit line instead of erasing history
//   - Orders are never hard-deleted; account removal redacts contact fields and
//     restaurant removal relabels the restaurant name
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
