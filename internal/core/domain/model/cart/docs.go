// Package cart provides the domain model for a user's shopping cart in the
// food-order system.
//
// The package includes:
//   - Cart: the aggregate root holding a user's restaurant-bound selection
//   - Item: a line capturing a catalog item's identity, price, and image at add time
//
// Key business rules:
//   - One cart per user; the user id is the cart's identity
//   - All lines belong to the cart's bound restaurant; adding a line from a
//     different restaurant clears the cart and rebinds it
//   - Re-adding an existing catalog item merges quantities instead of duplicating lines
//   - The cart total is always the sum of price times quantity over its lines
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package cart
