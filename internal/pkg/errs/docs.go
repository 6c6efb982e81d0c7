// Package errs provides standardized error types for the food-order application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed or missing input
//   - ObjectNotFoundError: a cart, order, or line item cannot be found
//   - ForbiddenError: a role or ownership check failed
//   - InvalidOrderStateError: an order's status does not permit the operation
//   - EmptyCartError: order creation attempted from a cart with no items
//   - InfrastructureError: a store or broker dependency is unavailable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter maps the sentinels onto response codes; everything else in the
// application classifies errors exclusively through errors.Is against the sentinels.
package errs
