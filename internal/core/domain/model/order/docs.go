// Package order provides the Order aggregate of the ordering service.
//
// The package includes:
//   - Order: aggregate root owning its items, created in the Placed status
//   - Item: a (product, quantity) line that only exists inside an Order
//   - Status: an open, free-text lifecycle label
//   - TransitionPolicy: the seam where workflow rules can be plugged in
//
// Key business rules:
//   - An order belongs to one user and has at least one item when created
//   - Items are never added or removed after creation
//   - Any status may follow any other under PermissiveTransitions
//   - Creation timestamps are recorded CreatedAtOffset before capture time
package order
