// Package order provides the Order aggregate and its status lifecycle, the
// core domain of the logistics back office.
//
// The package includes:
//   - Order: the aggregate root holding client/product references, quantity,
//     computed value, an optional invoice document reference, and the status
//   - Status: the closed set of lifecycle tokens with the forward and
//     return/cancellation subsequences and the terminal-state guard
//
// Key business rules:
//   - Orders are created in PEDIDO_REALIZADO with value = price x quantity
//   - Relations are stored as foreign keys and resolved explicitly
//   - Terminal statuses (delivered, returned, cancelled) accept no further
//     transition; every other transition is accepted
//   - Return-flow statuses route to the collaborator's dedicated
//     return/cancellation endpoint
package order
