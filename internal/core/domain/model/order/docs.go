// Package order holds the Order aggregate and its Status state machine.
//
// An order records who ships what from where: item label, dimensions in
// centimetres, weight in kilograms and a pickup point. Its volume in cubic
// metres is always derived from the dimensions.
//
// Key business rules:
//   - new orders start Pending with no vehicle
//   - Assign and Unassign are administrative overrides that force Assigned or Pending
//   - only Pending orders can be cancelled
//   - only Assigned orders can be shipped
package order
