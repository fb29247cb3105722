// Package user holds the User aggregate, its Role and the Actor performing an operation.
//
// Two roles exist: SUPER_ADMIN operates zones, vehicles and manual order
// transitions, MSME shippers submit and cancel their own orders.
package user
