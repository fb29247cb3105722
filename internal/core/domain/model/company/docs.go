// Package company holds the Company aggregate owning shipper accounts.
package company
