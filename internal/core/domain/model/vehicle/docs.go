// Package vehicle holds the per-unit stock status machine
// (IN_STOCK -> RESERVED -> RELEASED) driven by the warehouse release workflow.
package vehicle
