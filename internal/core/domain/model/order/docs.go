// Package order contains the agency order aggregate: the order header, its
// immutable detail lines and the order status machine.
//
// An order is created with at least one detail line; the grand total is derived
// from the lines at creation time and the lines never change afterwards — a
// correction is cancel-and-recreate. Status transitions that depend on sibling
// entities (payments, the vehicle delivery) receive those facts as a read-only
// TransitionContext snapshot, so the aggregate stays free of storage concerns.
package order
