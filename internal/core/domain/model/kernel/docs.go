// Package kernel contains the shared value objects of the dealership domain:
// opaque entity identifiers, fixed-point monetary amounts and discount
// percentages. All aggregates build on these types, so their validation rules
// are the lowest-level invariants of the model.
//
// Monetary amounts are int64 minor currency units to keep arithmetic exact;
// discounts are integer basis points for the same reason. Floating point never
// enters a money calculation.
package kernel
