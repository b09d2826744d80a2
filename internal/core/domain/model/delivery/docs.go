// Package delivery contains the vehicle delivery aggregate: one delivery per
// confirmed order, with the auto-stamped actual delivery date. Once delivered,
// the record is immutable.
package delivery
