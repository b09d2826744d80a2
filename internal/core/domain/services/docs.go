// Package services provides domain services that operate across the status
// machines of multiple entity kinds.
//
// The package includes:
//   - StatusMachine: a kind-keyed facade over every entity's transition table,
//     answering "is this wire-level transition legal" without loading the
//     entity itself
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
