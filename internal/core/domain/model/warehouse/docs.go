// Package warehouse contains the WarehouseReleaseNote aggregate. A note moves
// PENDING_APPROVAL -> CREATED -> PROCESSING -> RELEASED (with cancellation
// branches) and drives its vehicles' stock statuses through declarative
// VehicleEffect values, so the aggregate never reaches into the vehicle
// package itself.
//
// Key business rules:
//   - The agency, employee, release date and vehicle set are fixed at
//     creation; later edits touch only note, reason and status
//   - Vehicles are reserved when the note leaves PENDING_APPROVAL, released
//     on RELEASED, and returned to stock on cancellation after approval
//   - Only a PENDING_APPROVAL note may be deleted
package warehouse
