// Package appointment contains the TestDriveAppointment aggregate: a plain
// CRUD record with a two-edge status machine (SCHEDULED -> ARRIVED|CANCELLED)
// whose edit and delete windows close as soon as the appointment does.
package appointment
