// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dealership/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// NoteRepoFactory provides access to the release note repository within a transaction.
	NoteRepoFactory interface {
		WarehouseReleaseNoteRepository() ports.WarehouseReleaseNoteRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// ImportRequestRepoFactory provides access to the import request repository
	// within a transaction.
	ImportRequestRepoFactory interface {
		ImportRequestRepository() ports.ImportRequestRepository
	}

	// AppointmentRepoFactory provides access to the appointment repository
	// within a transaction.
	AppointmentRepoFactory interface {
		AppointmentRepository() ports.AppointmentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderLifecycleUoW manages transactions for order transitions, which read
	// the payment ledger and the delivery record and may write all three.
	OrderLifecycleUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		DeliveryRepoFactory
	}

	// OrderLifecycleUoWFactory creates new order lifecycle unit of work instances.
	OrderLifecycleUoWFactory interface {
		Create() OrderLifecycleUoW
	}

	// PaymentUoW manages transactions for payment operations, which also read
	// the owning order.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// DeliveryUoW manages transactions for delivery operations, which also
	// read the owning order.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// WarehouseUoW manages transactions for the release workflow, which moves
	// a note and its vehicles atomically.
	WarehouseUoW interface {
		TxManager
		NoteRepoFactory
		VehicleRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// ImportRequestUoW manages transactions for import request operations.
	ImportRequestUoW interface {
		TxManager
		ImportRequestRepoFactory
	}

	// ImportRequestUoWFactory creates new import request unit of work instances.
	ImportRequestUoWFactory interface {
		Create() ImportRequestUoW
	}

	// AppointmentUoW manages transactions for appointment operations.
	AppointmentUoW interface {
		TxManager
		AppointmentRepoFactory
	}

	// AppointmentUoWFactory creates new appointment unit of work instances.
	AppointmentUoWFactory interface {
		Create() AppointmentUoW
	}
)
