package cmd

import (
	httpin "dealership/internal/adapters/in/http"
	"dealership/internal/adapters/out/postgres"
	"dealership/internal/adapters/out/vnpaygw"
	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.VnpayGateway
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	gateway, err := vnpaygw.NewGateway(vnpaygw.Config{
		TmnCode:    config.VnpayTmnCode,
		HashSecret: config.VnpayHashSecret,
		ReturnURL:  config.VnpayReturnURL,
		PayURL:     config.VnpayPayURL,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
	}, nil
}

// CreateHandlers wires every use case the HTTP server exposes.
func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:     commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		TransitionOrder: commands.NewTransitionOrderCommandHandler(c.orderLifecycleUoWFactory()),

		CreatePayment:      commands.NewCreatePaymentCommandHandler(c.paymentUoWFactory()),
		ConfirmCashPayment: commands.NewConfirmCashPaymentCommandHandler(c.paymentUoWFactory()),
		CreateVnpaySession: commands.NewCreateVnpaySessionCommandHandler(c.paymentUoWFactory(), c.gateway),
		ApplyVnpayResult:   commands.NewApplyVnpayResultCommandHandler(c.paymentUoWFactory()),
		DeletePayment:      commands.NewDeletePaymentCommandHandler(c.paymentUoWFactory()),

		CreateDelivery:     commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory()),
		TransitionDelivery: commands.NewTransitionDeliveryCommandHandler(c.deliveryUoWFactory()),
		UpdateDelivery:     commands.NewUpdateDeliveryCommandHandler(c.deliveryUoWFactory()),

		CreateReleaseNote:       commands.NewCreateReleaseNoteCommandHandler(c.warehouseUoWFactory()),
		UpdateReleaseNoteStatus: commands.NewUpdateReleaseNoteStatusCommandHandler(c.warehouseUoWFactory()),
		DeleteReleaseNote:       commands.NewDeleteReleaseNoteCommandHandler(c.warehouseUoWFactory()),

		CreateImportRequest:       commands.NewCreateImportRequestCommandHandler(c.importRequestUoWFactory()),
		UpdateImportRequestStatus: commands.NewUpdateImportRequestStatusCommandHandler(c.importRequestUoWFactory()),

		CreateAppointment:       commands.NewCreateAppointmentCommandHandler(c.appointmentUoWFactory()),
		UpdateAppointment:       commands.NewUpdateAppointmentCommandHandler(c.appointmentUoWFactory()),
		UpdateAppointmentStatus: commands.NewUpdateAppointmentStatusCommandHandler(c.appointmentUoWFactory()),
		DeleteAppointment:       commands.NewDeleteAppointmentCommandHandler(c.appointmentUoWFactory()),

		GetOrder:            queries.NewGetOrderQueryHandler(c.gormDB),
		ListPaymentsByOrder: queries.NewListPaymentsByOrderQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateAccruePenaltiesCommandHandler() commands.AccruePenaltiesCommandHandler {
	return commands.NewAccruePenaltiesCommandHandler(c.paymentUoWFactory(), payment.NewDefaultPenaltyPolicy())
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderLifecycleUoWFactory() commands.OrderLifecycleUoWFactory {
	return FuncOrderLifecycleUoWFactory(func() commands.OrderLifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) warehouseUoWFactory() commands.WarehouseUoWFactory {
	return FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) importRequestUoWFactory() commands.ImportRequestUoWFactory {
	return FuncImportRequestUoWFactory(func() commands.ImportRequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) appointmentUoWFactory() commands.AppointmentUoWFactory {
	return FuncAppointmentUoWFactory(func() commands.AppointmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderLifecycleUoWFactory func() commands.OrderLifecycleUoW

func (f FuncOrderLifecycleUoWFactory) Create() commands.OrderLifecycleUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncImportRequestUoWFactory func() commands.ImportRequestUoW

func (f FuncImportRequestUoWFactory) Create() commands.ImportRequestUoW {
	return f()
}

type FuncAppointmentUoWFactory func() commands.AppointmentUoW

func (f FuncAppointmentUoWFactory) Create() commands.AppointmentUoW {
	return f()
}
