package order

import (
	"errors"
	"fmt"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"
)

// ErrDetailIsNotConstructed is returned when a Detail was not created through NewDetail.
var ErrDetailIsNotConstructed = errors.New("Detail must be created via NewDetail constructor")

// Detail is one order line: a vehicle type variant, a quantity and the
// wholesale unit price snapshotted at order creation. Details are owned
// exclusively by their order and immutable after creation.
type Detail struct {
	vehicleTypeDetailID kernel.ID
	quantity            int
	unitWholesalePrice  kernel.Money
	discount            kernel.Discount

	isConstructed bool
}

// NewDetail creates a validated order line.
// The unit price is a snapshot: later catalogue price changes never affect an
// existing order.
func NewDetail(
	vehicleTypeDetailID kernel.ID,
	quantity int,
	unitWholesalePrice kernel.Money,
	discount kernel.Discount,
) (Detail, error) {
	detail := Detail{isConstructed: true}

	if err := errors.Join(
		detail.setVehicleTypeDetailID(vehicleTypeDetailID),
		detail.setQuantity(quantity),
		detail.setUnitWholesalePrice(unitWholesalePrice),
		detail.setDiscount(discount),
	); err != nil {
		return Detail{}, err
	}

	return detail, nil
}

// Validate ensures the Detail was created through NewDetail.
func (d Detail) Validate() error {
	if !d.isConstructed {
		return ErrDetailIsNotConstructed
	}
	return nil
}

// VehicleTypeDetailID returns the catalogue variant this line refers to.
func (d Detail) VehicleTypeDetailID() kernel.ID {
	return d.vehicleTypeDetailID
}

// Quantity returns the ordered vehicle count.
func (d Detail) Quantity() int {
	return d.quantity
}

// UnitWholesalePrice returns the price snapshot taken at order creation.
func (d Detail) UnitWholesalePrice() kernel.Money {
	return d.unitWholesalePrice
}

// Discount returns the line discount in basis points.
func (d Detail) Discount() kernel.Discount {
	return d.discount
}

// LineTotal returns quantity x unit price with the discount applied,
// in exact integer arithmetic.
func (d Detail) LineTotal() kernel.Money {
	gross := kernel.Money(int64(d.unitWholesalePrice) * int64(d.quantity))
	return d.discount.ApplyTo(gross)
}

func (d *Detail) setVehicleTypeDetailID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.vehicleTypeDetailID = id
	return nil
}

func (d *Detail) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	d.quantity = quantity
	return nil
}

func (d *Detail) setUnitWholesalePrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	d.unitWholesalePrice = price
	return nil
}

func (d *Detail) setDiscount(discount kernel.Discount) error {
	if err := discount.Validate(); err != nil {
		return err
	}
	d.discount = discount
	return nil
}
