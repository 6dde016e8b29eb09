package parcel

import (
	"parcels/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	DefaultBaseFee  = decimal.NewFromInt(5000)
	DefaultPerKgFee = decimal.NewFromInt(1000)
)

// Tariff prices a shipment: BaseFee + weight × PerKgFee.
type Tariff struct {
	baseFee  decimal.Decimal
	perKgFee decimal.Decimal
}

// NewTariff rejects negative fees.
func NewTariff(baseFee, perKgFee decimal.Decimal) (Tariff, error) {
	if baseFee.IsNegative() {
		return Tariff{}, errs.NewValueIsOutOfRangeError("base_fee", baseFee, decimal.Zero, "unbounded")
	}
	if perKgFee.IsNegative() {
		return Tariff{}, errs.NewValueIsOutOfRangeError("per_kg_fee", perKgFee, decimal.Zero, "unbounded")
	}
	return Tariff{baseFee: baseFee, perKgFee: perKgFee}, nil
}

// DefaultTariff charges 5000 plus 1000 per kilogram.
func DefaultTariff() Tariff {
	return Tariff{baseFee: DefaultBaseFee, perKgFee: DefaultPerKgFee}
}

// Cost returns the price of a parcel weighing weight kilograms, rounded to cents.
func (t Tariff) Cost(weight decimal.Decimal) decimal.Decimal {
	return t.baseFee.Add(weight.Mul(t.perKgFee)).Round(2)
}

func (t Tariff) BaseFee() decimal.Decimal { return t.baseFee }

func (t Tariff) PerKgFee() decimal.Decimal { return t.perKgFee }
