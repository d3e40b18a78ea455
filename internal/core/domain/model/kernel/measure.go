package kernel

import (
	"fmt"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMeasureIsNotConstructed = errs.NewValueIsRequiredError("Measure must be created via NewWeight or NewDimension")

// Unit is the unit of a Measure.
type Unit string

const (
	Gram       Unit = "g"
	Kilogram   Unit = "kg"
	Ounce      Unit = "oz"
	Pound      Unit = "lb"
	Millimetre Unit = "mm"
	Centimetre Unit = "cm"
	Metre      Unit = "m"
	Inch       Unit = "in"
	Foot       Unit = "ft"
)

var (
	weightUnits    = map[Unit]struct{}{Gram: {}, Kilogram: {}, Ounce: {}, Pound: {}}
	dimensionUnits = map[Unit]struct{}{Millimetre: {}, Centimetre: {}, Metre: {}, Inch: {}, Foot: {}}
)

// Measure is a non-negative decimal quantity with a unit. Weights and
// dimensions share the type but accept different unit sets.
type Measure struct {
	value decimal.Decimal
	unit  Unit
	guard guard.ConstructorGuard
}

func NewWeight(value decimal.Decimal, unit Unit) (Measure, error) {
	return newMeasure("weight", value, unit, weightUnits)
}

func NewDimension(value decimal.Decimal, unit Unit) (Measure, error) {
	return newMeasure("dimension", value, unit, dimensionUnits)
}

func newMeasure(param string, value decimal.Decimal, unit Unit, units map[Unit]struct{}) (Measure, error) {
	var failures []error
	if value.IsNegative() {
		failures = append(failures, errs.NewValueIsInvalidErrorWithCause(param,
			fmt.Errorf("%s is negative", value)))
	}
	if _, ok := units[unit]; !ok {
		failures = append(failures, errs.NewValueIsInvalidErrorWithCause(param+" unit",
			fmt.Errorf("%q is not a %s unit", unit, param)))
	}
	if len(failures) > 0 {
		return Measure{}, errs.NewDomainErrorWithCause(errs.InvalidMeasure, param+" is invalid",
			value.String()+" "+string(unit), failures...)
	}

	return Measure{value: value, unit: unit, guard: guard.NewConstructorGuard()}, nil
}

func (m Measure) Validate() error {
	return m.guard.Validate(ErrMeasureIsNotConstructed)
}

func (m Measure) Value() decimal.Decimal {
	return m.value
}

func (m Measure) Unit() Unit {
	return m.unit
}

func (m Measure) IsEqual(other Measure) bool {
	return m.unit == other.unit && m.value.Equal(other.value)
}
