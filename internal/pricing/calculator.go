package pricing

import (
	"fmt"
	"math"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
)

const basisPoints = 10_000

// Calculator applies the tax and service-charge policy to a stay.
// Rates are held in basis points so that every amount stays an exact integer.
type Calculator struct {
	taxBP     int64
	serviceBP int64
}

// NewCalculator takes rates as fractions, e.g. 0.10 for ten percent.
func NewCalculator(taxRate, serviceRate float64) (*Calculator, error) {
	if taxRate < 0 || serviceRate < 0 {
		return nil, fmt.Errorf("%w: rates must not be negative", domain.ErrValidation)
	}
	return &Calculator{
		taxBP:     int64(math.Round(taxRate * basisPoints)),
		serviceBP: int64(math.Round(serviceRate * basisPoints)),
	}, nil
}

// Price computes nights * rate plus tax and service charge.
func (c *Calculator) Price(nightlyRate domain.Money, r domain.DateRange) domain.PriceBreakdown {
	nights := r.Nights()
	subtotal := domain.Money(nights) * nightlyRate
	tax := applyRate(subtotal, c.taxBP)
	service := applyRate(subtotal, c.serviceBP)

	return domain.PriceBreakdown{
		Nights:        nights,
		NightlyRate:   nightlyRate,
		Subtotal:      subtotal,
		Tax:           tax,
		ServiceCharge: service,
		Total:         subtotal + tax + service,
	}
}

// applyRate rounds half away from zero.
func applyRate(amount domain.Money, bp int64) domain.Money {
	v := int64(amount) * bp
	if v >= 0 {
		return domain.Money((v + basisPoints/2) / basisPoints)
	}
	return domain.Money((v - basisPoints/2) / basisPoints)
}
