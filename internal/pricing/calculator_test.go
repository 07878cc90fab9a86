package pricing

import (
	"testing"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nights(t *testing.T, in, out string) domain.DateRange {
	t.Helper()
	r, err := domain.ParseDateRange(in, out)
	require.NoError(t, err)
	return r
}

func TestCalculator_Price_ThreeNights(t *testing.T) {
	calc, err := NewCalculator(0.10, 0.05)
	require.NoError(t, err)

	p := calc.Price(1_000_000, nights(t, "2024-06-01", "2024-06-04"))

	assert.Equal(t, 3, p.Nights)
	assert.Equal(t, domain.Money(3_000_000), p.Subtotal)
	assert.Equal(t, domain.Money(300_000), p.Tax)
	assert.Equal(t, domain.Money(150_000), p.ServiceCharge)
	assert.Equal(t, domain.Money(3_450_000), p.Total)
}

func TestCalculator_Price_Deterministic(t *testing.T) {
	calc, err := NewCalculator(0.10, 0.05)
	require.NoError(t, err)
	r := nights(t, "2024-06-01", "2024-06-03")

	assert.Equal(t, calc.Price(800_000, r), calc.Price(800_000, r))
	assert.Equal(t, domain.Money(1_840_000), calc.Price(800_000, r).Total)
}

func TestCalculator_Price_Rounding(t *testing.T) {
	calc, err := NewCalculator(0.10, 0.05)
	require.NoError(t, err)

	p := calc.Price(999, nights(t, "2024-06-01", "2024-06-02"))

	assert.Equal(t, domain.Money(100), p.Tax)
	assert.Equal(t, domain.Money(50), p.ServiceCharge)
	assert.Equal(t, domain.Money(1149), p.Total)
}

func TestCalculator_ZeroRates(t *testing.T) {
	calc, err := NewCalculator(0, 0)
	require.NoError(t, err)

	p := calc.Price(500, nights(t, "2024-06-01", "2024-06-03"))

	assert.Equal(t, domain.Money(1000), p.Total)
}

func TestCalculator_NegativeRate(t *testing.T) {
	_, err := NewCalculator(-0.1, 0.05)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
