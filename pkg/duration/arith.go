package duration

import (
	"fmt"
	"math"

	"github.com/JohnCGriffin/overflow" // Checked integer arithmetic.
)

// Add returns d+o. It returns ErrInvalidDuration if the sum
// overflows.
func (d Duration) Add(o Duration) (Duration, error) {
	sum, ok := overflow.Add64(d.ns, o.ns)
	if !ok {
		return Zero, fmt.Errorf("%s + %s overflows: %w", d, o, ErrInvalidDuration)
	}
	return fromInt(sum), nil
}

// Sub returns d-o, or zero if o is longer than d.
// Sub never fails.
func (d Duration) Sub(o Duration) Duration {
	// Both operands are >= 0, so this can't overflow.
	return fromInt(d.ns - o.ns)
}

// Mul returns d scaled by f. A negative product saturates to zero.
// It returns ErrInvalidDuration if f is not finite or the product
// overflows.
func (d Duration) Mul(f float64) (Duration, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero, fmt.Errorf("%s * %v: %w", d, f, ErrInvalidDuration)
	}
	if f < 0 || d.ns == 0 {
		return Zero, nil
	}
	if f == math.Trunc(f) && math.Abs(f) < maxFloat {
		// Integral factors are multiplied exactly.
		p, ok := overflow.Mul64(d.ns, int64(f))
		if !ok {
			return Zero, fmt.Errorf("%s * %v overflows: %w", d, f, ErrInvalidDuration)
		}
		return fromInt(p), nil
	}
	p, err := validate(float64(d.ns) * f)
	if err != nil {
		return Zero, fmt.Errorf("%s * %v: %w", d, f, err)
	}
	return p, nil
}

// Div returns d divided by x. A negative quotient saturates to zero.
// It returns ErrDivideByZero if x is zero, and ErrInvalidDuration
// if x is not finite.
func (d Duration) Div(x float64) (Duration, error) {
	if x == 0 {
		return Zero, fmt.Errorf("%s / %v: %w", d, x, ErrDivideByZero)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Zero, fmt.Errorf("%s / %v: %w", d, x, ErrInvalidDuration)
	}
	q, err := validate(float64(d.ns) / x)
	if err != nil {
		return Zero, fmt.Errorf("%s / %v: %w", d, x, err)
	}
	return q, nil
}
