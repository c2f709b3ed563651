package modberg

import "math"

// Coefficient is the Aldrich–Paynter closed form replacing the traditional
// μ–α correction chart:
//
//	λ = 1 / sqrt(1 + μ·(α + 0.5))
//
// λ corrects the simple Stefan solution for sensible heat stored in the
// soil mass. The result is rounded to two decimal places, half away from
// zero, reproducing the granularity of the chart lookup; the rounding is
// part of the computation, not a display concern, because downstream UFC
// depth comparisons assume a two-decimal λ.
//
// When the radicand is not positive the chart-equivalent coefficient is
// undefined and a *DomainError is returned instead of a NaN or Inf.
func Coefficient(mu, alpha float64) (float64, error) {
	radicand := 1 + mu*(alpha+0.5)
	if radicand <= 0 {
		return 0, &DomainError{Quantity: "lambda", Radicand: radicand}
	}
	lambda := 1 / math.Sqrt(radicand)
	return math.Round(lambda*100) / 100, nil
}
