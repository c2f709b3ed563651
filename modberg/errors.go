package modberg

import "fmt"

// InvalidInputError reports a raw input violating its physical-plausibility
// invariant. It is returned before any derived computation runs.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s=%v: %s", e.Field, e.Value, e.Reason)
}

// DomainError reports a derived quantity leaving the domain of the λ closed
// form. No frost depth can be produced from the offending inputs.
type DomainError struct {
	Quantity string
	Radicand float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s undefined: radicand %v is not positive", e.Quantity, e.Radicand)
}
