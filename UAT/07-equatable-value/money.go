// Package equatable declares value aggregates with structural equality.
package equatable

// Money is an amount in cents.
type Money struct {
	Cents int64
}

// Equal reports whether both amounts hold the same number of cents.
func (m Money) Equal(other Money) bool {
	return m.Cents == other.Cents
}

// Token has no fields; it is equatable by declaration only.
//
//impfake:kind equatable
type Token struct{}
