// Package overloads declares a contract with an overload group and a property.
package overloads

// Formatter formats numbers.
type Formatter interface {
	// FormatOne formats a single number.
	//
	//impfake:overload Format
	FormatOne(n int) string

	// FormatTwo formats a pair of numbers.
	//
	//impfake:overload Format
	FormatTwo(a, b int) string

	Precision() int
	SetPrecision(p int)
}
