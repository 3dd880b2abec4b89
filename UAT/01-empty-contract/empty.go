// Package emptycontract declares a contract with no methods of its own.
package emptycontract

// Empty has no methods. Its fake still carries the four object-protocol hooks.
type Empty interface{}
