// Package generic declares a parameterized contract.
package generic

// Cache stores values by key.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V)
}
