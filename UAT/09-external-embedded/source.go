// Package stream declares a contract assembled from standard library interfaces.
package stream

import "io"

// Source is a named, readable stream that must be closed.
type Source interface {
	io.Reader
	io.Closer

	Name() string
}

// Drain reads everything from src and closes it.
func Drain(src Source) ([]byte, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		_ = src.Close()

		return nil, err
	}

	return data, src.Close()
}
