// Package emptybase declares an open base that has nothing to synthesize.
package emptybase

// Plugin is an extension point with no members of its own.
//
//impfake:kind open
type Plugin struct{}
