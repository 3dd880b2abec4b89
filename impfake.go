// Package impfake is the runtime support for fakes produced by the fakegen tool.
//
// Every generated fake carries an Overrides table with one func field per synthesized member. Calling a member whose
// field is still nil panics with a *NotConfiguredError naming the fake and the member, so a test that forgot to
// configure a collaborator fails at the exact call site instead of silently receiving zero values.
//
// Tests that want to assert on the failure instead of crashing can use Catch:
//
//	err := impfake.Catch(func() { fake.Get("key") })
//	if impfake.IsNotConfigured(err, "Get") { ... }
package impfake

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is matched by every *NotConfiguredError via errors.Is.
var ErrNotConfigured = errors.New("member not configured")

// NotConfiguredError reports a call to a generated member whose override slot was never assigned.
type NotConfiguredError struct {
	Fake   string
	Member string
}

// Error names the fake, the member, and the slot that needs a value.
func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s: %s.%s was called but Overrides.%s is not set", ErrNotConfigured, e.Fake, e.Member, e.Member)
}

// Unwrap lets errors.Is match ErrNotConfigured.
func (e *NotConfiguredError) Unwrap() error {
	return ErrNotConfigured
}

// Catch runs fn and returns the *NotConfiguredError it panicked with, or nil if fn returned normally.
// Any other panic value is re-raised unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}

		notConfigured, ok := recovered.(*NotConfiguredError)
		if !ok {
			panic(recovered)
		}

		err = notConfigured
	}()

	fn()

	return nil
}

// IsNotConfigured reports whether err is a *NotConfiguredError for member. An empty member matches any member.
func IsNotConfigured(err error, member string) bool {
	var notConfigured *NotConfiguredError
	if !errors.As(err, &notConfigured) {
		return false
	}

	return member == "" || notConfigured.Member == member
}

// NotConfigured panics with a *NotConfiguredError for the given fake and member.
// Generated members call it when their override slot is nil.
func NotConfigured(fake, member string) {
	panic(&NotConfiguredError{Fake: fake, Member: member})
}
