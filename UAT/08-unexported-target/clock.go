// Package unexported keeps its clock private, so the clock's fake is private too.
package unexported

import "strconv"

// clock tells the time in seconds.
type clock interface {
	now() int64
}

// stamp formats the current time.
func stamp(c clock) string {
	return strconv.FormatInt(c.now(), 10)
}
