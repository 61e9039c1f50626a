package session

import "strings"

// Accumulator reduces transcript fragments into one running answer string for
// the active question. It is not safe for concurrent use on its own; the
// Controller serializes access.
type Accumulator struct {
	b strings.Builder
}

// Append concatenates a fragment in arrival order.
func (a *Accumulator) Append(fragment string) {
	a.b.WriteString(fragment)
}

// Reset clears the buffer. Called on question change and after a grade has
// been taken off the buffer.
func (a *Accumulator) Reset() {
	a.b.Reset()
}

func (a *Accumulator) String() string {
	return a.b.String()
}

func (a *Accumulator) Len() int {
	return a.b.Len()
}
