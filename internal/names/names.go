// Package names implements the symbol and label managers: monotonically
// increasing temp (t0, t1, ...) and label (L0, L1, ...) name generators,
// each a struct wrapping a single incrementing int behind a New
// constructor, kept as two independent counters.
package names

import "strconv"

// Temps allocates fresh temporary-variable names, t0, t1, t2, ....
type Temps struct {
	next int
}

// New returns the next fresh temp name.
func (t *Temps) New() string {
	n := t.next
	t.next++
	return "t" + strconv.Itoa(n)
}

// Labels allocates fresh label names, L0, L1, L2, ....
type Labels struct {
	next int
}

// New returns the next fresh label name.
func (l *Labels) New() string {
	n := l.next
	l.next++
	return "L" + strconv.Itoa(n)
}
