package img2ascii

import (
	"slices"
	"strings"
)

// Printable ASCII bounds.
const (
	FirstPrintable = ' '
	LastPrintable  = '~'
)

// CharSet is an unordered set of characters. Use Sorted to obtain the
// canonical (ascending code point) order the matcher works in.
type CharSet map[rune]struct{}

// NewCharSet returns a set holding the given runes.
func NewCharSet(runes ...rune) CharSet {
	s := make(CharSet, len(runes))
	for _, r := range runes {
		s[r] = struct{}{}
	}
	return s
}

// CharSetFromString returns a set of every rune in str.
func CharSetFromString(str string) CharSet {
	return NewCharSet([]rune(str)...)
}

// Add inserts r.
func (s CharSet) Add(r rune) {
	s[r] = struct{}{}
}

// Remove deletes r if present.
func (s CharSet) Remove(r rune) {
	delete(s, r)
}

// AddRange inserts every rune between a and b inclusive. The bounds may be
// given in either order.
func (s CharSet) AddRange(a, b rune) {
	if a > b {
		a, b = b, a
	}
	for r := a; r <= b; r++ {
		s[r] = struct{}{}
	}
}

// RemoveRange deletes every rune between a and b inclusive. The bounds may
// be given in either order.
func (s CharSet) RemoveRange(a, b rune) {
	if a > b {
		a, b = b, a
	}
	for r := a; r <= b; r++ {
		delete(s, r)
	}
}

// Clear removes every rune.
func (s CharSet) Clear() {
	clear(s)
}

// Contains reports whether r is in the set.
func (s CharSet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Len returns the number of runes in the set.
func (s CharSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s CharSet) Clone() CharSet {
	c := make(CharSet, len(s))
	for r := range s {
		c[r] = struct{}{}
	}
	return c
}

// Sorted returns the runes in ascending code point order.
func (s CharSet) Sorted() []rune {
	runes := make([]rune, 0, len(s))
	for r := range s {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}

// String returns the sorted runes separated by spaces.
func (s CharSet) String() string {
	var sb strings.Builder
	for i, r := range s.Sorted() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
