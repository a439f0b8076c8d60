package palindrome

import "fmt"

// Table is the square palindrome table of a string, indexed by unit
// positions (code points, or single bytes that are not valid UTF-8).
// It is immutable once built.
type Table struct {
	n     int
	cells [][]bool // cells[start][end], only start <= end is meaningful
}

// Span is an inclusive range [Start, End] of unit indices.
// The zero-length span is {0, -1}.
type Span struct {
	Start, End int
}

// Len returns the number of units covered by the span.
func (sp Span) Len() int { return sp.End - sp.Start + 1 }

// NewTable builds the palindrome table for s.
func NewTable(s string) *Table {
	keys, _ := decode(s)
	t, _ := build(keys)

	return t
}

// Len returns the side length of the table, i.e. the unit count of s.
func (t *Table) Len() int { return t.n }

// IsPalindrome reports whether the units start..end (inclusive) form a palindrome.
func (t *Table) IsPalindrome(start, end int) (bool, error) {
	if start < 0 || end >= t.n || start > end {
		return false, fmt.Errorf("span [%d,%d] of %d units: %w", start, end, t.n, ErrOutOfRange)
	}

	return t.cells[start][end], nil
}

// build fills the table and tracks the first strictly-longest palindrome.
//
//  1. cells[i][i] = true.
//  2. For i = 0..n-1, j = 0..i-1:
//     cells[j][i] = r[j]==r[i] && (i-j <= 2 || cells[j+1][i-1]).
//  3. A true cell longer than the best so far becomes the best.
func build(r []rune) (*Table, Span) {
	n := len(r)
	cells := make([][]bool, n)
	for i := range cells {
		cells[i] = make([]bool, n)
	}

	best := Span{Start: 0, End: -1}
	if n > 0 {
		best.End = 0
	}

	for i := 0; i < n; i++ {
		cells[i][i] = true
		for j := 0; j < i; j++ {
			if r[j] != r[i] || (i-j > 2 && !cells[j+1][i-1]) {
				continue
			}
			cells[j][i] = true
			if i-j+1 > best.Len() {
				best = Span{Start: j, End: i}
			}
		}
	}

	return &Table{n: n, cells: cells}, best
}
