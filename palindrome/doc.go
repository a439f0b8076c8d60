// Package palindrome finds the longest palindromic substring of a string
// with a bottom-up dynamic-programming table.
//
// The table cell (start, end) is true iff the characters s[start..end] read the
// same forwards and backwards. Ends are filled left to right and, for each
// end, starts left to right, so the inner span (start+1, end-1) is always
// ready when (start, end) is computed.
//
// Ties between equally long palindromes go to the one found first in that
// order; a longer palindrome replaces the current best only when it is
// strictly longer.
//
// Characters are code points, so multi-byte UTF-8 input is handled per rune.
// A byte that is not valid UTF-8 counts as one character of its own and is
// only equal to the same byte.
//
//	Time   = O(n²)
//	Memory = O(n²)
package palindrome
