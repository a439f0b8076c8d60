package palindrome

// LongestPalindrome returns the longest palindromic substring of s.
// Strings of at most one unit are returned unchanged. The result is always
// sliced from s, so invalid UTF-8 bytes come back as they were.
func LongestPalindrome(s string) string {
	keys, off := decode(s)
	if len(keys) <= 1 {
		return s
	}
	_, sp := build(keys)

	return s[off[sp.Start]:off[sp.End+1]]
}

// Longest returns the unit span of the longest palindromic substring of s.
// An empty s yields the zero-length span {0, -1}.
func Longest(s string) Span {
	keys, _ := decode(s)
	_, sp := build(keys)

	return sp
}

// IsPalindrome reports whether s reads the same unit by unit in both directions.
func IsPalindrome(s string) bool {
	keys, _ := decode(s)
	for l, h := 0, len(keys)-1; l < h; l, h = l+1, h-1 {
		if keys[l] != keys[h] {
			return false
		}
	}

	return true
}
