package palindrome

import "unicode/utf8"

// decode splits s into comparable units: one per valid code point, and one
// per byte that is not valid UTF-8. An invalid byte b maps to -1-b: it equals
// only the same byte and never a real rune.
//
// off has len(keys)+1 entries; unit k spans s[off[k]:off[k+1]].
func decode(s string) (keys []rune, off []int) {
	keys = make([]rune, 0, len(s))
	off = make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = -1 - rune(s[i])
		}
		keys = append(keys, r)
		off = append(off, i)
		i += size
	}
	off = append(off, len(s))

	return keys, off
}
