package palindrome

import "errors"

// ErrOutOfRange is returned by Table lookups outside [0, Len) or with start > end.
var ErrOutOfRange = errors.New("palindrome: index out of range")
