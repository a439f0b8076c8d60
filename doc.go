// Package lvpuzzle collects small, self-contained algorithm solutions, each
// in its own package with no shared state.
//
// 🚀 What is inside?
//
//	triplet/    — maximum (nums[i] - nums[j]) * nums[k] over i < j < k,
//	              via prefix/suffix running maxima, O(N)
//	palindrome/ — longest palindromic substring via a DP table, O(n²)
//	median/     — median of two sorted slices via binary partition search,
//	              O(log min(N,M))
//
// ✨ Why this layout?
//
//   - Pure functions – no I/O, no globals, safe for concurrent callers
//   - Reference oracles – every fast path ships with a brute-force twin
//     (triplet.Brute, palindrome.IsPalindrome, median.MergedMedian)
//   - Pure Go – no cgo; third-party modules are used in tests only
//
// Quick example:
//
//	triplet.MaximumTripletValue([]int{12, 6, 1, 2, 7})   // 77
//	palindrome.LongestPalindrome("cbbd")                 // "bb"
//	median.FindMedianSortedArrays([]int{1, 3}, []int{2}) // 2
//
//	go get github.com/katalvlaran/lvpuzzle
package lvpuzzle
