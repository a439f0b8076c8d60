// Package triplet finds the maximum value of an ordered triplet
// (nums[i] - nums[j]) * nums[k] with i < j < k.
//
// 🚀 What is the ordered-triplet value?
//
//	For every middle index j the best i is the largest value strictly
//	before j and the best k is the largest value strictly after j.
//	Two running-maximum arrays (prefix and suffix) answer both questions
//	in O(1) per j, so the whole search is linear.
//
// ✨ Key features:
//   - MaximumTripletValue: the value only, floored at 0
//   - Best: the value together with the indices that realize it
//   - PrefixMax / SuffixMax: the auxiliary running-maximum arrays
//   - Brute: O(N³) enumeration, kept as a reference oracle
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvpuzzle/triplet"
//
//	v := triplet.MaximumTripletValue([]int{12, 6, 1, 2, 7}) // 77
//	t := triplet.Best([]int{12, 6, 1, 2, 7})                // {I:0 J:2 K:4 Value:77 Found:true}
//
// Performance:
//
//   - Time:   O(N)
//   - Memory: O(N) (two auxiliary arrays, allocated per call)
//
// Every function is pure and safe for concurrent use.
package triplet
