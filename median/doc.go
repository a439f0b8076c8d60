// Package median computes the median of two individually sorted integer
// slices without merging them.
//
// 🚀 How it works
//
//	Binary-search a split point i in the shorter slice A. The split in the
//	longer slice B follows from it (j = half - i - 2), so that A[..i] and
//	B[..j] together hold exactly half of all values. Out-of-range neighbours
//	are ±Inf sentinels, which makes empty slices and edge splits ordinary
//	cases. The split is correct once A[i] <= B[j+1] and B[j] <= A[i+1].
//
// ✨ Key features:
//   - FindMedianSortedArrays: unchecked, O(log min(N,M))
//   - Median: validates input first (ErrEmptyInput, ErrUnsorted)
//   - MergedMedian: linear merge reference
//
// ⚙️ Usage:
//
//	m := median.FindMedianSortedArrays([]int{1, 3}, []int{2}) // 2.0
//
//	m, err := median.Median(a, b)
//	if errors.Is(err, median.ErrUnsorted) {
//	  // handle
//	}
//
// Values are compared and returned as float64; integers beyond ±2⁵³ lose
// precision.
package median
