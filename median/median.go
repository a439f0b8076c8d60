package median

import (
	"fmt"
	"math"
)

// FindMedianSortedArrays returns the median of the merged contents of two
// ascending slices.
//
// Algorithm Outline:
//  1. Let A be the shorter slice and B the longer; half = (len(A)+len(B)) / 2.
//  2. Binary-search i over [l, r] = [0, len(A)-1], i = ⌊(l+r)/2⌋.
//  3. j = half - i - 2, the last index of B's left part.
//  4. aLeft, aRight = A[i], A[i+1]; bLeft, bRight = B[j], B[j+1]
//     (−Inf / +Inf when out of range).
//  5. If aLeft <= bRight && bLeft <= aRight the split is found:
//     odd total  → min(aRight, bRight)
//     even total → (max(aLeft, bLeft) + min(aRight, bRight)) / 2
//  6. Else if aLeft > bRight → r = i-1, otherwise → l = i+1.
//
// Inputs are not validated; both empty yields NaN. Use Median for checked input.
//
// Complexity:
//
//	Time   = O(log min(N,M))
//	Memory = O(1)
func FindMedianSortedArrays(nums1, nums2 []int) float64 {
	a, b := nums1, nums2
	if len(b) < len(a) {
		a, b = b, a
	}
	total := len(a) + len(b)
	half := total / 2

	l, r := 0, len(a)-1
	for {
		// Floor, not truncation: l=0, r=-1 must give -1.
		i := (l + r) >> 1
		j := half - i - 2

		aLeft, aRight := at(a, i), at(a, i+1)
		bLeft, bRight := at(b, j), at(b, j+1)

		switch {
		case aLeft <= bRight && bLeft <= aRight:
			if total%2 == 1 {
				return math.Min(aRight, bRight)
			}
			return (math.Max(aLeft, bLeft) + math.Min(aRight, bRight)) / 2
		case aLeft > bRight:
			r = i - 1
		default:
			l = i + 1
		}
	}
}

// at returns s[i] as float64, −Inf below the slice and +Inf past its end.
func at(s []int, i int) float64 {
	switch {
	case i < 0:
		return math.Inf(-1)
	case i >= len(s):
		return math.Inf(1)
	}

	return float64(s[i])
}

// Median validates both inputs and then returns FindMedianSortedArrays.
//
// Errors:
//   - ErrEmptyInput — both slices are empty (wrapped).
//   - ErrUnsorted   — a slice is not ascending (wrapped with its position).
func Median(nums1, nums2 []int) (float64, error) {
	if len(nums1) == 0 && len(nums2) == 0 {
		return 0, fmt.Errorf("nums1 and nums2: %w", ErrEmptyInput)
	}
	if err := checkSorted("nums1", nums1); err != nil {
		return 0, err
	}
	if err := checkSorted("nums2", nums2); err != nil {
		return 0, err
	}

	return FindMedianSortedArrays(nums1, nums2), nil
}

// checkSorted reports the first descent in s, if any.
func checkSorted(name string, s []int) error {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return fmt.Errorf("%s[%d]=%d < %s[%d]=%d: %w", name, i, s[i], name, i-1, s[i-1], ErrUnsorted)
		}
	}

	return nil
}

// MergedMedian merges both slices with two pointers and reads the middle.
// It is the O(N+M) reference for FindMedianSortedArrays; both empty yields NaN.
func MergedMedian(nums1, nums2 []int) float64 {
	total := len(nums1) + len(nums2)
	if total == 0 {
		return math.NaN()
	}

	merged := make([]int, 0, total)
	p, q := 0, 0
	for p < len(nums1) && q < len(nums2) {
		if nums1[p] <= nums2[q] {
			merged = append(merged, nums1[p])
			p++
		} else {
			merged = append(merged, nums2[q])
			q++
		}
	}
	merged = append(merged, nums1[p:]...)
	merged = append(merged, nums2[q:]...)

	if total%2 == 1 {
		return float64(merged[total/2])
	}

	return (float64(merged[total/2-1]) + float64(merged[total/2])) / 2
}
