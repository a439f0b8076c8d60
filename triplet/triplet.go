package triplet

// MaximumTripletValue — maximum of (nums[i] - nums[j]) * nums[k] over i < j < k.
//
// Algorithm Outline:
//  1. If N < 3, return 0.
//  2. prefix[i] = max(nums[0..i]), suffix[i] = max(nums[i..N-1]).
//  3. For j = 1..N-2: candidate = (prefix[j-1] - nums[j]) * suffix[j+1].
//  4. Return the maximum candidate, floored at 0.
//
// Complexity:
//
//	Time   = O(N)
//	Memory = O(N)
func MaximumTripletValue(nums []int) int {
	n := len(nums)
	if n < 3 {
		return 0
	}

	prefix := PrefixMax(nums)
	suffix := SuffixMax(nums)

	res := 0
	for j := 1; j < n-1; j++ {
		res = max(res, (prefix[j-1]-nums[j])*suffix[j+1])
	}

	return res
}

// PrefixMax returns a fresh slice p with p[i] = max(nums[0..i]).
// An empty input yields an empty (non-nil) slice.
func PrefixMax(nums []int) []int {
	p := make([]int, len(nums))
	for i, v := range nums {
		if i == 0 || v > p[i-1] {
			p[i] = v
		} else {
			p[i] = p[i-1]
		}
	}

	return p
}

// SuffixMax returns a fresh slice s with s[i] = max(nums[i..N-1]).
func SuffixMax(nums []int) []int {
	n := len(nums)
	s := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		if i == n-1 || nums[i] > s[i+1] {
			s[i] = nums[i]
		} else {
			s[i] = s[i+1]
		}
	}

	return s
}

// Brute enumerates every i < j < k and returns the best product, floored at 0.
//
// Pairs with nums[i] < nums[j] are not skipped.
// For non-negative inputs Brute and MaximumTripletValue always agree. With
// negative values a negative difference times a negative nums[k] can win,
// which the prefix/suffix scan does not look for; Brute does.
//
// Complexity: O(N³). Intended as a reference for tests and benchmarks.
func Brute(nums []int) int {
	res := 0
	for i := 0; i < len(nums); i++ {
		for j := i + 1; j < len(nums); j++ {
			diff := nums[i] - nums[j]
			for k := j + 1; k < len(nums); k++ {
				res = max(res, diff*nums[k])
			}
		}
	}

	return res
}
