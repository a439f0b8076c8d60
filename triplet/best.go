package triplet

// Triplet is an ordered triplet I < J < K together with its value
// (nums[I] - nums[J]) * nums[K].
//
// Found is false when no triplet beats 0; the indices are then -1.
type Triplet struct {
	I, J, K int
	Value   int
	Found   bool
}

// none is the result reported when nothing beats the 0 floor.
var none = Triplet{I: -1, J: -1, K: -1}

// Best runs the same prefix/suffix scan as MaximumTripletValue and also
// reports the indices that realize the value.
//
// Ties keep the earliest J; for that J, I is the earliest index holding the
// prefix maximum and K the earliest index holding the suffix maximum.
func Best(nums []int) Triplet {
	n := len(nums)
	if n < 3 {
		return none
	}

	// prefIdx[i] is the earliest argmax of nums[0..i].
	prefIdx := make([]int, n)
	for i := 1; i < n; i++ {
		prefIdx[i] = prefIdx[i-1]
		if nums[i] > nums[prefIdx[i-1]] {
			prefIdx[i] = i
		}
	}

	// sufIdx[i] is the earliest argmax of nums[i..n-1].
	sufIdx := make([]int, n)
	sufIdx[n-1] = n - 1
	for i := n - 2; i >= 0; i-- {
		sufIdx[i] = sufIdx[i+1]
		if nums[i] >= nums[sufIdx[i+1]] {
			sufIdx[i] = i
		}
	}

	best := none
	for j := 1; j < n-1; j++ {
		i, k := prefIdx[j-1], sufIdx[j+1]
		v := (nums[i] - nums[j]) * nums[k]
		if v > best.Value {
			best = Triplet{I: i, J: j, K: k, Value: v, Found: true}
		}
	}

	return best
}
