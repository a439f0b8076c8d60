package triplet_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvpuzzle/triplet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBest(t *testing.T) {
	cases := []struct {
		name string
		nums []int
		want triplet.Triplet
	}{
		{"short", []int{1, 2}, triplet.Triplet{I: -1, J: -1, K: -1}},
		{"increasing", []int{1, 2, 3}, triplet.Triplet{I: -1, J: -1, K: -1}},
		{"mixed", []int{12, 6, 1, 2, 7}, triplet.Triplet{I: 0, J: 2, K: 4, Value: 77, Found: true}},
		{"late k", []int{1, 10, 3, 4, 19}, triplet.Triplet{I: 1, J: 2, K: 4, Value: 133, Found: true}},
		// Equal prefix maxima at 0 and 1; equal suffix maxima at 3 and 4.
		{"ties", []int{5, 5, 1, 7, 7}, triplet.Triplet{I: 0, J: 2, K: 3, Value: 28, Found: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, triplet.Best(tc.nums)); diff != "" {
				t.Errorf("Best(%v) mismatch (-want +got):\n%s", tc.nums, diff)
			}
		})
	}
}

// TestBest_ConsistentWithValue verifies that Best agrees with
// MaximumTripletValue and that its indices really produce the value.
func TestBest_ConsistentWithValue(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 300; iter++ {
		nums := make([]int, 3+rng.Intn(15))
		for i := range nums {
			nums[i] = rng.Intn(100)
		}

		got := triplet.Best(nums)
		require.Equal(t, triplet.MaximumTripletValue(nums), got.Value, "nums=%v", nums)
		if !got.Found {
			assert.Equal(t, 0, got.Value)
			continue
		}
		require.True(t, got.I < got.J && got.J < got.K, "indices out of order: %+v", got)
		assert.Equal(t, got.Value, (nums[got.I]-nums[got.J])*nums[got.K], "nums=%v", nums)
	}
}
