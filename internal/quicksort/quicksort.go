// Package quicksort implements an in-place quicksort over []float64 using
// the Lomuto partition scheme with the last element of each range as pivot.
//
// The scheme is deliberately plain: no pivot randomization and no
// median-of-three, so already-sorted and reverse-sorted inputs degrade to
// the documented O(n²) worst case with O(n) recursion depth. Average cost is
// O(n log n) time and O(log n) stack; no heap allocation is performed.
//
// Ordering follows raw float64 comparisons. Inputs containing NaN sort into
// an unspecified position.
package quicksort

// Sort sorts seq in place into non-descending order. Empty and single-element
// sequences are no-ops. The input is the only allocation touched; nothing is
// returned because the caller's slice is mutated directly.
func Sort(seq []float64) {
	if len(seq) < 2 {
		return
	}
	sortRange(seq, 0, len(seq)-1)
}

// sortRange recursively sorts seq[low..high] inclusive.
func sortRange(seq []float64, low, high int) {
	if low >= high {
		return
	}
	p := partition(seq, low, high)
	sortRange(seq, low, p-1)
	sortRange(seq, p+1, high)
}

// partition applies the Lomuto scheme to seq[low..high]: the pivot is
// seq[high], i tracks the boundary of the <= pivot region, and each element
// <= pivot is swapped behind it. The pivot lands at i+1, its final sorted
// position, which is returned.
func partition(seq []float64, low, high int) int {
	pivot := seq[high]
	i := low - 1
	for j := low; j < high; j++ {
		if seq[j] <= pivot {
			i++
			seq[i], seq[j] = seq[j], seq[i]
		}
	}
	seq[i+1], seq[high] = seq[high], seq[i+1]
	return i + 1
}

// IsSorted reports whether seq is in non-descending order. Used by the
// demo/bench surfaces to verify results without re-sorting.
func IsSorted(seq []float64) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i] < seq[i-1] {
			return false
		}
	}
	return true
}
