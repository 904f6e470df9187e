package sort

import "golang.org/x/exp/constraints"

// HeapSorter sorts with an in-place binary max-heap
type HeapSorter[K constraints.Ordered] struct{}

// Sort implements Sorter
func (HeapSorter[K]) Sort(keys []K) []K { return HeapSort(keys) }

// HeapSort returns a sorted copy of keys. The copy is sorted in place and
// the caller's slice is left untouched. Not stable
func HeapSort[K constraints.Ordered](keys []K) []K {
	out := make([]K, len(keys))
	copy(out, keys)
	HeapSortInPlace(out)
	return out
}

// HeapSortInPlace sorts s in place
func HeapSortInPlace[K constraints.Ordered](s []K) {
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end)
	}
}

// siftDown moves s[i] toward the leaves of the heap s[:n] until neither
// child is larger
func siftDown[K constraints.Ordered](s []K, i, n int) {
	for {
		big := i
		left, right := 2*i+1, 2*i+2
		if left < n && s[left] > s[big] {
			big = left
		}
		if right < n && s[right] > s[big] {
			big = right
		}
		if big == i {
			return
		}
		s[i], s[big] = s[big], s[i]
		i = big
	}
}
