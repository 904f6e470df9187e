package sort

import "golang.org/x/exp/constraints"

// MergeSorter sorts with a stable top-down mergesort
type MergeSorter[K constraints.Ordered] struct{}

// Sort implements Sorter
func (MergeSorter[K]) Sort(keys []K) []K { return MergeSort(keys) }

// MergeSort returns a sorted copy of keys. It splits at the midpoint by
// index, so recursion depth is log2(n). Equal keys keep their input order
func MergeSort[K constraints.Ordered](keys []K) []K {
	out := make([]K, len(keys))
	copy(out, keys)
	if len(out) > 1 {
		mergeSort(out, make([]K, len(out)))
	}
	return out
}

func mergeSort[K constraints.Ordered](s, tmp []K) {
	if len(s) <= 1 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], tmp[:mid])
	mergeSort(s[mid:], tmp[mid:])
	merge(s[:mid], s[mid:], tmp)
	copy(s, tmp[:len(s)])
}

// merge writes the merge of left and right into dst. The left head wins
// ties. Once a side runs out the rest of the other is already in order and
// no smaller than anything emitted, so it is copied as is
func merge[K constraints.Ordered](left, right, dst []K) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
