package sort

import "golang.org/x/exp/constraints"

// QuickSorter sorts with a three-way quicksort
type QuickSorter[K constraints.Ordered] struct{}

// Sort implements Sorter
func (QuickSorter[K]) Sort(keys []K) []K { return QuickSort(keys) }

type bounds struct{ lo, hi int }

// QuickSort returns a sorted copy of keys. The pivot is the middle element
// of each range by index. Each range is split into less, equal and greater
// groups, and the equal group is final.
//
// Ranges wait on an explicit stack. The larger side is pushed and the
// smaller one handled next, so the stack never holds more than log2(n)
// ranges. Adversarial input can still take a quadratic number of comparisons
func QuickSort[K constraints.Ordered](keys []K) []K {
	out := make([]K, len(keys))
	copy(out, keys)

	stack := []bounds{{0, len(out)}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for r.hi-r.lo > 1 {
			lt, gt := partition3(out, r.lo, r.hi)
			left, right := bounds{r.lo, lt}, bounds{gt, r.hi}
			if left.hi-left.lo > right.hi-right.lo {
				left, right = right, left
			}
			if right.hi-right.lo > 1 {
				stack = append(stack, right)
			}
			r = left
		}
	}
	return out
}

// partition3 rearranges s[lo:hi] around its middle element. On return
// s[lo:lt] < pivot, s[lt:gt] == pivot and s[gt:hi] > pivot
func partition3[K constraints.Ordered](s []K, lo, hi int) (lt, gt int) {
	pivot := s[lo+(hi-lo)/2]
	lt, i, gt := lo, lo, hi
	for i < gt {
		switch {
		case s[i] < pivot:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case s[i] > pivot:
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}
	return lt, gt
}
