package sort

import "fmt"

// RadixSorter sorts strings with a least-significant-character-first bucket
// sort over a fixed alphabet
type RadixSorter struct {
	alphabet  *Alphabet
	maxLength int
}

// NewRadixSorter creates a radix sorter. A maxLength of zero or less means
// the longest key is measured on each call. A nil alphabet means Letters
func NewRadixSorter(alphabet *Alphabet, maxLength int) *RadixSorter {
	if alphabet == nil {
		alphabet = Letters
	}
	return &RadixSorter{alphabet: alphabet, maxLength: maxLength}
}

// Sort returns keys sorted in ascending alphabet order
func (s *RadixSorter) Sort(keys []string) []string {
	maxLength := s.maxLength
	if maxLength <= 0 {
		maxLength = MaxLength(keys)
	}
	return RadixSort(keys, maxLength, s.alphabet)
}

// MaxLength returns the length of the longest key
func MaxLength(keys []string) int {
	n := 0
	for _, k := range keys {
		n = max(n, len(k))
	}
	return n
}

// RadixSort sorts keys over maxLength passes, from position maxLength-1 down
// to position 0. Keys shorter than the position being examined go to the
// padding bucket, so a key sorts before longer keys it prefixes. Characters
// beyond maxLength are ignored.
//
// Every character within the first maxLength positions must belong to the
// alphabet; RadixSort panics otherwise
func RadixSort(keys []string, maxLength int, alphabet *Alphabet) []string {
	work := make([]string, len(keys))
	copy(work, keys)
	if len(work) <= 1 {
		return work
	}

	buckets := make([][]string, alphabet.Buckets())
	for level := maxLength; level > 0; level-- {
		for i := range buckets {
			buckets[i] = buckets[i][:0]
		}
		for _, k := range work {
			b, ok := alphabet.BucketAt(k, level-1)
			if !ok {
				panic(fmt.Sprintf("radix sort: %q has character %q outside the %s alphabet",
					k, k[level-1], alphabet.Name()))
			}
			buckets[b] = append(buckets[b], k)
		}
		work = work[:0]
		for _, bucket := range buckets {
			work = append(work, bucket...)
		}
	}
	return work
}
