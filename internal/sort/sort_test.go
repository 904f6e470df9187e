package sort

import (
	"math/rand/v2"
	"slices"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringSorters() map[Algorithm]func([]string) []string {
	return map[Algorithm]func([]string) []string{
		Quick: QuickSort[string],
		Merge: MergeSort[string],
		Heap:  HeapSort[string],
		Radix: func(keys []string) []string { return RadixSort(keys, MaxLength(keys), Letters) },
	}
}

func randomWords(r *rand.Rand, n, maxLen int) []string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	words := make([]string, n)
	for i := range words {
		b := make([]byte, 1+r.IntN(maxLen))
		for j := range b {
			// a narrow alphabet slice produces plenty of duplicates and shared prefixes
			b[j] = letters[r.IntN(len(letters))%(4+r.IntN(48))]
		}
		words[i] = string(b)
	}
	return words
}

func TestSortExamples(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "uppercase first",
			in:   []string{"banana", "Apple", "apple", "Banana"},
			want: []string{"Apple", "Banana", "apple", "banana"},
		},
		{
			name: "case sensitive prefix",
			in:   []string{"cat", "Cat", "car"},
			want: []string{"Cat", "car", "cat"},
		},
		{
			name: "shorter prefix first",
			in:   []string{"abA", "ab", "a", "abc", "B"},
			want: []string{"B", "a", "ab", "abA", "abc"},
		},
		{
			name: "duplicates",
			in:   []string{"b", "a", "b", "a", "b"},
			want: []string{"a", "a", "b", "b", "b"},
		},
		{
			name: "single",
			in:   []string{"z"},
			want: []string{"z"},
		},
		{
			name: "empty",
			in:   []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		for alg, sortFn := range stringSorters() {
			t.Run(tt.name+"/"+string(alg), func(t *testing.T) {
				got := sortFn(tt.in)
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestSortersAgreeWithByteOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		in := randomWords(r, r.IntN(300), 8)
		want := slices.Clone(in)
		slices.Sort(want)

		for alg, sortFn := range stringSorters() {
			if diff := cmp.Diff(want, sortFn(in)); diff != "" {
				t.Fatalf("round %d %s mismatch (-want +got):\n%s", round, alg, diff)
			}
		}
	}
}

func TestSortersDoNotModifyInput(t *testing.T) {
	in := []string{"d", "C", "b", "A", "d"}
	orig := slices.Clone(in)

	for alg, sortFn := range stringSorters() {
		sortFn(in)
		assert.Equal(t, orig, in, "%s modified its input", alg)
	}
}

func TestIntKeys(t *testing.T) {
	in := []int{5, 3, 9, 0, 3, 12, 1}
	want := []int{0, 1, 3, 3, 5, 9, 12}

	assert.Equal(t, want, QuickSort(in))
	assert.Equal(t, want, MergeSort(in))
	assert.Equal(t, want, HeapSort(in))
}

func TestMergeSortIsStable(t *testing.T) {
	// Equal strings built from separate buffers; their data pointers
	// tell occurrences apart. Single bytes would share static storage.
	mk := func(s string) string { return string([]byte(s)) }
	in := []string{mk("bb"), mk("aa"), mk("bb"), mk("aa"), mk("cc"), mk("aa"), mk("bb")}

	got := MergeSort(in)
	require.Equal(t, []string{"aa", "aa", "aa", "bb", "bb", "bb", "cc"}, got)

	order := func(s []string, v string) []*byte {
		var ptrs []*byte
		for _, x := range s {
			if x == v {
				ptrs = append(ptrs, unsafe.StringData(x))
			}
		}
		return ptrs
	}
	for _, v := range []string{"aa", "bb"} {
		assert.Equal(t, order(in, v), order(got, v), "relative order of %q changed", v)
	}
}

func TestQuickSortSortedInput(t *testing.T) {
	in := make([]int, 50000)
	for i := range in {
		in[i] = i
	}
	assert.Equal(t, in, QuickSort(in))

	slices.Reverse(in)
	got := QuickSort(in)
	assert.True(t, slices.IsSorted(got))
}

func TestHeapSortInPlace(t *testing.T) {
	s := []string{"q", "W", "e", "R", "t", "Y"}
	HeapSortInPlace(s)
	assert.Equal(t, []string{"R", "W", "Y", "e", "q", "t"}, s)
}

func TestRadixDecimalKeys(t *testing.T) {
	in := []string{"10", "2", "1", "0", "11", "20"}
	got := RadixSort(in, 2, Alphanumeric)
	assert.Equal(t, []string{"0", "1", "10", "11", "2", "20"}, got)
}

func TestRadixPanicsOutsideAlphabet(t *testing.T) {
	assert.Panics(t, func() {
		RadixSort([]string{"ab", "a1"}, 2, Letters)
	})
}

func TestRadixSorterMeasuresLength(t *testing.T) {
	s := NewRadixSorter(nil, 0)
	assert.Equal(t, []string{"A", "AA", "a", "aA"}, s.Sort([]string{"aA", "a", "AA", "A"}))
}

func TestRadixShortMaxLengthIgnoresTail(t *testing.T) {
	// only the first character is examined; ties keep input order
	got := RadixSort([]string{"bz", "ba", "ay", "ax"}, 1, Letters)
	assert.Equal(t, []string{"ay", "ax", "bz", "ba"}, got)
}
