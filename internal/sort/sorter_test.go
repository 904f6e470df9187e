package sort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{in: "quick", want: Quick},
		{in: "MERGE", want: Merge},
		{in: " heap ", want: Heap},
		{in: "radix", want: Radix},
		{in: "bubble", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDispatchesEveryAlgorithm(t *testing.T) {
	in := []string{"banana", "Apple", "apple", "Banana"}
	want := []string{"Apple", "Banana", "apple", "banana"}

	for _, alg := range Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			s, err := New[string](alg, Options{MaxLength: 6})
			require.NoError(t, err)
			assert.Equal(t, want, s.Sort(in))
		})
	}
}

func TestNewRadixRejectsIntKeys(t *testing.T) {
	_, err := New[int](Radix, Options{})
	assert.ErrorIs(t, err, ErrRadixKeys)

	_, err = Sort(Radix, []int{3, 1}, Options{})
	assert.ErrorIs(t, err, ErrRadixKeys)
}

func TestNewUnknownAlgorithm(t *testing.T) {
	_, err := New[string](Algorithm("shell"), Options{})
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestSortIntKeys(t *testing.T) {
	for _, alg := range []Algorithm{Quick, Merge, Heap} {
		got, err := Sort(alg, []int{2, 0, 1}, Options{})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, got, string(alg))
	}
}

func TestAlphabets(t *testing.T) {
	assert.Equal(t, 52, Letters.Size())
	assert.Equal(t, 53, Letters.Buckets())
	assert.Equal(t, 62, Alphanumeric.Size())

	tests := []struct {
		c      byte
		bucket int
		ok     bool
	}{
		{'A', 1, true},
		{'Z', 26, true},
		{'a', 27, true},
		{'z', 52, true},
		{'[', 0, false},
		{'`', 0, false},
		{'0', 0, false},
	}
	for _, tt := range tests {
		b, ok := Letters.Bucket(tt.c)
		assert.Equal(t, tt.ok, ok, "%q", tt.c)
		assert.Equal(t, tt.bucket, b, "%q", tt.c)
	}

	b, ok := Alphanumeric.Bucket('0')
	assert.True(t, ok)
	assert.Equal(t, 1, b)
	b, _ = Alphanumeric.Bucket('A')
	assert.Equal(t, 11, b)
}

func TestAlphabetBucketAtPads(t *testing.T) {
	b, ok := Letters.BucketAt("ab", 5)
	assert.True(t, ok)
	assert.Equal(t, PaddingBucket, b)
}

func TestAlphabetCovers(t *testing.T) {
	_, ok := Letters.Covers([]string{"abc", "XYZ"})
	assert.True(t, ok)

	bad, ok := Letters.Covers([]string{"abc", "x1", "y2"})
	assert.False(t, ok)
	assert.Equal(t, "x1", bad)
}

func TestNewAlphabetValidates(t *testing.T) {
	_, err := NewAlphabet("dup", "aab")
	assert.Error(t, err)

	_, err = NewAlphabet("order", "ba")
	assert.Error(t, err)

	a, err := NewAlphabet("dna", "ACGT")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "AC", "CG", "T"}, RadixSort([]string{"T", "CG", "AC", "A"}, 2, a))
}
