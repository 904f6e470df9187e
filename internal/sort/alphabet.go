package sort

import "fmt"

// PaddingBucket is the bucket for strings that have no character at the
// position being examined. It orders before every alphabet symbol
const PaddingBucket = 0

// Alphabet is an ordered set of single-byte symbols used by the radix sorter.
// Symbol i lands in bucket i+1; bucket 0 is reserved for padding
type Alphabet struct {
	name    string
	symbols string
	index   [256]int
}

// NewAlphabet builds an alphabet from symbols given in ascending order.
// It returns an error if a symbol repeats or the order is not ascending
func NewAlphabet(name, symbols string) (*Alphabet, error) {
	a := &Alphabet{name: name, symbols: symbols}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if a.index[c] != 0 {
			return nil, fmt.Errorf("alphabet %s: duplicate symbol %q", name, c)
		}
		if i > 0 && symbols[i-1] > c {
			return nil, fmt.Errorf("alphabet %s: symbol %q out of order", name, c)
		}
		a.index[c] = i + 1
	}
	return a, nil
}

func mustAlphabet(name, symbols string) *Alphabet {
	a, err := NewAlphabet(name, symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// span returns the bytes from lo to hi inclusive, skipping any in skip
func span(lo, hi byte, skip func(byte) bool) string {
	b := make([]byte, 0, int(hi-lo)+1)
	for c := lo; c <= hi; c++ {
		if skip != nil && skip(c) {
			continue
		}
		b = append(b, c)
	}
	return string(b)
}

// nonLetter reports the six codes between 'Z' and 'a'
func nonLetter(c byte) bool {
	return c > 'Z' && c < 'a'
}

var (
	// Letters is 'A'-'Z' followed by 'a'-'z'. Uppercase sorts before lowercase
	Letters = mustAlphabet("letters", span('A', 'z', nonLetter))

	// Alphanumeric is '0'-'9' followed by Letters, for decimal keys
	Alphanumeric = mustAlphabet("alphanumeric", span('0', '9', nil)+span('A', 'z', nonLetter))
)

// Name returns the alphabet name
func (a *Alphabet) Name() string { return a.name }

// Size returns the number of symbols, not counting the padding bucket
func (a *Alphabet) Size() int { return len(a.symbols) }

// Buckets returns the number of radix buckets, padding included
func (a *Alphabet) Buckets() int { return len(a.symbols) + 1 }

// Bucket maps a character to its bucket. ok is false for characters that
// are not part of the alphabet
func (a *Alphabet) Bucket(c byte) (bucket int, ok bool) {
	b := a.index[c]
	return b, b != 0
}

// BucketAt returns the bucket for position pos of s, or PaddingBucket when
// s is too short
func (a *Alphabet) BucketAt(s string, pos int) (int, bool) {
	if pos >= len(s) {
		return PaddingBucket, true
	}
	return a.Bucket(s[pos])
}

// Covers reports whether every character of every key is in the alphabet.
// On failure it returns the first offending key
func (a *Alphabet) Covers(keys []string) (string, bool) {
	for _, k := range keys {
		for i := 0; i < len(k); i++ {
			if _, ok := a.Bucket(k[i]); !ok {
				return k, false
			}
		}
	}
	return "", true
}
