package sort

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	// ErrUnknownAlgorithm indicates an algorithm name that is not supported
	ErrUnknownAlgorithm = errors.New("unknown sort algorithm")
	// ErrRadixKeys indicates radix sort was requested for non-string keys
	ErrRadixKeys = errors.New("radix sort requires string keys")
)

// Sorter defines the interface for sorting keys
type Sorter[K constraints.Ordered] interface {
	// Sort returns keys in ascending order. The input slice is not modified
	Sort(keys []K) []K
}

// Algorithm names a sorting strategy
type Algorithm string

const (
	Quick Algorithm = "quick"
	Merge Algorithm = "merge"
	Heap  Algorithm = "heap"
	Radix Algorithm = "radix"
)

// Algorithms returns every supported algorithm in display order
func Algorithms() []Algorithm {
	return []Algorithm{Quick, Merge, Heap, Radix}
}

// ParseAlgorithm resolves a case-insensitive algorithm name
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, a := range Algorithms() {
		if a == alg {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be one of %s)", ErrUnknownAlgorithm, name, joinAlgorithms())
}

func joinAlgorithms() string {
	names := make([]string, 0, len(Algorithms()))
	for _, a := range Algorithms() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}

// Options carries algorithm-specific parameters. Only radix reads them
type Options struct {
	// MaxLength is the number of radix passes. Zero measures the keys
	MaxLength int
	// Alphabet is the radix character set. Nil means Letters
	Alphabet *Alphabet
}

// New returns the sorter for alg
func New[K constraints.Ordered](alg Algorithm, opts Options) (Sorter[K], error) {
	switch alg {
	case Quick:
		return QuickSorter[K]{}, nil
	case Merge:
		return MergeSorter[K]{}, nil
	case Heap:
		return HeapSorter[K]{}, nil
	case Radix:
		s, ok := any(NewRadixSorter(opts.Alphabet, opts.MaxLength)).(Sorter[K])
		if !ok {
			var zero K
			return nil, fmt.Errorf("%w: got %T", ErrRadixKeys, zero)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// Sort dispatches keys to the sorter for alg
func Sort[K constraints.Ordered](alg Algorithm, keys []K, opts Options) ([]K, error) {
	s, err := New[K](alg, opts)
	if err != nil {
		return nil, err
	}
	return s.Sort(keys), nil
}
