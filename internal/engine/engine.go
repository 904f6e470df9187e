package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ataraskov/wordsort/internal/filter"
	"github.com/ataraskov/wordsort/internal/keymap"
	sortpkg "github.com/ataraskov/wordsort/internal/sort"
	"golang.org/x/exp/constraints"
)

// ErrOutsideAlphabet indicates radix keys with characters the bucket table
// does not cover
var ErrOutsideAlphabet = errors.New("key outside radix alphabet")

// Engine orchestrates the token sorting process
type Engine struct {
	algorithm  sortpkg.Algorithm
	unique     bool
	randomize  bool
	descending bool
	seed       uint64
	filter     filter.TokenFilter
	logger     *slog.Logger
}

// Config holds the configuration for the engine
type Config struct {
	Algorithm  sortpkg.Algorithm
	Unique     bool
	Randomize  bool
	Descending bool
	// Seed shuffles the key assignment order in randomized mode. Zero keeps
	// first-seen order
	Seed   uint64
	Filter filter.TokenFilter
	Logger *slog.Logger
}

// NewEngine creates a new engine instance
func NewEngine(cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = sortpkg.Quick
	}

	return &Engine{
		algorithm:  cfg.Algorithm,
		unique:     cfg.Unique,
		randomize:  cfg.Randomize,
		descending: cfg.Descending,
		seed:       cfg.Seed,
		filter:     cfg.Filter,
		logger:     cfg.Logger,
	}
}

// Result contains the results of a sort operation
type Result struct {
	Tokens         []string
	Algorithm      sortpkg.Algorithm
	TotalTokens    int
	FilteredTokens int
	DistinctTokens int
	MaxLength      int
}

// Sort runs tokens through filtering, deduplication, key substitution,
// the selected sorter, key resolution and reversal, in that order
func (e *Engine) Sort(tokens []string) (*Result, error) {
	result := &Result{
		Algorithm:   e.algorithm,
		TotalTokens: len(tokens),
	}

	// Step 1: Apply filters
	if e.filter != nil {
		tokens = filter.FilterTokens(tokens, e.filter)
		e.logger.Debug("Applied filters", "matched", len(tokens), "total", result.TotalTokens)
	}
	result.FilteredTokens = len(tokens)
	result.MaxLength = sortpkg.MaxLength(tokens)

	// Step 2: Deduplicate
	bag := tokens
	var distinct []string
	if e.unique || e.randomize {
		distinct = keymap.Distinct(tokens)
		if e.randomize && e.seed != 0 {
			distinct = keymap.Shuffle(distinct, e.seed)
		}
		result.DistinctTokens = len(distinct)
		if e.unique {
			bag = distinct
		}
		e.logger.Debug("Deduplicated tokens", "distinct", len(distinct), "unique", e.unique)
	}

	// Step 3: Sort, directly or through synthetic keys
	var (
		sorted []string
		err    error
	)
	switch {
	case !e.randomize:
		sorted, err = e.sortTokens(bag, result.MaxLength)
	case e.algorithm == sortpkg.Radix:
		sorted, err = sortByKeys[string](e.algorithm, distinct, bag, keymap.DecimalKey,
			sortpkg.Options{Alphabet: sortpkg.Alphanumeric})
	default:
		sorted, err = sortByKeys[int](e.algorithm, distinct, bag, keymap.IntKey, sortpkg.Options{})
	}
	if err != nil {
		return nil, err
	}
	e.logger.Debug("Sorted tokens", "count", len(sorted), "algorithm", e.algorithm, "randomized", e.randomize)

	// Step 4: Reverse for descending order
	if e.descending {
		slices.Reverse(sorted)
	}

	result.Tokens = sorted
	return result, nil
}

func (e *Engine) sortTokens(tokens []string, maxLength int) ([]string, error) {
	opts := sortpkg.Options{MaxLength: maxLength, Alphabet: sortpkg.Letters}
	if e.algorithm == sortpkg.Radix {
		if key, ok := opts.Alphabet.Covers(tokens); !ok {
			return nil, fmt.Errorf("%w: %q", ErrOutsideAlphabet, key)
		}
	}
	return sortpkg.Sort(e.algorithm, tokens, opts)
}

// sortByKeys replaces each token of bag by the key of its position in
// distinct, sorts the keys and maps them back
func sortByKeys[K constraints.Ordered](alg sortpkg.Algorithm, distinct, bag []string, keyFn keymap.KeyFunc[K], opts sortpkg.Options) ([]string, error) {
	m := keymap.Assign(distinct, keyFn)
	keys, err := m.Keys(bag)
	if err != nil {
		return nil, fmt.Errorf("failed to assign keys: %w", err)
	}

	sortedKeys, err := sortpkg.Sort(alg, keys, opts)
	if err != nil {
		return nil, err
	}

	tokens, err := m.Resolve(sortedKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve keys: %w", err)
	}
	return tokens, nil
}
