// Package keymap substitutes synthetic keys for tokens and maps sorted keys
// back to tokens
package keymap

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/samber/lo"
)

// ErrUnknownKey indicates a key that was never assigned by the mapping
var ErrUnknownKey = errors.New("unknown key")

// Distinct returns each token once, in first-seen order
func Distinct(tokens []string) []string {
	return lo.Uniq(tokens)
}

// Shuffle returns a permutation of tokens driven by seed. The same seed and
// input always give the same order
func Shuffle(tokens []string, seed uint64) []string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// KeyFunc produces the key for the token at position i of the distinct order
type KeyFunc[K comparable] func(i int) K

// IntKey keys each token by its position
func IntKey(i int) int { return i }

// DecimalKey keys each token by the decimal form of its position
func DecimalKey(i int) string { return strconv.Itoa(i) }

// Mapping is a bijection between keys and distinct tokens
type Mapping[K comparable] struct {
	toToken map[K]string
	toKey   map[string]K
	order   []K
}

// Assign gives every token of distinct the key keyFn(i), where i is its
// position. distinct must not contain duplicates
func Assign[K comparable](distinct []string, keyFn KeyFunc[K]) *Mapping[K] {
	m := &Mapping[K]{
		toToken: make(map[K]string, len(distinct)),
		toKey:   make(map[string]K, len(distinct)),
		order:   make([]K, 0, len(distinct)),
	}
	for i, tok := range distinct {
		k := keyFn(i)
		m.toToken[k] = tok
		m.toKey[tok] = k
		m.order = append(m.order, k)
	}
	return m
}

// Len returns the number of keys
func (m *Mapping[K]) Len() int { return len(m.order) }

// Domain returns every key in assignment order
func (m *Mapping[K]) Domain() []K {
	out := make([]K, len(m.order))
	copy(out, m.order)
	return out
}

// Key returns the key of tok
func (m *Mapping[K]) Key(tok string) (K, bool) {
	k, ok := m.toKey[tok]
	return k, ok
}

// Token returns the token behind k
func (m *Mapping[K]) Token(k K) (string, bool) {
	tok, ok := m.toToken[k]
	return tok, ok
}

// Keys translates tokens into keys, one per occurrence. Tokens outside the
// mapping are an error
func (m *Mapping[K]) Keys(tokens []string) ([]K, error) {
	out := make([]K, 0, len(tokens))
	for _, tok := range tokens {
		k, ok := m.toKey[tok]
		if !ok {
			return nil, fmt.Errorf("token %q has no key", tok)
		}
		out = append(out, k)
	}
	return out, nil
}

// Resolve maps keys back to their tokens
func (m *Mapping[K]) Resolve(keys []K) ([]string, error) {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		tok, ok := m.toToken[k]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownKey, k)
		}
		out = append(out, tok)
	}
	return out, nil
}
