// Package recipe implements the potion rule engine: element formulas,
// the immutable ingredient/level catalog, and the per-player Engine that
// tracks a cauldron and judges it against the active level's target.
package recipe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormula is returned by ParseFormula for malformed input.
var ErrInvalidFormula = errors.New("invalid formula")

// Element is an atomic symbol such as "H" or "Fe".
type Element string

// Term is one element/count pair of a formula.
type Term struct {
	Element Element
	Count   int
}

// Formula is an ordered list of terms. Order matters: hints scan a level's
// target formula front to back.
type Formula []Term

// Composition maps elements to total counts. Elements that do not occur are
// absent, never stored as zero.
type Composition map[Element]int

// ParseFormula parses compact notation like "Fe2Cl6" or "H2O".
// A symbol is one upper-case letter followed by any lower-case letters; the
// count that follows defaults to 1.
func ParseFormula(s string) (Formula, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidFormula)
	}
	var f Formula
	seen := make(map[Element]bool)
	i := 0
	for i < len(s) {
		if s[i] < 'A' || s[i] > 'Z' {
			return nil, fmt.Errorf("%w %q: expected element symbol at offset %d", ErrInvalidFormula, s, i)
		}
		j := i + 1
		for j < len(s) && s[j] >= 'a' && s[j] <= 'z' {
			j++
		}
		sym := Element(s[i:j])
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		count := 1
		if k > j {
			n, err := strconv.Atoi(s[j:k])
			if err != nil {
				return nil, fmt.Errorf("%w %q: %v", ErrInvalidFormula, s, err)
			}
			count = n
		}
		if count <= 0 {
			return nil, fmt.Errorf("%w %q: %s has count %d", ErrInvalidFormula, s, sym, count)
		}
		if seen[sym] {
			return nil, fmt.Errorf("%w %q: %s repeated", ErrInvalidFormula, s, sym)
		}
		seen[sym] = true
		f = append(f, Term{Element: sym, Count: count})
		i = k
	}
	return f, nil
}

// MustParseFormula is ParseFormula for compiled-in data; it panics on error.
func MustParseFormula(s string) Formula {
	f, err := ParseFormula(s)
	if err != nil {
		panic(err)
	}
	return f
}

// String renders the formula in compact notation, omitting counts of 1.
func (f Formula) String() string {
	var b strings.Builder
	for _, t := range f {
		b.WriteString(string(t.Element))
		if t.Count != 1 {
			b.WriteString(strconv.Itoa(t.Count))
		}
	}
	return b.String()
}

// Composition returns the formula as an unordered element → count map.
func (f Formula) Composition() Composition {
	c := make(Composition, len(f))
	for _, t := range f {
		c[t.Element] += t.Count
	}
	return c
}

// Add folds every term of f into c.
func (c Composition) Add(f Formula) {
	for _, t := range f {
		c[t.Element] += t.Count
	}
}

// Equal reports whether both compositions have the same key set and counts.
func (c Composition) Equal(other Composition) bool {
	if len(c) != len(other) {
		return false
	}
	for el, n := range c {
		m, ok := other[el]
		if !ok || m != n {
			return false
		}
	}
	return true
}
