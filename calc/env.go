package calc

import (
	"iter"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Env maps variable letters a–z to their values. Unassigned variables read
// as 0. An Env lives for the whole process and is not safe for concurrent
// use.
//
// Methods on a nil *Env behave as on an empty one, except Set.
type Env struct {
	vals [26]float64
	set  [26]bool
}

// NewEnv returns an empty environment.
func NewEnv() *Env { return &Env{} }

// Get returns the value of variable letter, or 0 if it was never assigned or
// letter is not a–z. Reading does not create the variable.
func (e *Env) Get(letter byte) float64 {
	v, _ := e.Lookup(letter)

	return v
}

// Lookup returns the value of variable letter and whether it was assigned.
func (e *Env) Lookup(letter byte) (float64, bool) {
	if e == nil || !isLetter(letter) {
		return 0, false
	}

	i := letter - 'a'

	return e.vals[i], e.set[i]
}

// Set creates or overwrites variable letter. Panics if letter is not a
// lowercase ASCII letter; callers validate names with [IsVariable].
func (e *Env) Set(letter byte, value float64) {
	if !isLetter(letter) {
		panic("calc: invalid variable " + strconv.QuoteRune(rune(letter)))
	}

	i := letter - 'a'
	e.vals[i] = value
	e.set[i] = true
}

// Len returns the number of assigned variables.
func (e *Env) Len() int {
	n := 0

	for range e.All() {
		n++
	}

	return n
}

// All returns an iterator over assigned variables in alphabetical order.
func (e *Env) All() iter.Seq2[byte, float64] {
	return func(yield func(byte, float64) bool) {
		if e == nil {
			return
		}

		for i, ok := range e.set {
			if ok && !yield(byte('a'+i), e.vals[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of e.
func (e *Env) Clone() *Env {
	if e == nil {
		return NewEnv()
	}

	c := *e

	return &c
}

// Reset forgets every variable.
func (e *Env) Reset() {
	*e = Env{}
}

// MarshalYAML implements yaml.InterfaceMarshaler. Variables are emitted as a
// mapping in alphabetical order with values formatted by [FormatValue].
func (e *Env) MarshalYAML() (any, error) {
	m := yaml.MapSlice{}

	for name, value := range e.All() {
		m = append(m, yaml.MapItem{
			Key:   string(rune(name)),
			Value: FormatValue(value),
		})
	}

	return m, nil
}
