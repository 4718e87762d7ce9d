// Package seq provides a growable sequence that tracks length and capacity
// as two separate, observable attributes. It exists to make the mechanics of
// dynamic-array growth visible: element access is bounds-checked against the
// length, capacity only changes on explicit request or when an append would
// overflow it, and every reallocation is countable.
package seq

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by element accessors when the index is not
// within the current length. Capacity beyond the length is allocated but
// not valid for access.
var ErrOutOfRange = errors.New("seq: index out of range")

// ErrEmpty is returned by Pop and Back on an empty sequence.
var ErrEmpty = errors.New("seq: empty sequence")

// GrowthFactor is the amortized growth multiplier applied when an append
// exceeds the current capacity. Doubling bounds the number of reallocations
// to O(log n) over n appends.
const GrowthFactor = 2

// Seq is a growable sequence of T with explicit length/capacity accounting.
// The zero value is an empty sequence with zero capacity, ready to use.
//
// Invariant: Cap() >= Len() at all times. Capacity never shrinks.
type Seq[T any] struct {
	buf []T // len(buf) is the capacity; the first n entries are valid
	n   int

	growths int
	onGrow  func(oldCap, newCap int)
}

// New returns a sequence initialized with the given elements. Length and
// capacity both equal the element count.
func New[T any](elems ...T) *Seq[T] {
	s := &Seq[T]{}
	if len(elems) > 0 {
		s.buf = make([]T, len(elems))
		copy(s.buf, elems)
		s.n = len(elems)
	}
	return s
}

// OnGrow registers a hook invoked after every reallocation with the old and
// new capacity. Used by the metrics layer; pass nil to remove the hook.
func (s *Seq[T]) OnGrow(hook func(oldCap, newCap int)) {
	s.onGrow = hook
}

// Len returns the number of valid elements.
func (s *Seq[T]) Len() int { return s.n }

// Cap returns the number of elements for which storage is allocated.
func (s *Seq[T]) Cap() int { return len(s.buf) }

// Growths returns how many reallocations the sequence has performed.
func (s *Seq[T]) Growths() int { return s.growths }

// At returns the element at index i. The check is against the length, not
// the capacity: slots between Len() and Cap() exist but are not valid.
func (s *Seq[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= s.n {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, s.n)
	}
	return s.buf[i], nil
}

// Set replaces the element at index i, bounds-checked like At.
func (s *Seq[T]) Set(i int, v T) error {
	if i < 0 || i >= s.n {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, s.n)
	}
	s.buf[i] = v
	return nil
}

// Resize sets the length to n. Growing exposes zero-valued elements;
// shrinking truncates the valid range but leaves capacity untouched.
// Capacity grows only when n exceeds it.
func (s *Seq[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(s.buf) {
		s.grow(n)
	}
	if n > s.n {
		// Zero the newly exposed slots: they may hold stale values from a
		// previous shrink.
		var zero T
		for i := s.n; i < n; i++ {
			s.buf[i] = zero
		}
	}
	s.n = n
}

// Reserve ensures capacity for at least n elements. It never shrinks and
// never changes the length.
func (s *Seq[T]) Reserve(n int) {
	if n > len(s.buf) {
		s.grow(n)
	}
}

// Assign replaces the contents with the given elements, reusing the current
// allocation when it is large enough. Assigning fewer elements than the
// capacity holds changes only the length.
func (s *Seq[T]) Assign(elems ...T) {
	if len(elems) > len(s.buf) {
		s.grow(len(elems))
	}
	copy(s.buf, elems)
	s.n = len(elems)
}

// Push appends v, growing the capacity by GrowthFactor when full.
func (s *Seq[T]) Push(v T) {
	if s.n == len(s.buf) {
		newCap := len(s.buf) * GrowthFactor
		if newCap == 0 {
			newCap = 1
		}
		s.grow(newCap)
	}
	s.buf[s.n] = v
	s.n++
}

// Pop removes and returns the last element. Capacity is unchanged.
func (s *Seq[T]) Pop() (T, error) {
	var zero T
	if s.n == 0 {
		return zero, ErrEmpty
	}
	s.n--
	v := s.buf[s.n]
	return v, nil
}

// Back returns the last element without removing it.
func (s *Seq[T]) Back() (T, error) {
	var zero T
	if s.n == 0 {
		return zero, ErrEmpty
	}
	return s.buf[s.n-1], nil
}

// Values returns a copy of the valid elements.
func (s *Seq[T]) Values() []T {
	out := make([]T, s.n)
	copy(out, s.buf[:s.n])
	return out
}

// grow reallocates the backing array to exactly newCap elements.
// Callers guarantee newCap > current capacity.
func (s *Seq[T]) grow(newCap int) {
	oldCap := len(s.buf)
	buf := make([]T, newCap)
	copy(buf, s.buf[:s.n])
	s.buf = buf
	s.growths++
	if s.onGrow != nil {
		s.onGrow(oldCap, newCap)
	}
}
