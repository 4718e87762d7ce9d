package seq

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNew(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := New[int]()
		if s.Len() != 0 || s.Cap() != 0 {
			t.Errorf("New() = len %d cap %d, want 0/0", s.Len(), s.Cap())
		}
	})

	t.Run("with elements", func(t *testing.T) {
		s := New(0, 1, 2)
		if s.Len() != 3 {
			t.Errorf("Len() = %d, want 3", s.Len())
		}
		if s.Cap() != 3 {
			t.Errorf("Cap() = %d, want 3", s.Cap())
		}
	})
}

func TestResize(t *testing.T) {
	t.Run("grow from 3 to 5", func(t *testing.T) {
		s := New(0, 1, 2)
		s.Resize(5)

		if s.Len() != 5 {
			t.Errorf("Len() = %d, want 5", s.Len())
		}
		if s.Cap() < 5 {
			t.Errorf("Cap() = %d, want >= 5", s.Cap())
		}
		// Newly exposed slots read as zero values.
		for i := 3; i < 5; i++ {
			v, err := s.At(i)
			if err != nil {
				t.Fatalf("At(%d) error: %v", i, err)
			}
			if v != 0 {
				t.Errorf("At(%d) = %d, want 0", i, v)
			}
		}
	})

	t.Run("shrink keeps capacity", func(t *testing.T) {
		s := New(0, 1, 2, 3, 4)
		s.Resize(3)

		if s.Len() != 3 {
			t.Errorf("Len() = %d, want 3", s.Len())
		}
		if s.Cap() != 5 {
			t.Errorf("Cap() = %d, want 5 (unchanged)", s.Cap())
		}
	})

	t.Run("shrink then regrow exposes zeros, not stale values", func(t *testing.T) {
		s := New(7, 8, 9)
		s.Resize(1)
		s.Resize(3)

		for i := 1; i < 3; i++ {
			v, _ := s.At(i)
			if v != 0 {
				t.Errorf("At(%d) = %d after regrow, want 0", i, v)
			}
		}
	})
}

func TestAssign(t *testing.T) {
	// Mirrors the lesson: assigning a shorter list reuses the allocation.
	s := New(0, 1, 2, 3, 4)
	s.Assign(9, 8, 7)

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if s.Cap() != 5 {
		t.Errorf("Cap() = %d, want 5 (no reallocation)", s.Cap())
	}
	if s.Growths() != 0 {
		t.Errorf("Growths() = %d, want 0", s.Growths())
	}
}

func TestAt(t *testing.T) {
	s := New(9, 8, 7, 0, 0)
	s.Resize(3)

	t.Run("valid index", func(t *testing.T) {
		v, err := s.At(2)
		if err != nil {
			t.Fatalf("At(2) error: %v", err)
		}
		if v != 7 {
			t.Errorf("At(2) = %d, want 7", v)
		}
	})

	t.Run("index within capacity but beyond length fails", func(t *testing.T) {
		// Length 3, capacity 5: index 4 is allocated but invalid.
		if _, err := s.At(4); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(4) error = %v, want ErrOutOfRange", err)
		}
	})

	t.Run("negative index fails", func(t *testing.T) {
		if _, err := s.At(-1); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(-1) error = %v, want ErrOutOfRange", err)
		}
	})
}

func TestReserve(t *testing.T) {
	t.Run("grows capacity only", func(t *testing.T) {
		s := New(1, 2)
		s.Reserve(77)

		if s.Cap() < 77 {
			t.Errorf("Cap() = %d, want >= 77", s.Cap())
		}
		if s.Len() != 2 {
			t.Errorf("Len() = %d, want 2 (unchanged)", s.Len())
		}
	})

	t.Run("never shrinks", func(t *testing.T) {
		s := New(1, 2, 3)
		s.Reserve(10)
		s.Reserve(1)

		if s.Cap() < 10 {
			t.Errorf("Cap() = %d, want >= 10 after smaller Reserve", s.Cap())
		}
	})
}

func TestStackBehavior(t *testing.T) {
	s := New[int]()

	// Three pushes from zero capacity: grows 0->1, 1->2, 2->4.
	s.Push(5)
	s.Push(3)
	s.Push(2)

	if got := s.Values(); len(got) != 3 || got[0] != 5 || got[1] != 3 || got[2] != 2 {
		t.Errorf("Values() = %v, want [5 3 2]", got)
	}
	if s.Growths() != 3 {
		t.Errorf("Growths() = %d, want 3", s.Growths())
	}

	top, err := s.Back()
	if err != nil || top != 2 {
		t.Errorf("Back() = %d, %v; want 2, nil", top, err)
	}

	for _, want := range []int{2, 3, 5} {
		v, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop() error: %v", err)
		}
		if v != want {
			t.Errorf("Pop() = %d, want %d", v, want)
		}
	}

	t.Run("pop on empty fails", func(t *testing.T) {
		if _, err := s.Pop(); !errors.Is(err, ErrEmpty) {
			t.Errorf("Pop() on empty = %v, want ErrEmpty", err)
		}
	})

	t.Run("capacity survives pops", func(t *testing.T) {
		if s.Cap() != 4 {
			t.Errorf("Cap() = %d after pops, want 4", s.Cap())
		}
	})
}

func TestPushAtCapacityDoubles(t *testing.T) {
	s := New(1, 2, 3, 4) // len == cap == 4
	before := s.Cap()
	s.Push(5)

	if s.Cap() < before*GrowthFactor {
		t.Errorf("Cap() = %d after push at capacity, want >= %d", s.Cap(), before*GrowthFactor)
	}
}

func TestOnGrowHook(t *testing.T) {
	s := New[int]()
	var calls int
	s.OnGrow(func(oldCap, newCap int) {
		calls++
		if newCap <= oldCap {
			t.Errorf("hook got oldCap %d -> newCap %d, want growth", oldCap, newCap)
		}
	})

	for i := 0; i < 9; i++ {
		s.Push(i)
	}
	// 0->1, 1->2, 2->4, 4->8, 8->16
	if calls != 5 {
		t.Errorf("hook called %d times, want 5", calls)
	}
}

// TestInvariant_PropertyBased checks that capacity >= length holds and
// capacity never shrinks under arbitrary operation sequences. Operations are
// encoded as parallel slices of opcode and argument.
func TestInvariant_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("cap >= len and cap never shrinks", prop.ForAll(
		func(kinds []int8, args []int8) bool {
			s := New[int]()
			prevCap := 0
			n := len(kinds)
			if len(args) < n {
				n = len(args)
			}
			for i := 0; i < n; i++ {
				arg := int(args[i])
				if arg < 0 {
					arg = -arg
				}
				switch kinds[i] % 4 {
				case 0:
					s.Push(arg)
				case 1:
					s.Pop() // error on empty is fine
				case 2:
					s.Resize(arg)
				case 3:
					s.Reserve(arg)
				}
				if s.Cap() < s.Len() {
					return false
				}
				if s.Cap() < prevCap {
					return false
				}
				prevCap = s.Cap()
			}
			return true
		},
		gen.SliceOf(gen.Int8Range(0, 3)),
		gen.SliceOf(gen.Int8Range(0, 127)),
	))

	properties.TestingRun(t)
}
