package refsem

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyReleased is returned when a Buffer is released twice.
var ErrAlreadyReleased = errors.New("refsem: buffer already released")

// Arena allocates integer buffers whose ownership transfers to the caller,
// the return-by-address demonstration: the allocation outlives the function
// that created it, and the caller must release it exactly once. The arena
// tracks outstanding buffers so lessons and tests can assert that nothing
// leaked and nothing was released twice.
type Arena struct {
	mu          sync.Mutex
	outstanding int
	allocated   int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Buffer is a caller-owned allocation handed out by an Arena.
type Buffer struct {
	data     []int
	arena    *Arena
	released bool
}

// NewBuffer allocates a zeroed buffer of the given size and transfers
// ownership to the caller. The buffer must be released exactly once.
func (a *Arena) NewBuffer(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("refsem: invalid buffer size %d", size)
	}
	a.mu.Lock()
	a.outstanding++
	a.allocated++
	a.mu.Unlock()

	return &Buffer{data: make([]int, size), arena: a}, nil
}

// Outstanding returns the number of buffers allocated but not yet released.
func (a *Arena) Outstanding() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.outstanding
}

// Allocated returns the total number of buffers ever handed out.
func (a *Arena) Allocated() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocated
}

// Data returns the buffer's backing slice, or nil after release.
func (b *Buffer) Data() []int {
	if b.released {
		return nil
	}
	return b.data
}

// Len returns the buffer's element count, or 0 after release.
func (b *Buffer) Len() int {
	if b.released {
		return 0
	}
	return len(b.data)
}

// Release returns the buffer to the arena. The first call succeeds and
// invalidates the buffer; any further call reports ErrAlreadyReleased,
// making the double-release mistake observable instead of silent.
func (b *Buffer) Release() error {
	if b.released {
		return ErrAlreadyReleased
	}
	b.released = true
	b.data = nil

	b.arena.mu.Lock()
	b.arena.outstanding--
	b.arena.mu.Unlock()
	return nil
}
