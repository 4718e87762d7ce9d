package recursion

// Naive computes F(n) by the direct recurrence:
//
//	F(0) = 0
//	F(1) = 1
//	F(n) = F(n-1) + F(n-2)  for n > 1
//
// Each non-base case spawns two further calls, so the total call count grows
// exponentially with n. F(12) already takes 465 calls.
func Naive(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return Naive(n-1) + Naive(n-2)
}

// NaiveCount computes F(n) like Naive and additionally reports the total
// number of function invocations, including the outermost one. The lesson
// uses it to contrast the exponential call count with the memoized variant.
func NaiveCount(n uint64) (value uint64, calls uint64) {
	calls = 1
	if n == 0 {
		return 0, calls
	}
	if n == 1 {
		return 1, calls
	}
	v1, c1 := NaiveCount(n - 1)
	v2, c2 := NaiveCount(n - 2)
	return v1 + v2, calls + c1 + c2
}

// MemoCache memoizes Fibonacci values in an append-only sequence indexed by n.
// The cache is owned by the caller's session rather than hidden in package
// state, so independent computations never observe each other's results.
//
// The zero value is not usable; construct with NewMemoCache, which seeds the
// two base cases.
type MemoCache struct {
	results []uint64
	hits    uint64
	misses  uint64
	calls   uint64
}

// NewMemoCache returns a cache seeded with F(0)=0 and F(1)=1.
func NewMemoCache() *MemoCache {
	return &MemoCache{results: []uint64{0, 1}}
}

// Fib returns F(n), consulting the cache first. On a miss it computes the
// value recursively (the recursive calls themselves hit the cache) and
// appends it. The recursive call on n-1 populates every index below n, so
// the append always lands at position n and the cache only ever grows.
//
// Across a monotonically increasing sequence of calls Fib performs O(n)
// total appends, versus the exponential call count of Naive.
func (c *MemoCache) Fib(n uint64) uint64 {
	c.calls++

	if n < uint64(len(c.results)) {
		c.hits++
		return c.results[n]
	}
	c.misses++

	value := c.Fib(n-1) + c.Fib(n-2)
	c.results = append(c.results, value)
	return value
}

// Len returns the number of cached values.
func (c *MemoCache) Len() int { return len(c.results) }

// Hits returns the number of Fib calls answered from the cache.
func (c *MemoCache) Hits() uint64 { return c.hits }

// Misses returns the number of Fib calls that had to compute and append.
func (c *MemoCache) Misses() uint64 { return c.misses }

// Calls returns the total number of Fib invocations on this cache.
func (c *MemoCache) Calls() uint64 { return c.calls }
