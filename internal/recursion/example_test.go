package recursion_test

import (
	"fmt"
	"os"

	"github.com/Oureyelet/funclab/internal/recursion"
)

// ExampleCountDown demonstrates the push/pop ordering produced by the
// terminating countdown.
func ExampleCountDown() {
	recursion.CountDown(os.Stdout, 3)
	// Output:
	// push 3
	// push 2
	// push 1
	// pop 1
	// pop 2
	// pop 3
}

// ExampleMemoCache demonstrates a session-owned memoization cache.
func ExampleMemoCache() {
	cache := recursion.NewMemoCache()
	for n := uint64(0); n < 13; n++ {
		fmt.Printf(" %d", cache.Fib(n))
	}
	fmt.Println()
	fmt.Println("cached:", cache.Len())
	// Output:
	// 0 1 1 2 3 5 8 13 21 34 55 89 144
	// cached: 13
}

// ExampleWriteBinary demonstrates most-significant-bit-first output.
func ExampleWriteBinary() {
	recursion.WriteBinary(os.Stdout, 148)
	// Output: 10010100
}
