// Package recursion implements the recursive demonstration functions:
// countdown with and without a termination condition, sum-to-N, naive and
// memoized Fibonacci, factorial, digit sum, and the binary-digit printers.
//
// Every function reduces its input to a smaller instance of the same problem
// plus a base case. The unbounded countdown is the deliberate exception; it
// exists to document stack exhaustion and is never called by lessons or tests.
package recursion
