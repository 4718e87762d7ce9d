// Package refsem implements the parameter- and return-semantics
// demonstrations: observable mutation through pointer parameters, multi-value
// returns, pointer-to-element returns into caller-owned storage, arena-backed
// allocations whose ownership transfers to the caller, and the two legacy
// helpers whose defects the lessons preserve as exercises.
package refsem
