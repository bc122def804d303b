// Package ualg is your in-memory toolkit for computing with finite
// universal algebras — free algebras, direct products and congruence-based
// decompositions over integer-coded universes.
//
// 🚀 What is ualg?
//
//	A deterministic, CPU-bound library that brings together:
//		• Core primitives: finite algebras with named, table-backed operations
//		• Free algebras: fixed-point closure of generators over a base algebra
//		• Direct products & powers: tuple universes with coordinatewise operations
//		• Decompositions: congruence atoms, quotient algebras, and a lazy iterator
//
// ✨ Why choose ualg?
//
//   - Reproducible by construction – no global state, no implicit randomness
//   - Explicit contracts – sentinel errors, documented complexity, total operations
//   - Pure Go – no cgo, in-memory only
//
// Under the hood, everything is organized under four subpackages:
//
//	algebra/ — Algebra, Operation, table-backed evaluation & radix codecs
//	freealg/ — free-algebra builder (closure with configurable bounds)
//	product/ — direct products and N-th powers, coordinatewise evaluation
//	decomp/  — partitions, congruences, quotients, decomposition iterator
//
// Quick sketch:
//
//	base, _ := algebra.New(2, meet)           // two-element meet-semilattice
//	free, _ := freealg.Build(base, 1)         // free algebra on one generator
//	cube, _ := product.Power(free.Algebra, 3) // its third direct power
//	it, _ := decomp.NewIterator(cube.Algebra) // quotients by congruence atoms
//
// Every construction is deterministic: building the same structure twice
// yields identical universe ordering and identical operation tables.
//
//	go get github.com/katalvlaran/ualg
package ualg
