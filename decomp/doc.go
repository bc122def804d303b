// Package decomp analyzes the congruence structure of finite algebras and
// enumerates their structural decompositions.
//
// A congruence is a partition of an algebra's universe compatible with
// every operation: related arguments must yield related results. Quotients
// by congruences are the decomposition steps this package produces.
//
// Building blocks, leaves first:
//
//   - Partition  — union-find over {0..n-1} with canonical block labeling,
//     refinement comparison, and deterministic block enumeration.
//   - PrincipalCongruence — the smallest congruence merging one given pair,
//     computed by closing the pair under single-coordinate substitutions
//     into every operation.
//   - Atoms — the minimal proper nontrivial congruences, derived from the
//     principal congruences and ordered by relation size, then by first
//     generating pair.
//   - Quotient — the algebra on the blocks of a congruence, with every
//     operation re-tabulated on block representatives.
//   - Iterator — a Ready/Exhausted cursor over the quotients by each atom,
//     in atom order; the enumeration predicate is pluggable via Strategy.
//
// The whole pipeline is deterministic: repeated runs on the same input
// produce the same candidate sequence, and the sequence is always finite.
// The Iterator holds mutable cursor state and must not be advanced by more
// than one goroutine at a time; callers serialize Next externally if needed.
//
// Special cases pinned by tests: an algebra with no operations admits every
// partition as a congruence, so its atoms are exactly the single-merge
// partitions (none when the universe has fewer than three elements, since
// merging the only pair of a 2-element universe yields the full partition);
// simple algebras and the one-element algebra start Exhausted.
package decomp
