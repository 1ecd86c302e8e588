// Package seq contains generic algorithms over iter.Seq sequences.
//
// Highlights:
// - CountInstances: element frequency map, nil elements skipped
// - DistinctBy: lazy first-seen filter on a derived key
// - Shuffle/ShuffleWith: eager random permutation with an injectable source
// - TakeUntil: lazy prefix ending before the first matching element
//
// Lazy results hold their working state (seen keys) per iteration, so a
// sequence built over a restartable source can be ranged over repeatedly.
// The *Slice variants are thin wrappers for callers holding a slice.
package seq
