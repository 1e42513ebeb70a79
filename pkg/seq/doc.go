// Package seq provides small, stateless generic helpers for slices:
// filtering, mapping, deduplication, grouping, chunking, joining and
// shuffling.
//
// All helpers return fresh slices and never mutate their input. Shuffle
// takes an explicit *rand.Rand so results are deterministic under a
// seeded source; there is no package-level random state.
package seq
