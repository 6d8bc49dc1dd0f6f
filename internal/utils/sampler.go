package utils

import "math/rand"

// SampleWithoutReplacement picks k distinct ids from the candidate sequence.
//
// A single pick draws one uniformly random element. For 1 < k < len the
// sampler repeatedly draws a random index, discarding duplicates, until k
// distinct indices are collected; expected retries stay small because
// k is bounded by the candidate count. Asking for at least as many picks as
// there are candidates returns them all.
//
// Candidates are expected to be pre-filtered by the caller; no filtering
// happens here.
func SampleWithoutReplacement(candidateIDs []uint, k int) []uint {
	if len(candidateIDs) == 0 || k <= 0 {
		return []uint{}
	}

	if k == 1 {
		return []uint{candidateIDs[rand.Intn(len(candidateIDs))]}
	}

	if k >= len(candidateIDs) {
		picked := make([]uint, len(candidateIDs))
		copy(picked, candidateIDs)
		return picked
	}

	seen := make(map[int]bool, k)
	indices := make([]int, 0, k)
	for len(indices) < k {
		index := rand.Intn(len(candidateIDs))
		if seen[index] {
			continue
		}
		seen[index] = true
		indices = append(indices, index)
	}

	picked := make([]uint, 0, k)
	for _, index := range indices {
		picked = append(picked, candidateIDs[index])
	}
	return picked
}
