package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleWithoutReplacement(t *testing.T) {
	candidates := []uint{11, 22, 33, 44, 55}

	t.Run("empty candidates", func(t *testing.T) {
		assert.Empty(t, SampleWithoutReplacement(nil, 3))
	})

	t.Run("non-positive k", func(t *testing.T) {
		assert.Empty(t, SampleWithoutReplacement(candidates, 0))
		assert.Empty(t, SampleWithoutReplacement(candidates, -1))
	})

	t.Run("single pick comes from candidates", func(t *testing.T) {
		picked := SampleWithoutReplacement(candidates, 1)
		assert.Len(t, picked, 1)
		assert.Contains(t, candidates, picked[0])
	})

	t.Run("k at least len returns all", func(t *testing.T) {
		picked := SampleWithoutReplacement(candidates, len(candidates))
		assert.ElementsMatch(t, candidates, picked)

		picked = SampleWithoutReplacement(candidates, len(candidates)+10)
		assert.ElementsMatch(t, candidates, picked)
	})

	t.Run("picks are distinct and drawn from candidates", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			picked := SampleWithoutReplacement(candidates, 3)
			assert.Len(t, picked, 3)

			seen := make(map[uint]bool, len(picked))
			for _, id := range picked {
				assert.Contains(t, candidates, id)
				assert.False(t, seen[id], "duplicate pick %d", id)
				seen[id] = true
			}
		}
	})

	t.Run("repeated draws cover every candidate", func(t *testing.T) {
		drawn := make(map[uint]bool, len(candidates))
		for i := 0; i < 200; i++ {
			for _, id := range SampleWithoutReplacement(candidates, 2) {
				drawn[id] = true
			}
		}
		for _, id := range candidates {
			assert.True(t, drawn[id], "candidate %d never drawn", id)
		}
	})

	t.Run("does not mutate candidates", func(t *testing.T) {
		original := []uint{1, 2, 3, 4}
		SampleWithoutReplacement(original, 4)
		assert.Equal(t, []uint{1, 2, 3, 4}, original)
	})
}
