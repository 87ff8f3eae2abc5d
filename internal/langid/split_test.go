package langid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatLabels(pairs map[string]int) []string {
	var labels []string
	for _, l := range []string{"English", "French", "Spanish"} {
		for i := 0; i < pairs[l]; i++ {
			labels = append(labels, l)
		}
	}
	return labels
}

func TestStratifiedSplit(t *testing.T) {
	t.Run("preserves per label proportions", func(t *testing.T) {
		labels := repeatLabels(map[string]int{"English": 50, "French": 30, "Spanish": 20})

		train, test, err := StratifiedSplit(labels, 0.2, 42)
		require.NoError(t, err)

		assert.Len(t, train, 80)
		assert.Len(t, test, 20)

		testByLabel := make(map[string]int)
		for _, i := range test {
			testByLabel[labels[i]]++
		}
		assert.Equal(t, 10, testByLabel["English"])
		assert.Equal(t, 6, testByLabel["French"])
		assert.Equal(t, 4, testByLabel["Spanish"])
	})

	t.Run("train and test are disjoint and complete", func(t *testing.T) {
		labels := repeatLabels(map[string]int{"English": 10, "French": 10})

		train, test, err := StratifiedSplit(labels, 0.2, 1)
		require.NoError(t, err)

		seen := make(map[int]bool)
		for _, i := range append(append([]int{}, train...), test...) {
			assert.False(t, seen[i], "index %d appears twice", i)
			seen[i] = true
		}
		assert.Len(t, seen, 20)
	})

	t.Run("every label appears in both splits", func(t *testing.T) {
		labels := repeatLabels(map[string]int{"English": 40, "French": 2, "Spanish": 5})

		train, test, err := StratifiedSplit(labels, 0.2, 7)
		require.NoError(t, err)

		inTrain := make(map[string]bool)
		for _, i := range train {
			inTrain[labels[i]] = true
		}
		inTest := make(map[string]bool)
		for _, i := range test {
			inTest[labels[i]] = true
		}
		for _, l := range []string{"English", "French", "Spanish"} {
			assert.True(t, inTrain[l], "label %s missing from train", l)
			assert.True(t, inTest[l], "label %s missing from test", l)
		}
	})

	t.Run("deterministic for a seed", func(t *testing.T) {
		labels := repeatLabels(map[string]int{"English": 20, "French": 20})

		train1, test1, err := StratifiedSplit(labels, 0.25, 42)
		require.NoError(t, err)
		train2, test2, err := StratifiedSplit(labels, 0.25, 42)
		require.NoError(t, err)

		assert.Equal(t, train1, train2)
		assert.Equal(t, test1, test2)
	})

	t.Run("singleton class fails", func(t *testing.T) {
		labels := []string{"English", "English", "French"}

		_, _, err := StratifiedSplit(labels, 0.2, 42)
		assert.ErrorIs(t, err, ErrStratify)
	})

	t.Run("invalid test size", func(t *testing.T) {
		labels := repeatLabels(map[string]int{"English": 10, "French": 10})

		_, _, err := StratifiedSplit(labels, 0, 42)
		assert.Error(t, err)
		_, _, err = StratifiedSplit(labels, 1, 42)
		assert.Error(t, err)
	})
}

func TestShuffledSplit(t *testing.T) {
	t.Run("splits by ceiling of test fraction", func(t *testing.T) {
		train, test, err := ShuffledSplit(10, 0.25, 42)
		require.NoError(t, err)

		assert.Len(t, test, 3)
		assert.Len(t, train, 7)
	})

	t.Run("covers all indices once", func(t *testing.T) {
		train, test, err := ShuffledSplit(25, 0.2, 3)
		require.NoError(t, err)

		seen := make(map[int]bool)
		for _, i := range append(append([]int{}, train...), test...) {
			assert.False(t, seen[i])
			seen[i] = true
		}
		assert.Len(t, seen, 25)
	})

	t.Run("deterministic for a seed", func(t *testing.T) {
		train1, test1, err := ShuffledSplit(100, 0.2, 9)
		require.NoError(t, err)
		train2, test2, err := ShuffledSplit(100, 0.2, 9)
		require.NoError(t, err)

		assert.Equal(t, train1, train2)
		assert.Equal(t, test1, test2)
	})

	t.Run("too few samples", func(t *testing.T) {
		_, _, err := ShuffledSplit(1, 0.2, 42)
		assert.Error(t, err)
	})
}
