package langid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fitTestClassifier trains a two-class classifier over a three-feature
// space: class 0 leans on feature 0, class 1 on feature 2.
func fitTestClassifier(t *testing.T) *NaiveBayes {
	t.Helper()

	vectors := []Vector{
		{Indices: []int{0, 1}, Values: []float64{3, 1}, Size: 3},
		{Indices: []int{0}, Values: []float64{2}, Size: 3},
		{Indices: []int{1, 2}, Values: []float64{1, 3}, Size: 3},
		{Indices: []int{2}, Values: []float64{2}, Size: 3},
	}
	classes := []int{0, 0, 1, 1}

	nb := NewNaiveBayes(1.0)
	require.NoError(t, nb.Fit(vectors, classes, 2))
	return nb
}

func TestNaiveBayes_Fit(t *testing.T) {
	t.Run("trains priors and likelihoods", func(t *testing.T) {
		nb := fitTestClassifier(t)

		assert.Equal(t, 2, nb.NumClasses())
		assert.Equal(t, 3, nb.NumFeatures)
		// Balanced classes: both priors are log(0.5).
		assert.InDelta(t, math.Log(0.5), nb.ClassLogPrior[0], 1e-9)
		assert.InDelta(t, math.Log(0.5), nb.ClassLogPrior[1], 1e-9)
	})

	t.Run("laplace smoothing leaves no zero likelihood", func(t *testing.T) {
		nb := fitTestClassifier(t)

		// Feature 2 never appears in class 0 but must keep finite mass.
		assert.False(t, math.IsInf(nb.FeatureLogProb[0][2], -1))
		// Smoothed: log((0+1)/(6+3)).
		assert.InDelta(t, math.Log(1.0/9.0), nb.FeatureLogProb[0][2], 1e-9)
	})

	t.Run("empty training data", func(t *testing.T) {
		nb := NewNaiveBayes(1.0)
		assert.ErrorIs(t, nb.Fit(nil, nil, 2), ErrNoTrainingData)
	})

	t.Run("length mismatch", func(t *testing.T) {
		nb := NewNaiveBayes(1.0)
		vecs := []Vector{{Size: 3}}
		assert.ErrorIs(t, nb.Fit(vecs, []int{0, 1}, 2), ErrLengthMismatch)
	})

	t.Run("class without samples", func(t *testing.T) {
		nb := NewNaiveBayes(1.0)
		vecs := []Vector{{Indices: []int{0}, Values: []float64{1}, Size: 2}}
		assert.Error(t, nb.Fit(vecs, []int{0}, 2))
	})

	t.Run("class index out of range", func(t *testing.T) {
		nb := NewNaiveBayes(1.0)
		vecs := []Vector{{Indices: []int{0}, Values: []float64{1}, Size: 2}}
		assert.Error(t, nb.Fit(vecs, []int{5}, 2))
	})

	t.Run("alpha defaults when non positive", func(t *testing.T) {
		nb := NewNaiveBayes(0)
		assert.Equal(t, DefaultAlpha, nb.Alpha)
	})
}

func TestNaiveBayes_Predict(t *testing.T) {
	nb := fitTestClassifier(t)

	t.Run("classifies by dominant feature", func(t *testing.T) {
		class0, _, err := nb.Predict(Vector{Indices: []int{0}, Values: []float64{4}, Size: 3})
		require.NoError(t, err)
		assert.Equal(t, 0, class0)

		class1, _, err := nb.Predict(Vector{Indices: []int{2}, Values: []float64{4}, Size: 3})
		require.NoError(t, err)
		assert.Equal(t, 1, class1)
	})

	t.Run("probabilities sum to one", func(t *testing.T) {
		_, probs, err := nb.Predict(Vector{Indices: []int{0, 2}, Values: []float64{1, 1}, Size: 3})
		require.NoError(t, err)

		var sum float64
		for _, p := range probs {
			sum += p
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("winning class holds the max probability", func(t *testing.T) {
		best, probs, err := nb.Predict(Vector{Indices: []int{0}, Values: []float64{2}, Size: 3})
		require.NoError(t, err)

		for _, p := range probs {
			assert.LessOrEqual(t, p, probs[best])
		}
	})

	t.Run("empty vector falls back to priors", func(t *testing.T) {
		_, probs, err := nb.Predict(Vector{Size: 3})
		require.NoError(t, err)

		// With balanced priors and no evidence both classes are equal.
		assert.InDelta(t, 0.5, probs[0], 1e-9)
		assert.InDelta(t, 0.5, probs[1], 1e-9)
	})

	t.Run("deterministic", func(t *testing.T) {
		vec := Vector{Indices: []int{0, 1, 2}, Values: []float64{1, 2, 3}, Size: 3}
		firstClass, firstProbs, err := nb.Predict(vec)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			class, probs, err := nb.Predict(vec)
			require.NoError(t, err)
			assert.Equal(t, firstClass, class)
			assert.Equal(t, firstProbs, probs)
		}
	})

	t.Run("untrained classifier", func(t *testing.T) {
		nb := NewNaiveBayes(1.0)
		_, _, err := nb.Predict(Vector{Size: 3})
		assert.ErrorIs(t, err, ErrNotTrained)
	})

	t.Run("size mismatch", func(t *testing.T) {
		_, _, err := nb.Predict(Vector{Size: 99})
		assert.ErrorIs(t, err, ErrFeatureSizeMismatch)
	})
}

func TestNaiveBayes_JointLogLikelihood(t *testing.T) {
	nb := fitTestClassifier(t)

	jll, err := nb.JointLogLikelihood(Vector{Indices: []int{0}, Values: []float64{1}, Size: 3})
	require.NoError(t, err)
	require.Len(t, jll, 2)

	// Class 0 saw feature 0 five times out of six, so it must dominate.
	assert.Greater(t, jll[0], jll[1])
}
