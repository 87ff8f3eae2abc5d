package langid

import (
	"errors"
	"fmt"
	"math"
)

// DefaultAlpha is the Laplace smoothing strength used when none is given.
const DefaultAlpha = 1.0

// Error definitions for the classifier
var (
	ErrNotTrained          = errors.New("classifier has not been trained")
	ErrNoTrainingData      = errors.New("cannot train classifier on empty data")
	ErrLengthMismatch      = errors.New("vector and class counts differ")
	ErrFeatureSizeMismatch = errors.New("vector size does not match classifier feature count")
)

// NaiveBayes is a multinomial naive Bayes classifier over sparse count
// vectors. Additive smoothing keeps unseen feature/class pairs from zeroing
// out a class likelihood. Once trained the classifier is immutable and safe
// for concurrent prediction.
type NaiveBayes struct {
	Alpha          float64
	ClassLogPrior  []float64   // log P(class)
	FeatureLogProb [][]float64 // [class][feature] log P(feature|class)
	NumFeatures    int
}

// NewNaiveBayes creates an untrained classifier. Alpha values <= 0 fall back
// to DefaultAlpha.
func NewNaiveBayes(alpha float64) *NaiveBayes {
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	return &NaiveBayes{Alpha: alpha}
}

// NumClasses returns the number of trained classes.
func (nb *NaiveBayes) NumClasses() int {
	return len(nb.ClassLogPrior)
}

// Trained reports whether Fit has completed.
func (nb *NaiveBayes) Trained() bool {
	return len(nb.ClassLogPrior) > 0
}

// Fit estimates class priors and smoothed per-class feature likelihoods from
// sparse vectors and their class indices in [0, numClasses).
func (nb *NaiveBayes) Fit(vectors []Vector, classes []int, numClasses int) error {
	if len(vectors) == 0 {
		return ErrNoTrainingData
	}
	if len(vectors) != len(classes) {
		return fmt.Errorf("%w: %d vectors, %d classes", ErrLengthMismatch, len(vectors), len(classes))
	}
	if numClasses <= 0 {
		return errors.New("numClasses must be positive")
	}

	numFeatures := vectors[0].Size
	classCount := make([]float64, numClasses)
	featureCount := make([][]float64, numClasses)
	for c := range featureCount {
		featureCount[c] = make([]float64, numFeatures)
	}

	for i, vec := range vectors {
		c := classes[i]
		if c < 0 || c >= numClasses {
			return fmt.Errorf("class index %d out of range [0, %d)", c, numClasses)
		}
		if vec.Size != numFeatures {
			return fmt.Errorf("%w: got %d, want %d", ErrFeatureSizeMismatch, vec.Size, numFeatures)
		}
		classCount[c]++
		for j, idx := range vec.Indices {
			featureCount[c][idx] += vec.Values[j]
		}
	}

	total := float64(len(vectors))
	logPrior := make([]float64, numClasses)
	logProb := make([][]float64, numClasses)
	for c := 0; c < numClasses; c++ {
		if classCount[c] == 0 {
			return fmt.Errorf("class %d has no training samples", c)
		}
		logPrior[c] = math.Log(classCount[c] / total)

		var classTotal float64
		for _, count := range featureCount[c] {
			classTotal += count
		}
		denom := math.Log(classTotal + nb.Alpha*float64(numFeatures))

		logProb[c] = make([]float64, numFeatures)
		for f := 0; f < numFeatures; f++ {
			logProb[c][f] = math.Log(featureCount[c][f]+nb.Alpha) - denom
		}
	}

	nb.ClassLogPrior = logPrior
	nb.FeatureLogProb = logProb
	nb.NumFeatures = numFeatures
	return nil
}

// JointLogLikelihood returns the unnormalized log posterior of every class
// for a sparse vector.
func (nb *NaiveBayes) JointLogLikelihood(vec Vector) ([]float64, error) {
	if !nb.Trained() {
		return nil, ErrNotTrained
	}
	if vec.Size != nb.NumFeatures {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFeatureSizeMismatch, vec.Size, nb.NumFeatures)
	}

	jll := make([]float64, nb.NumClasses())
	for c := range jll {
		score := nb.ClassLogPrior[c]
		probs := nb.FeatureLogProb[c]
		for j, idx := range vec.Indices {
			score += vec.Values[j] * probs[idx]
		}
		jll[c] = score
	}
	return jll, nil
}

// Predict returns the most likely class index and the full posterior
// distribution. Probabilities are computed with a log-sum-exp so they stay
// finite and sum to one. Ties resolve to the lowest class index.
func (nb *NaiveBayes) Predict(vec Vector) (int, []float64, error) {
	jll, err := nb.JointLogLikelihood(vec)
	if err != nil {
		return 0, nil, err
	}

	best := 0
	for c := 1; c < len(jll); c++ {
		if jll[c] > jll[best] {
			best = c
		}
	}

	var sum float64
	probs := make([]float64, len(jll))
	for c, score := range jll {
		probs[c] = math.Exp(score - jll[best])
		sum += probs[c]
	}
	for c := range probs {
		probs[c] /= sum
	}

	return best, probs, nil
}
