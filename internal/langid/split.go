package langid

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// ErrStratify is returned when a class has too few samples to appear in both
// splits. Callers typically fall back to ShuffledSplit and log a warning.
var ErrStratify = errors.New("stratified split requires at least 2 samples per class")

func validateTestSize(testSize float64) error {
	if testSize <= 0 || testSize >= 1 {
		return fmt.Errorf("test size must be in (0, 1), got %v", testSize)
	}
	return nil
}

// StratifiedSplit partitions sample indices into train and test sets keeping
// each label's share of the test set close to testSize. Every label lands in
// both sets. The split is deterministic for a given seed.
func StratifiedSplit(labels []string, testSize float64, seed int64) (train, test []int, err error) {
	if err := validateTestSize(testSize); err != nil {
		return nil, nil, err
	}
	if len(labels) < 2 {
		return nil, nil, ErrStratify
	}

	byLabel := make(map[string][]int)
	for i, l := range labels {
		byLabel[l] = append(byLabel[l], i)
	}

	classes := make([]string, 0, len(byLabel))
	for l, idxs := range byLabel {
		if len(idxs) < 2 {
			return nil, nil, fmt.Errorf("%w: label %q has %d", ErrStratify, l, len(idxs))
		}
		classes = append(classes, l)
	}
	sort.Strings(classes)

	rng := rand.New(rand.NewSource(seed))
	for _, l := range classes {
		idxs := byLabel[l]
		rng.Shuffle(len(idxs), func(i, j int) {
			idxs[i], idxs[j] = idxs[j], idxs[i]
		})

		n := int(math.Round(float64(len(idxs)) * testSize))
		if n < 1 {
			n = 1
		}
		if n > len(idxs)-1 {
			n = len(idxs) - 1
		}

		test = append(test, idxs[:n]...)
		train = append(train, idxs[n:]...)
	}

	// Shuffle across classes so downstream consumers never see the data
	// grouped by label.
	rng.Shuffle(len(train), func(i, j int) { train[i], train[j] = train[j], train[i] })
	rng.Shuffle(len(test), func(i, j int) { test[i], test[j] = test[j], test[i] })

	return train, test, nil
}

// ShuffledSplit partitions n sample indices into train and test sets without
// regard to labels. Used as the fallback when stratification is infeasible.
func ShuffledSplit(n int, testSize float64, seed int64) (train, test []int, err error) {
	if err := validateTestSize(testSize); err != nil {
		return nil, nil, err
	}
	if n < 2 {
		return nil, nil, fmt.Errorf("need at least 2 samples to split, got %d", n)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(math.Ceil(float64(n) * testSize))
	if nTest >= n {
		nTest = n - 1
	}

	return perm[nTest:], perm[:nTest], nil
}
