package langid

import (
	"errors"
	"fmt"
)

// TrainOptions configure a training run. Zero values select the defaults
// the shipped model was built with.
type TrainOptions struct {
	TestSize    float64        // fraction held out for evaluation, default 0.2
	Seed        int64          // shuffle seed, default 42
	Kind        VectorizerKind // count or tfidf, default count
	MaxFeatures int            // vocabulary cap, default 5000
	NGramMax    int            // largest n-gram, default 2
	Alpha       float64        // smoothing strength, default 1.0
}

func (o TrainOptions) withDefaults() TrainOptions {
	if o.TestSize <= 0 || o.TestSize >= 1 {
		o.TestSize = 0.2
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
	if o.Kind == "" {
		o.Kind = KindCount
	}
	if o.MaxFeatures <= 0 {
		o.MaxFeatures = DefaultMaxFeatures
	}
	if o.NGramMax <= 0 {
		o.NGramMax = DefaultNGramMax
	}
	if o.Alpha <= 0 {
		o.Alpha = DefaultAlpha
	}
	return o
}

// TrainResult is a fitted model together with its held-out evaluation.
type TrainResult struct {
	Model      *Model
	Eval       *Evaluation
	TrainSize  int
	TestSize   int
	Dropped    int  // samples whose text normalized to nothing
	Stratified bool // false when the split fell back to a plain shuffle
}

// Train fits the full pipeline on a labeled corpus: normalize, split,
// vectorize, train, evaluate. The vectorizer and label encoder are fitted on
// the training split only; the held-out split is never seen before
// evaluation.
func Train(texts, labels []string, opts TrainOptions) (*TrainResult, error) {
	if len(texts) != len(labels) {
		return nil, fmt.Errorf("%w: %d texts, %d labels", ErrLengthMismatch, len(texts), len(labels))
	}
	if len(texts) == 0 {
		return nil, ErrNoTrainingData
	}
	opts = opts.withDefaults()

	cleaned := make([]string, 0, len(texts))
	raw := make([]string, 0, len(texts))
	kept := make([]string, 0, len(labels))
	dropped := 0
	for i, text := range texts {
		c := Normalize(text)
		if c == "" {
			dropped++
			continue
		}
		cleaned = append(cleaned, c)
		raw = append(raw, text)
		kept = append(kept, labels[i])
	}
	if len(cleaned) < 2 {
		return nil, fmt.Errorf("only %d usable samples after preprocessing", len(cleaned))
	}

	stratified := true
	trainIdx, testIdx, err := StratifiedSplit(kept, opts.TestSize, opts.Seed)
	if errors.Is(err, ErrStratify) {
		stratified = false
		trainIdx, testIdx, err = ShuffledSplit(len(kept), opts.TestSize, opts.Seed)
	}
	if err != nil {
		return nil, fmt.Errorf("split corpus: %w", err)
	}

	trainDocs := make([]string, len(trainIdx))
	trainLabels := make([]string, len(trainIdx))
	for i, idx := range trainIdx {
		trainDocs[i] = cleaned[idx]
		trainLabels[i] = kept[idx]
	}

	var vectorizer *Vectorizer
	vopts := VectorizerOptions{MaxFeatures: opts.MaxFeatures, NGramMax: opts.NGramMax}
	switch opts.Kind {
	case KindCount:
		vectorizer = NewCountVectorizer(vopts)
	case KindTfidf:
		vectorizer = NewTfidfVectorizer(vopts)
	default:
		return nil, fmt.Errorf("unknown vectorizer kind %q", opts.Kind)
	}
	if err := vectorizer.Fit(trainDocs); err != nil {
		return nil, fmt.Errorf("fit vectorizer: %w", err)
	}

	encoder := NewLabelEncoder()
	if err := encoder.Fit(trainLabels); err != nil {
		return nil, fmt.Errorf("fit label encoder: %w", err)
	}

	trainVecs, err := vectorizer.TransformAll(trainDocs)
	if err != nil {
		return nil, fmt.Errorf("transform training set: %w", err)
	}
	trainClasses, err := encoder.EncodeAll(trainLabels)
	if err != nil {
		return nil, fmt.Errorf("encode training labels: %w", err)
	}

	classifier := NewNaiveBayes(opts.Alpha)
	if err := classifier.Fit(trainVecs, trainClasses, encoder.NumClasses()); err != nil {
		return nil, fmt.Errorf("train classifier: %w", err)
	}

	model := &Model{
		Vectorizer: vectorizer,
		Labels:     encoder,
		Classifier: classifier,
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("validate model: %w", err)
	}

	actual := make([]string, len(testIdx))
	predicted := make([]string, len(testIdx))
	for i, idx := range testIdx {
		actual[i] = kept[idx]
		pred, err := model.Predict(raw[idx])
		if err != nil {
			return nil, fmt.Errorf("evaluate test sample: %w", err)
		}
		predicted[i] = pred.Language
	}
	eval, err := EvaluatePredictions(actual, predicted)
	if err != nil {
		return nil, fmt.Errorf("evaluate model: %w", err)
	}

	return &TrainResult{
		Model:      model,
		Eval:       eval,
		TrainSize:  len(trainIdx),
		TestSize:   len(testIdx),
		Dropped:    dropped,
		Stratified: stratified,
	}, nil
}
