package langid

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// VectorizerKind selects the weighting scheme of a Vectorizer.
type VectorizerKind string

const (
	// KindCount produces raw bag-of-words term counts.
	KindCount VectorizerKind = "count"
	// KindTfidf produces L2-normalized TF-IDF weights.
	KindTfidf VectorizerKind = "tfidf"
)

// Vectorizer defaults.
const (
	DefaultMaxFeatures = 5000
	DefaultNGramMax    = 2
)

// Error definitions for the vectorizer
var (
	ErrNotFitted       = errors.New("vectorizer has not been fitted")
	ErrEmptyVocabulary = errors.New("empty vocabulary: no terms survived fitting")
	ErrEmptyCorpus     = errors.New("cannot fit vectorizer on an empty corpus")
)

// VectorizerOptions control vocabulary construction.
type VectorizerOptions struct {
	MaxFeatures int // vocabulary cap, 0 means DefaultMaxFeatures
	NGramMin    int // smallest n-gram size, 0 means 1
	NGramMax    int // largest n-gram size, 0 means DefaultNGramMax
	MinDocFreq  int // terms in fewer documents are dropped, 0 means 1
}

func (o VectorizerOptions) withDefaults() VectorizerOptions {
	if o.MaxFeatures <= 0 {
		o.MaxFeatures = DefaultMaxFeatures
	}
	if o.NGramMin <= 0 {
		o.NGramMin = 1
	}
	if o.NGramMax < o.NGramMin {
		o.NGramMax = DefaultNGramMax
	}
	if o.MinDocFreq <= 0 {
		o.MinDocFreq = 1
	}
	return o
}

// Vectorizer turns normalized text into sparse feature vectors over a
// vocabulary frozen at fit time. Fit learns word and word n-gram terms from
// a training corpus; Transform maps any document onto exactly that
// vocabulary, silently dropping unseen terms. A fitted Vectorizer is
// immutable and safe for concurrent Transform calls.
type Vectorizer struct {
	Kind       VectorizerKind
	Options    VectorizerOptions
	Vocabulary map[string]int
	IDF        []float64 // indexed by vocabulary position, KindTfidf only
}

// NewCountVectorizer creates an unfitted bag-of-words vectorizer.
func NewCountVectorizer(opts VectorizerOptions) *Vectorizer {
	return &Vectorizer{Kind: KindCount, Options: opts.withDefaults()}
}

// NewTfidfVectorizer creates an unfitted TF-IDF vectorizer.
func NewTfidfVectorizer(opts VectorizerOptions) *Vectorizer {
	return &Vectorizer{Kind: KindTfidf, Options: opts.withDefaults()}
}

// Fitted reports whether the vocabulary has been learned.
func (v *Vectorizer) Fitted() bool {
	return v.Vocabulary != nil
}

// NumFeatures returns the size of the fitted vocabulary.
func (v *Vectorizer) NumFeatures() int {
	return len(v.Vocabulary)
}

// Fit learns the vocabulary from the corpus, and IDF weights when the kind
// is TF-IDF. When more distinct terms exist than MaxFeatures, the most
// frequent terms by total corpus count are kept, ties broken alphabetically.
// Indices are assigned in alphabetical order, so fitting the same corpus
// twice yields an identical vocabulary.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}
	v.Options = v.Options.withDefaults()

	termCount := make(map[string]int)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		terms := ngrams(tokenize(doc), v.Options.NGramMin, v.Options.NGramMax)
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			termCount[t]++
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				docFreq[t]++
			}
		}
	}

	candidates := make([]string, 0, len(termCount))
	for t, df := range docFreq {
		if df >= v.Options.MinDocFreq {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return ErrEmptyVocabulary
	}

	if len(candidates) > v.Options.MaxFeatures {
		sort.Slice(candidates, func(i, j int) bool {
			ci, cj := termCount[candidates[i]], termCount[candidates[j]]
			if ci != cj {
				return ci > cj
			}
			return candidates[i] < candidates[j]
		})
		candidates = candidates[:v.Options.MaxFeatures]
	}
	sort.Strings(candidates)

	vocab := make(map[string]int, len(candidates))
	for i, t := range candidates {
		vocab[t] = i
	}
	v.Vocabulary = vocab

	if v.Kind == KindTfidf {
		idf := make([]float64, len(candidates))
		n := float64(len(docs))
		for i, t := range candidates {
			idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
		}
		v.IDF = idf
	}

	return nil
}

// Transform maps a normalized document onto the fitted vocabulary. Terms
// outside the vocabulary contribute nothing; an unknown-only document yields
// an all-zero vector, never an error.
func (v *Vectorizer) Transform(doc string) (Vector, error) {
	if !v.Fitted() {
		return Vector{}, ErrNotFitted
	}

	counts := make(map[int]float64)
	for _, t := range ngrams(tokenize(doc), v.Options.NGramMin, v.Options.NGramMax) {
		if idx, ok := v.Vocabulary[t]; ok {
			counts[idx]++
		}
	}

	vec := Vector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
		Size:    len(v.Vocabulary),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)
	for _, idx := range vec.Indices {
		vec.Values = append(vec.Values, counts[idx])
	}

	if v.Kind == KindTfidf {
		for i, idx := range vec.Indices {
			vec.Values[i] *= v.IDF[idx]
		}
		if n := vec.Norm(); n > 0 {
			vec.Scale(1 / n)
		}
	}

	return vec, nil
}

// TransformAll transforms every document in order.
func (v *Vectorizer) TransformAll(docs []string) ([]Vector, error) {
	vectors := make([]Vector, len(docs))
	for i, doc := range docs {
		vec, err := v.Transform(doc)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// tokenize splits normalized text into words of at least two letters. Single
// letters carry almost no language signal and are dropped before n-grams are
// formed.
func tokenize(doc string) []string {
	fields := strings.Fields(doc)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 2 {
			words = append(words, f)
		}
	}
	return words
}

// ngrams expands a token sequence into all n-grams with n in [minN, maxN],
// multi-word grams joined by single spaces.
func ngrams(words []string, minN, maxN int) []string {
	out := make([]string, 0, len(words)*(maxN-minN+1))
	for n := minN; n <= maxN; n++ {
		if n == 1 {
			out = append(out, words...)
			continue
		}
		for i := 0; i+n <= len(words); i++ {
			out = append(out, strings.Join(words[i:i+n], " "))
		}
	}
	return out
}
