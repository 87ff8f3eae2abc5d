package langid

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Prediction defaults.
const (
	DefaultMinTextLength = 3
	DefaultLowConfidence = 0.5

	// UnknownLanguage is returned when no prediction can be made.
	UnknownLanguage = "Unknown"
)

// Warnings attached to predictions. The model never refuses degraded input;
// it predicts anyway and says why the result may be off.
const (
	WarnEmptyInput = "Input text is empty."
	WarnNoLatin    = "Text contains no Latin alphabet characters. This model works best with Latin scripts (English, French, Spanish, etc.)."
	WarnRemoved    = "Much of the original text was removed during preprocessing. The model works best with Latin alphabet text."
)

// Prediction is the outcome of classifying one text.
type Prediction struct {
	Language      string             `json:"language"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
	Warning       string             `json:"warning,omitempty"`
}

// LanguageProbability is one entry of a ranked probability list.
type LanguageProbability struct {
	Language    string
	Probability float64
}

// Top returns the n most probable languages in descending order, ties broken
// alphabetically.
func (p *Prediction) Top(n int) []LanguageProbability {
	ranked := make([]LanguageProbability, 0, len(p.Probabilities))
	for lang, prob := range p.Probabilities {
		ranked = append(ranked, LanguageProbability{Language: lang, Probability: prob})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Probability != ranked[j].Probability {
			return ranked[i].Probability > ranked[j].Probability
		}
		return ranked[i].Language < ranked[j].Language
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Model bundles the fitted pipeline components with prediction settings.
// All components are read-only after fitting, so a Model is safe for
// concurrent Predict calls.
type Model struct {
	Vectorizer *Vectorizer
	Labels     *LabelEncoder
	Classifier *NaiveBayes

	// MinTextLength is the cleaned-text length below which a shortness
	// warning is attached. LowConfidence is the top-probability threshold
	// below which a confidence warning is attached.
	MinTextLength int
	LowConfidence float64
}

func (m *Model) minTextLength() int {
	if m.MinTextLength <= 0 {
		return DefaultMinTextLength
	}
	return m.MinTextLength
}

func (m *Model) lowConfidence() float64 {
	if m.LowConfidence <= 0 {
		return DefaultLowConfidence
	}
	return m.LowConfidence
}

// Languages returns the model's label set in class order.
func (m *Model) Languages() []string {
	out := make([]string, len(m.Labels.Classes))
	copy(out, m.Labels.Classes)
	return out
}

// Validate cross-checks that the three components belong together.
func (m *Model) Validate() error {
	if m.Vectorizer == nil || m.Labels == nil || m.Classifier == nil {
		return errors.New("model is missing components")
	}
	if !m.Vectorizer.Fitted() {
		return ErrNotFitted
	}
	if !m.Classifier.Trained() {
		return ErrNotTrained
	}
	if m.Vectorizer.NumFeatures() != m.Classifier.NumFeatures {
		return fmt.Errorf("vectorizer has %d features but classifier expects %d",
			m.Vectorizer.NumFeatures(), m.Classifier.NumFeatures)
	}
	if m.Labels.NumClasses() != m.Classifier.NumClasses() {
		return fmt.Errorf("label encoder has %d classes but classifier expects %d",
			m.Labels.NumClasses(), m.Classifier.NumClasses())
	}
	return nil
}

// Predict classifies a raw text. Degraded input (empty, non-Latin, very
// short, heavily stripped, ambiguous) never fails: the prediction carries a
// warning instead. Errors are reserved for broken models.
func (m *Model) Predict(text string) (*Prediction, error) {
	originalLength := utf8.RuneCountInString(strings.TrimSpace(text))
	if originalLength == 0 {
		return &Prediction{
			Language:      UnknownLanguage,
			Probabilities: map[string]float64{},
			Warning:       WarnEmptyInput,
		}, nil
	}

	cleaned := Normalize(text)
	if cleaned == "" {
		return &Prediction{
			Language:      UnknownLanguage,
			Probabilities: map[string]float64{},
			Warning:       WarnNoLatin,
		}, nil
	}

	warning := ""
	if len(cleaned) < m.minTextLength() {
		warning = fmt.Sprintf("Text is very short (%d characters). Results may be less accurate.", len(cleaned))
	}
	if float64(len(cleaned)) < 0.3*float64(originalLength) {
		warning = WarnRemoved
	}

	vec, err := m.Vectorizer.Transform(cleaned)
	if err != nil {
		return nil, fmt.Errorf("transform text: %w", err)
	}

	best, probs, err := m.Classifier.Predict(vec)
	if err != nil {
		return nil, fmt.Errorf("classify text: %w", err)
	}

	language, err := m.Labels.Decode(best)
	if err != nil {
		return nil, fmt.Errorf("decode class: %w", err)
	}

	probabilities := make(map[string]float64, len(probs))
	for c, p := range probs {
		label, err := m.Labels.Decode(c)
		if err != nil {
			return nil, fmt.Errorf("decode class: %w", err)
		}
		probabilities[label] = p
	}

	confidence := probs[best]
	if warning == "" && confidence < m.lowConfidence() {
		warning = fmt.Sprintf("Low confidence prediction (%.0f%%). The text may be ambiguous or in an unsupported language.", confidence*100)
	}

	return &Prediction{
		Language:      language,
		Confidence:    confidence,
		Probabilities: probabilities,
		Warning:       warning,
	}, nil
}
