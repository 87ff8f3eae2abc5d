package langid

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// artifactSchemaVersion guards the on-disk format. Bump it whenever a payload
// struct changes shape; loaders reject artifacts from other versions.
const artifactSchemaVersion uint16 = 1

// Artifact file names inside a model directory.
const (
	VectorizerFile = "vectorizer.bin"
	LabelsFile     = "labels.bin"
	ClassifierFile = "classifier.bin"
)

// ErrModelNotFound is returned by Load when one or more artifact files are
// missing. The wrapped message lists every missing path.
var ErrModelNotFound = errors.New("model artifacts not found")

type vectorizerPayload struct {
	Schema      uint16
	Kind        string
	MaxFeatures int
	NGramMin    int
	NGramMax    int
	MinDocFreq  int
	Vocabulary  map[string]int
	IDF         []float64
}

type labelsPayload struct {
	Schema  uint16
	Classes []string
}

type classifierPayload struct {
	Schema         uint16
	Alpha          float64
	ClassLogPrior  []float64
	FeatureLogProb [][]float64
	NumFeatures    int
}

// Save persists the model's three components into dir, one file each. Every
// file is written to a temp file and renamed into place, so a concurrent
// reader sees either the old artifact or the new one, never a partial write.
func Save(dir string, m *Model) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid model: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create model directory: %w", err)
	}

	vp := vectorizerPayload{
		Schema:      artifactSchemaVersion,
		Kind:        string(m.Vectorizer.Kind),
		MaxFeatures: m.Vectorizer.Options.MaxFeatures,
		NGramMin:    m.Vectorizer.Options.NGramMin,
		NGramMax:    m.Vectorizer.Options.NGramMax,
		MinDocFreq:  m.Vectorizer.Options.MinDocFreq,
		Vocabulary:  m.Vectorizer.Vocabulary,
		IDF:         m.Vectorizer.IDF,
	}
	if err := writeArtifact(filepath.Join(dir, VectorizerFile), &vp); err != nil {
		return fmt.Errorf("save vectorizer: %w", err)
	}

	lp := labelsPayload{
		Schema:  artifactSchemaVersion,
		Classes: m.Labels.Classes,
	}
	if err := writeArtifact(filepath.Join(dir, LabelsFile), &lp); err != nil {
		return fmt.Errorf("save labels: %w", err)
	}

	cp := classifierPayload{
		Schema:         artifactSchemaVersion,
		Alpha:          m.Classifier.Alpha,
		ClassLogPrior:  m.Classifier.ClassLogPrior,
		FeatureLogProb: m.Classifier.FeatureLogProb,
		NumFeatures:    m.Classifier.NumFeatures,
	}
	if err := writeArtifact(filepath.Join(dir, ClassifierFile), &cp); err != nil {
		return fmt.Errorf("save classifier: %w", err)
	}

	return nil
}

// Load reads all three artifacts from dir and cross-checks that they belong
// together. Loading is all or nothing: any missing file, unknown schema, or
// component mismatch fails the whole load.
func Load(dir string) (*Model, error) {
	paths := []string{
		filepath.Join(dir, VectorizerFile),
		filepath.Join(dir, LabelsFile),
		filepath.Join(dir, ClassifierFile),
	}
	var missing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s (train a model first)", ErrModelNotFound, strings.Join(missing, ", "))
	}

	var vp vectorizerPayload
	if err := readArtifact(paths[0], &vp, func() uint16 { return vp.Schema }); err != nil {
		return nil, fmt.Errorf("load vectorizer: %w", err)
	}
	var lp labelsPayload
	if err := readArtifact(paths[1], &lp, func() uint16 { return lp.Schema }); err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}
	var cp classifierPayload
	if err := readArtifact(paths[2], &cp, func() uint16 { return cp.Schema }); err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}

	kind := VectorizerKind(vp.Kind)
	if kind != KindCount && kind != KindTfidf {
		return nil, fmt.Errorf("unknown vectorizer kind %q in artifact", vp.Kind)
	}

	model := &Model{
		Vectorizer: &Vectorizer{
			Kind: kind,
			Options: VectorizerOptions{
				MaxFeatures: vp.MaxFeatures,
				NGramMin:    vp.NGramMin,
				NGramMax:    vp.NGramMax,
				MinDocFreq:  vp.MinDocFreq,
			},
			Vocabulary: vp.Vocabulary,
			IDF:        vp.IDF,
		},
		Labels: NewLabelEncoderFromClasses(lp.Classes),
		Classifier: &NaiveBayes{
			Alpha:          cp.Alpha,
			ClassLogPrior:  cp.ClassLogPrior,
			FeatureLogProb: cp.FeatureLogProb,
			NumFeatures:    cp.NumFeatures,
		},
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("incompatible model artifacts: %w", err)
	}

	return model, nil
}

func writeArtifact(path string, payload any) error {
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), path)
}

func readArtifact(path string, payload any, schema func() uint16) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(payload); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if got := schema(); got != artifactSchemaVersion {
		return fmt.Errorf("unsupported artifact schema %d in %s, want %d", got, filepath.Base(path), artifactSchemaVersion)
	}
	return nil
}
