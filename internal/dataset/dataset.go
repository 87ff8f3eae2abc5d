// Package dataset loads, summarizes, and merges the labeled training corpus.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// DefaultMinSamples is the per-language count below which Stats flags a
// language as underrepresented.
const DefaultMinSamples = 50

// Sample is one labeled training row.
type Sample struct {
	Text     string
	Language string
}

// Corpus is the outcome of loading a samples file.
type Corpus struct {
	Samples []Sample
	Skipped int // rows dropped for a blank text or label
}

// Load reads a corpus CSV with Text and Language columns. Column order is
// free, header matching is case-insensitive and additional columns are
// ignored. Rows with a blank text or label are skipped and counted.
func Load(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	corpus, err := parse(f, "Text", "Language")
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return corpus, nil
}

// Save writes samples as a Text,Language CSV.
func Save(path string, samples []Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create corpus: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Text", "Language"}); err != nil {
		_ = f.Close()
		return err
	}
	for _, s := range samples {
		if err := w.Write([]string{s.Text, s.Language}); err != nil {
			_ = f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// LanguageCount pairs a language with its number of samples.
type LanguageCount struct {
	Language string
	Count    int
}

// Stats summarizes a corpus.
type Stats struct {
	Total      int
	Languages  []LanguageCount // sorted by count descending, then name
	LowSample  []LanguageCount // languages below MinSamples, same order
	MinSamples int
}

// ComputeStats counts samples per language and flags underrepresented
// languages. minSamples <= 0 selects DefaultMinSamples.
func ComputeStats(samples []Sample, minSamples int) *Stats {
	if minSamples <= 0 {
		minSamples = DefaultMinSamples
	}

	counts := make(map[string]int)
	for _, s := range samples {
		counts[s.Language]++
	}

	stats := &Stats{Total: len(samples), MinSamples: minSamples}
	for lang, n := range counts {
		stats.Languages = append(stats.Languages, LanguageCount{Language: lang, Count: n})
	}
	sort.Slice(stats.Languages, func(i, j int) bool {
		if stats.Languages[i].Count != stats.Languages[j].Count {
			return stats.Languages[i].Count > stats.Languages[j].Count
		}
		return stats.Languages[i].Language < stats.Languages[j].Language
	})
	for _, lc := range stats.Languages {
		if lc.Count < minSamples {
			stats.LowSample = append(stats.LowSample, lc)
		}
	}
	return stats
}

func parse(r io.Reader, textCol, labelCol string) (*Corpus, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, err
	}

	textIdx, labelIdx := -1, -1
	for i, col := range header {
		switch name := strings.TrimSpace(strings.TrimPrefix(col, "\uFEFF")); {
		case strings.EqualFold(name, textCol):
			textIdx = i
		case strings.EqualFold(name, labelCol):
			labelIdx = i
		}
	}
	if textIdx < 0 || labelIdx < 0 {
		return nil, fmt.Errorf("header must contain %q and %q columns, got %v", textCol, labelCol, header)
	}

	corpus := &Corpus{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if textIdx >= len(record) || labelIdx >= len(record) {
			corpus.Skipped++
			continue
		}
		text := strings.TrimSpace(record[textIdx])
		label := strings.TrimSpace(record[labelIdx])
		if text == "" || label == "" {
			corpus.Skipped++
			continue
		}
		corpus.Samples = append(corpus.Samples, Sample{Text: text, Language: label})
	}
	return corpus, nil
}
