package dataset

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// languageNames maps ISO 639-1 codes to the language names used in the
// corpus.
var languageNames = map[string]string{
	"en": "English", "fr": "French", "es": "Spanish", "de": "German",
	"it": "Italian", "pt": "Portuguese", "ru": "Russian", "nl": "Dutch",
	"sv": "Swedish", "tr": "Turkish", "el": "Greek", "da": "Danish",
	"hi": "Hindi", "ar": "Arabic", "ta": "Tamil", "ml": "Malayalam",
	"kn": "Kannada", "ja": "Japanese", "zh": "Chinese", "ko": "Korean",
	"pl": "Polish", "cs": "Czech", "ro": "Romanian", "hu": "Hungarian",
	"fi": "Finnish", "no": "Norwegian", "uk": "Ukrainian", "bg": "Bulgarian",
	"th": "Thai", "vi": "Vietnamese", "id": "Indonesian", "ms": "Malay",
	"ur": "Urdu", "sw": "Swahili", "he": "Hebrew", "fa": "Persian",
	"ps": "Pashto", "ku": "Kurdish", "am": "Amharic", "af": "Afrikaans",
	"zu": "Zulu", "xh": "Xhosa", "yo": "Yoruba", "ha": "Hausa",
}

// LanguageName resolves an ISO 639-1 code to the corpus language name.
// Inputs already holding a full name pass through unchanged; unknown codes
// fall back to a title-cased form of the input.
func LanguageName(code string) string {
	c := strings.ToLower(strings.TrimSpace(code))
	if name, ok := languageNames[c]; ok {
		return name
	}
	return cases.Title(language.Und).String(c)
}

// LoadCoded reads a labels,text CSV whose labels column holds ISO 639-1
// codes and converts it into corpus samples with full language names.
func LoadCoded(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open coded corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	corpus, err := parse(f, "text", "labels")
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i := range corpus.Samples {
		corpus.Samples[i].Language = LanguageName(corpus.Samples[i].Language)
	}
	return corpus, nil
}

// MergeResult reports the outcome of appending an incoming corpus.
type MergeResult struct {
	Merged       []Sample
	Added        int
	NewLanguages []string // languages absent from the existing corpus, sorted
}

// Merge appends incoming samples to the existing corpus. Duplicate rows are
// allowed; the caller decides whether to persist the result.
func Merge(existing, incoming []Sample) *MergeResult {
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s.Language] = true
	}

	var added []string
	for _, s := range incoming {
		if !seen[s.Language] {
			seen[s.Language] = true
			added = append(added, s.Language)
		}
	}
	sort.Strings(added)

	merged := make([]Sample, 0, len(existing)+len(incoming))
	merged = append(merged, existing...)
	merged = append(merged, incoming...)

	return &MergeResult{Merged: merged, Added: len(incoming), NewLanguages: added}
}
