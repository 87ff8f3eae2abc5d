package service

import "context"

// Translation represents the result of a translation request
type Translation struct {
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// Translator defines the interface for text translation
type Translator interface {
	// Translate converts text between languages; source may be "auto"
	Translate(ctx context.Context, text, sourceLang, targetLang string) (*Translation, error)

	// Languages returns the supported language name to code table
	Languages() map[string]string
}
