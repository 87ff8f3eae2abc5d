package client

import (
	"context"
	"strings"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/service"
)

// Translator adapts TranslateClient to the service.Translator interface,
// resolving language names to the codes the service accepts.
type Translator struct {
	client *TranslateClient
}

// NewTranslator creates a new translator backed by the given client
func NewTranslator(client *TranslateClient) *Translator {
	return &Translator{client: client}
}

// Languages returns a copy of the supported name to code table
func (t *Translator) Languages() map[string]string {
	out := make(map[string]string, len(translationLanguages))
	for name, code := range translationLanguages {
		out[name] = code
	}
	return out
}

// Translate converts text between languages. Source accepts a language
// name, a two-letter code or "auto"; target accepts a name or code and
// defaults to English.
func (t *Translator) Translate(ctx context.Context, text, sourceLang, targetLang string) (*service.Translation, error) {
	source := resolveSource(sourceLang)
	target := resolveTarget(targetLang)

	resp, err := t.client.Translate(ctx, text, source, target)
	if err != nil {
		return nil, err
	}

	if source == "auto" && resp.DetectedLanguage != nil {
		source = resp.DetectedLanguage.Language
	}

	return &service.Translation{
		TranslatedText: resp.TranslatedText,
		SourceLanguage: source,
		TargetLanguage: target,
	}, nil
}

func resolveSource(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || strings.EqualFold(lang, "auto") {
		return "auto"
	}
	if code, ok := translationLanguages[lang]; ok {
		return code
	}
	if len(lang) == 2 {
		return strings.ToLower(lang)
	}
	return "auto"
}

func resolveTarget(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "en"
	}
	if code, ok := translationLanguages[lang]; ok {
		return code
	}
	if len(lang) == 2 {
		return strings.ToLower(lang)
	}
	return "en"
}
