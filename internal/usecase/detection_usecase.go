package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/entity"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/repository"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/service"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/infrastructure/metrics"
)

// Error definitions for detection usecase
var (
	ErrEmptyText          = errors.New("text cannot be empty")
	ErrEmptyBatch         = errors.New("texts list cannot be empty")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrHistoryUnavailable = errors.New("detection history is not available")
	ErrDetectionNotFound  = errors.New("detection not found")
	ErrModelNotReady      = service.ErrModelNotReady
)

const (
	// batchConcurrency bounds how many texts are classified in parallel.
	batchConcurrency = 8

	// batchEchoLimit is the number of runes of each input echoed back in
	// batch results before truncation.
	batchEchoLimit = 100

	// batchTopProbabilities is how many candidate languages each batch
	// item reports.
	batchTopProbabilities = 5

	// lowConfidenceThreshold marks batch items counted as low confidence.
	lowConfidenceThreshold = 0.5
)

// DetectInput represents the input for single text detection
type DetectInput struct {
	Text string `json:"text" binding:"required"`
}

// DetectOutput represents the result of single text detection
type DetectOutput struct {
	Language      string             `json:"language"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
	Warning       string             `json:"warning,omitempty"`
}

// BatchDetectInput represents the input for batch detection
type BatchDetectInput struct {
	Texts []string `json:"texts" binding:"required,min=1,max=100"`
}

// BatchItemOutput represents one detection inside a batch result
type BatchItemOutput struct {
	Text          string             `json:"text"`
	Language      string             `json:"language"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
	Warning       string             `json:"warning,omitempty"`
}

// BatchStatistics summarizes a batch detection run
type BatchStatistics struct {
	LanguageDistribution map[string]int `json:"language_distribution"`
	AverageConfidence    float64        `json:"average_confidence"`
	LowConfidenceCount   int            `json:"low_confidence_count"`
}

// BatchDetectOutput represents the output for batch detection
type BatchDetectOutput struct {
	Results    []*BatchItemOutput `json:"results"`
	Statistics *BatchStatistics   `json:"statistics"`
}

// LanguagesOutput lists detectable and translatable languages
type LanguagesOutput struct {
	DetectionLanguages   []string          `json:"detection_languages"`
	TranslationLanguages []string          `json:"translation_languages"`
	TranslationCodes     map[string]string `json:"translation_codes"`
}

// TranslateInput represents the input for translation
type TranslateInput struct {
	Text       string `json:"text" binding:"required"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// TranslateOutput represents the result of translation
type TranslateOutput struct {
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language,omitempty"`
	TargetLanguage string `json:"target_language"`
	Error          string `json:"error,omitempty"`
}

// DetectionRecord represents one stored detection
type DetectionRecord struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	Language   string    `json:"language"`
	Confidence float64   `json:"confidence"`
	Warning    string    `json:"warning,omitempty"`
	CreatedAt  string    `json:"created_at"`
}

// HistoryOutput represents paginated detection history
type HistoryOutput struct {
	Detections []*DetectionRecord `json:"detections"`
	Total      int64              `json:"total"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
	HasMore    bool               `json:"has_more"`
}

// HistoryStatsOutput summarizes stored detections per language
type HistoryStatsOutput struct {
	Total     int64            `json:"total"`
	Languages map[string]int64 `json:"languages"`
}

// DetectionUsecase defines the interface for language detection business logic
type DetectionUsecase interface {
	Detect(ctx context.Context, input *DetectInput) (*DetectOutput, error)
	DetectBatch(ctx context.Context, input *BatchDetectInput) (*BatchDetectOutput, error)
	Languages(ctx context.Context) (*LanguagesOutput, error)
	Translate(ctx context.Context, input *TranslateInput) (*TranslateOutput, error)
	History(ctx context.Context, limit, offset int) (*HistoryOutput, error)
	GetDetection(ctx context.Context, id uuid.UUID) (*DetectionRecord, error)
	HistoryStats(ctx context.Context) (*HistoryStatsOutput, error)
}

type detectionUsecase struct {
	detector    service.Detector
	translator  service.Translator
	historyRepo repository.DetectionRepository
	cache       repository.DetectionCache
	log         *zap.Logger
}

// NewDetectionUsecase creates a new detection usecase. The history repository
// and cache may be nil, which disables those features.
func NewDetectionUsecase(detector service.Detector, translator service.Translator, historyRepo repository.DetectionRepository, cache repository.DetectionCache, log *zap.Logger) DetectionUsecase {
	return &detectionUsecase{
		detector:    detector,
		translator:  translator,
		historyRepo: historyRepo,
		cache:       cache,
		log:         log,
	}
}

func (u *detectionUsecase) Detect(ctx context.Context, input *DetectInput) (*DetectOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrEmptyText
	}
	if !u.detector.Ready() {
		return nil, ErrModelNotReady
	}

	if cached := u.lookupCache(ctx, input.Text); cached != nil {
		return toDetectOutput(cached), nil
	}

	start := time.Now()
	detection, err := u.detector.Detect(ctx, input.Text)
	if err != nil {
		return nil, err
	}
	metrics.RecordDetection(detection.Language, detection.Confidence, time.Since(start).Seconds())

	u.storeCache(ctx, input.Text, detection)
	u.recordHistory(ctx, input.Text, detection)

	return toDetectOutput(detection), nil
}

func (u *detectionUsecase) DetectBatch(ctx context.Context, input *BatchDetectInput) (*BatchDetectOutput, error) {
	if len(input.Texts) == 0 {
		return nil, ErrEmptyBatch
	}
	if !u.detector.Ready() {
		return nil, ErrModelNotReady
	}

	results := make([]*BatchItemOutput, len(input.Texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, text := range input.Texts {
		i, text := i, text
		g.Go(func() error {
			results[i] = u.detectBatchItem(gctx, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics.RecordBatch(len(input.Texts))

	return &BatchDetectOutput{
		Results:    results,
		Statistics: batchStatistics(results),
	}, nil
}

// detectBatchItem classifies one batch entry. Failures are folded into the
// item itself so one bad text never sinks the whole batch.
func (u *detectionUsecase) detectBatchItem(ctx context.Context, text string) *BatchItemOutput {
	item := &BatchItemOutput{Text: truncateText(text, batchEchoLimit)}

	detection, err := u.detector.Detect(ctx, text)
	if err != nil {
		item.Language = service.UnknownLanguage
		item.Probabilities = map[string]float64{}
		item.Warning = fmt.Sprintf("Error: %s", err)
		return item
	}

	item.Language = detection.Language
	item.Confidence = detection.Confidence
	item.Probabilities = topProbabilities(detection.Probabilities, batchTopProbabilities)
	item.Warning = detection.Warning
	return item
}

func (u *detectionUsecase) Languages(ctx context.Context) (*LanguagesOutput, error) {
	detection := u.detector.Languages()
	if detection == nil {
		detection = []string{}
	}

	codes := u.translator.Languages()
	names := make([]string, 0, len(codes))
	for name := range codes {
		names = append(names, name)
	}
	sort.Strings(names)

	return &LanguagesOutput{
		DetectionLanguages:   detection,
		TranslationLanguages: names,
		TranslationCodes:     codes,
	}, nil
}

func (u *detectionUsecase) Translate(ctx context.Context, input *TranslateInput) (*TranslateOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrEmptyText
	}

	source := input.SourceLang
	if source == "" {
		source = "auto"
	}
	target := input.TargetLang
	if target == "" {
		target = "en"
	}

	// Resolve the source language with our own model before asking the
	// translation service.
	if source == "auto" && u.detector.Ready() {
		if detection, err := u.detector.Detect(ctx, input.Text); err == nil && detection.Language != service.UnknownLanguage {
			source = detection.Language
		}
	}

	output := &TranslateOutput{TargetLanguage: target}
	if source != "auto" {
		output.SourceLanguage = source
	}

	translation, err := u.translator.Translate(ctx, input.Text, source, target)
	metrics.RecordTranslation(err == nil)
	if err != nil {
		u.log.Warn("Translation failed", zap.Error(err))
		output.Error = fmt.Sprintf("Translation error: %s", err)
		return output, nil
	}

	output.TranslatedText = translation.TranslatedText
	if output.SourceLanguage == "" && translation.SourceLanguage != "" && translation.SourceLanguage != "auto" {
		output.SourceLanguage = translation.SourceLanguage
	}

	return output, nil
}

func (u *detectionUsecase) History(ctx context.Context, limit, offset int) (*HistoryOutput, error) {
	if u.historyRepo == nil {
		return nil, ErrHistoryUnavailable
	}

	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	detections, total, err := u.historyRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	records := make([]*DetectionRecord, len(detections))
	for i, d := range detections {
		records[i] = toDetectionRecord(d)
	}

	return &HistoryOutput{
		Detections: records,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
		HasMore:    int64(offset+limit) < total,
	}, nil
}

func (u *detectionUsecase) GetDetection(ctx context.Context, id uuid.UUID) (*DetectionRecord, error) {
	if u.historyRepo == nil {
		return nil, ErrHistoryUnavailable
	}

	detection, err := u.historyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detection == nil {
		return nil, ErrDetectionNotFound
	}

	return toDetectionRecord(detection), nil
}

func (u *detectionUsecase) HistoryStats(ctx context.Context) (*HistoryStatsOutput, error) {
	if u.historyRepo == nil {
		return nil, ErrHistoryUnavailable
	}

	counts, err := u.historyRepo.CountByLanguage(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	return &HistoryStatsOutput{
		Total:     total,
		Languages: counts,
	}, nil
}

func (u *detectionUsecase) lookupCache(ctx context.Context, text string) *service.Detection {
	if u.cache == nil {
		return nil
	}
	cached, err := u.cache.Get(ctx, text)
	if err != nil || cached == nil {
		metrics.RecordCacheResult(false)
		return nil
	}
	metrics.RecordCacheResult(true)
	return cached
}

func (u *detectionUsecase) storeCache(ctx context.Context, text string, detection *service.Detection) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Set(ctx, text, detection); err != nil {
		u.log.Debug("Failed to cache detection", zap.Error(err))
	}
}

// recordHistory persists a detection for later inspection. Storage failures
// are logged and swallowed so detection keeps working without the database.
func (u *detectionUsecase) recordHistory(ctx context.Context, text string, detection *service.Detection) {
	if u.historyRepo == nil {
		return
	}
	record := entity.NewDetection(text, detection.Language, detection.Confidence, detection.Warning)
	if err := u.historyRepo.Create(ctx, record); err != nil {
		u.log.Warn("Failed to record detection history", zap.Error(err))
	}
}

func batchStatistics(results []*BatchItemOutput) *BatchStatistics {
	stats := &BatchStatistics{LanguageDistribution: make(map[string]int)}
	var confidenceSum float64
	for _, r := range results {
		stats.LanguageDistribution[r.Language]++
		confidenceSum += r.Confidence
		if r.Confidence < lowConfidenceThreshold {
			stats.LowConfidenceCount++
		}
	}
	if len(results) > 0 {
		stats.AverageConfidence = confidenceSum / float64(len(results))
	}
	return stats
}

// topProbabilities keeps the n most likely languages, breaking probability
// ties alphabetically.
func topProbabilities(probs map[string]float64, n int) map[string]float64 {
	if len(probs) <= n {
		return probs
	}

	type langProb struct {
		language string
		prob     float64
	}
	ranked := make([]langProb, 0, len(probs))
	for language, prob := range probs {
		ranked = append(ranked, langProb{language: language, prob: prob})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].prob != ranked[j].prob {
			return ranked[i].prob > ranked[j].prob
		}
		return ranked[i].language < ranked[j].language
	})

	top := make(map[string]float64, n)
	for _, lp := range ranked[:n] {
		top[lp.language] = lp.prob
	}
	return top
}

func truncateText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func toDetectOutput(d *service.Detection) *DetectOutput {
	return &DetectOutput{
		Language:      d.Language,
		Confidence:    d.Confidence,
		Probabilities: d.Probabilities,
		Warning:       d.Warning,
	}
}

func toDetectionRecord(d *entity.Detection) *DetectionRecord {
	return &DetectionRecord{
		ID:         d.ID,
		Text:       d.Text,
		Language:   d.Language,
		Confidence: d.Confidence,
		Warning:    d.Warning,
		CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339),
	}
}
