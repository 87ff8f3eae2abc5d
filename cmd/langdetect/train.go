package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/dataset"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/langid"
)

var (
	trainData        string
	trainOut         string
	trainTestSize    float64
	trainSeed        int64
	trainVectorizer  string
	trainMaxFeatures int
	trainNGramMax    int
	trainAlpha       float64
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a detection model from a labeled CSV corpus",
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&trainData, "data", "", "labeled corpus CSV with Text and Language columns")
	trainCmd.Flags().StringVar(&trainOut, "out", "models", "directory for the trained artifacts")
	trainCmd.Flags().Float64Var(&trainTestSize, "test-size", 0.2, "fraction of samples held out for evaluation")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", 42, "shuffle seed for the train/test split")
	trainCmd.Flags().StringVar(&trainVectorizer, "vectorizer", "count", "feature weighting, count or tfidf")
	trainCmd.Flags().IntVar(&trainMaxFeatures, "max-features", langid.DefaultMaxFeatures, "vocabulary size cap")
	trainCmd.Flags().IntVar(&trainNGramMax, "ngram-max", langid.DefaultNGramMax, "largest word n-gram size")
	trainCmd.Flags().Float64Var(&trainAlpha, "alpha", langid.DefaultAlpha, "Laplace smoothing strength")
	_ = trainCmd.MarkFlagRequired("data")
}

func runTrain(cmd *cobra.Command, args []string) error {
	corpus, err := dataset.Load(trainData)
	if err != nil {
		return err
	}

	stats := dataset.ComputeStats(corpus.Samples, 0)
	printCorpusStats(stats, corpus.Skipped)

	texts := make([]string, len(corpus.Samples))
	labels := make([]string, len(corpus.Samples))
	for i, s := range corpus.Samples {
		texts[i] = s.Text
		labels[i] = s.Language
	}

	fmt.Println("\nTraining...")
	result, err := langid.Train(texts, labels, langid.TrainOptions{
		TestSize:    trainTestSize,
		Seed:        trainSeed,
		Kind:        langid.VectorizerKind(trainVectorizer),
		MaxFeatures: trainMaxFeatures,
		NGramMax:    trainNGramMax,
		Alpha:       trainAlpha,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Training samples: %d\n", result.TrainSize)
	fmt.Printf("Test samples: %d\n", result.TestSize)
	if result.Dropped > 0 {
		fmt.Printf("Dropped %d samples with no usable text after cleaning\n", result.Dropped)
	}
	if !result.Stratified {
		fmt.Println("Warning: classes too small to stratify, used a plain shuffled split")
	}

	fmt.Println()
	printEvaluation(result.Eval)

	if err := langid.Save(trainOut, result.Model); err != nil {
		return err
	}

	fmt.Printf("Model artifacts saved to %s:\n", trainOut)
	for _, name := range []string{langid.VectorizerFile, langid.LabelsFile, langid.ClassifierFile} {
		fmt.Printf("  %s\n", filepath.Join(trainOut, name))
	}
	return nil
}
