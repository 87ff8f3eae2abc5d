package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/dataset"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/langid"
)

var (
	evaluateData   string
	evaluateModels string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate saved artifacts against a labeled CSV corpus",
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateData, "data", "", "labeled corpus CSV with Text and Language columns")
	evaluateCmd.Flags().StringVar(&evaluateModels, "models", "models", "directory holding the trained artifacts")
	_ = evaluateCmd.MarkFlagRequired("data")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	model, err := langid.Load(evaluateModels)
	if err != nil {
		return err
	}

	corpus, err := dataset.Load(evaluateData)
	if err != nil {
		return err
	}
	if len(corpus.Samples) == 0 {
		return fmt.Errorf("no samples in %s", evaluateData)
	}

	actual := make([]string, len(corpus.Samples))
	predicted := make([]string, len(corpus.Samples))
	for i, s := range corpus.Samples {
		pred, err := model.Predict(s.Text)
		if err != nil {
			return fmt.Errorf("predict sample %d: %w", i+1, err)
		}
		actual[i] = s.Language
		predicted[i] = pred.Language
	}

	eval, err := langid.EvaluatePredictions(actual, predicted)
	if err != nil {
		return err
	}

	fmt.Printf("Evaluated %d samples from %s\n\n", eval.Total, evaluateData)
	printEvaluation(eval)
	return nil
}

func printEvaluation(eval *langid.Evaluation) {
	fmt.Printf("Accuracy: %.4f\n\n", eval.Accuracy)
	fmt.Println(eval.ClassificationReport())
	fmt.Println(eval.ConfusionTable())
}
