package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/langid"
)

var (
	detectModels string
	detectText   string
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the language of a single text",
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectModels, "models", "models", "directory holding the trained artifacts")
	detectCmd.Flags().StringVar(&detectText, "text", "", "text to classify")
	_ = detectCmd.MarkFlagRequired("text")
}

func runDetect(cmd *cobra.Command, args []string) error {
	model, err := langid.Load(detectModels)
	if err != nil {
		return err
	}

	pred, err := model.Predict(detectText)
	if err != nil {
		return err
	}

	fmt.Printf("Language: %s\n", pred.Language)
	fmt.Printf("Confidence: %.2f%%\n", pred.Confidence*100)
	if pred.Warning != "" {
		fmt.Printf("Warning: %s\n", pred.Warning)
	}

	if top := pred.Top(5); len(top) > 0 {
		fmt.Println("Top candidates:")
		for _, lp := range top {
			fmt.Printf("  %-15s %6.2f%%\n", lp.Language, lp.Probability*100)
		}
	}
	return nil
}
