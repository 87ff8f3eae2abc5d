package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "langdetect",
	Short:   "Train, evaluate and run the language detection model",
	Version: "1.0.0",
}

func main() {
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(datasetCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
