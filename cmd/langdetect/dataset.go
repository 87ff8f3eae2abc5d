package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/dataset"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect and merge training corpora",
}

var datasetStatsData string

var datasetStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print corpus size and language distribution",
	RunE:  runDatasetStats,
}

var (
	mergeData string
	mergeIn   string
	mergeOut  string
	mergeYes  bool
)

var datasetMergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Append ISO-coded samples to an existing corpus",
	RunE:  runDatasetMerge,
}

func init() {
	datasetStatsCmd.Flags().StringVar(&datasetStatsData, "data", "", "corpus CSV with Text and Language columns")
	_ = datasetStatsCmd.MarkFlagRequired("data")

	datasetMergeCmd.Flags().StringVar(&mergeData, "data", "", "existing corpus CSV with Text and Language columns")
	datasetMergeCmd.Flags().StringVar(&mergeIn, "in", "", "incoming CSV with text and labels columns, labels as ISO 639-1 codes")
	datasetMergeCmd.Flags().StringVar(&mergeOut, "out", "", "output path, defaults to the --data file")
	datasetMergeCmd.Flags().BoolVarP(&mergeYes, "yes", "y", false, "write without asking for confirmation")
	_ = datasetMergeCmd.MarkFlagRequired("data")
	_ = datasetMergeCmd.MarkFlagRequired("in")

	datasetCmd.AddCommand(datasetStatsCmd)
	datasetCmd.AddCommand(datasetMergeCmd)
}

func runDatasetStats(cmd *cobra.Command, args []string) error {
	corpus, err := dataset.Load(datasetStatsData)
	if err != nil {
		return err
	}

	stats := dataset.ComputeStats(corpus.Samples, 0)
	printCorpusStats(stats, corpus.Skipped)
	return nil
}

func runDatasetMerge(cmd *cobra.Command, args []string) error {
	existing, err := dataset.Load(mergeData)
	if err != nil {
		return err
	}

	incoming, err := dataset.LoadCoded(mergeIn)
	if err != nil {
		return err
	}
	if len(incoming.Samples) == 0 {
		return fmt.Errorf("no usable samples in %s", mergeIn)
	}

	result := dataset.Merge(existing.Samples, incoming.Samples)

	out := mergeOut
	if out == "" {
		out = mergeData
	}

	fmt.Printf("Existing samples: %d\n", len(existing.Samples))
	fmt.Printf("Incoming samples: %d\n", result.Added)
	if incoming.Skipped > 0 {
		fmt.Printf("Skipped %d rows with a blank text or label\n", incoming.Skipped)
	}
	if len(result.NewLanguages) > 0 {
		fmt.Printf("New languages: %s\n", strings.Join(result.NewLanguages, ", "))
	}

	if !mergeYes {
		fmt.Printf("Write %d samples to %s? [y/N]: ", len(result.Merged), out)
		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Merge cancelled.")
			return nil
		}
	}

	if err := dataset.Save(out, result.Merged); err != nil {
		return err
	}
	fmt.Printf("Wrote %d samples to %s\n", len(result.Merged), out)
	return nil
}

func printCorpusStats(stats *dataset.Stats, skipped int) {
	fmt.Printf("Dataset loaded: %d samples, %d languages\n", stats.Total, len(stats.Languages))
	if skipped > 0 {
		fmt.Printf("Skipped %d malformed rows\n", skipped)
	}
	fmt.Println("Language distribution:")
	for _, lc := range stats.Languages {
		fmt.Printf("  %-15s %d\n", lc.Language, lc.Count)
	}
	for _, lc := range stats.LowSample {
		fmt.Printf("Warning: %q has only %d samples (may affect accuracy)\n", lc.Language, lc.Count)
	}
}
