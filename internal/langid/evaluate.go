package langid

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ClassMetrics holds per-class precision, recall, and F1 over a test set.
type ClassMetrics struct {
	Label     string
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Evaluation summarizes classifier quality over a labeled test set.
type Evaluation struct {
	Accuracy float64
	Total    int
	Correct  int
	Labels   []string // class order of the confusion matrix
	Matrix   [][]int  // rows actual, columns predicted
	PerClass []ClassMetrics
}

// EvaluatePredictions compares predicted labels against actual labels. The
// class set is the sorted union of both, so predictions for labels absent
// from the test set (and vice versa) still land in the matrix.
func EvaluatePredictions(actual, predicted []string) (*Evaluation, error) {
	if len(actual) == 0 {
		return nil, errors.New("cannot evaluate an empty test set")
	}
	if len(actual) != len(predicted) {
		return nil, fmt.Errorf("%w: %d actual, %d predicted", ErrLengthMismatch, len(actual), len(predicted))
	}

	seen := make(map[string]struct{})
	for _, l := range actual {
		seen[l] = struct{}{}
	}
	for _, l := range predicted {
		seen[l] = struct{}{}
	}
	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	matrix := make([][]int, len(labels))
	for i := range matrix {
		matrix[i] = make([]int, len(labels))
	}

	correct := 0
	for i := range actual {
		a, p := index[actual[i]], index[predicted[i]]
		matrix[a][p]++
		if a == p {
			correct++
		}
	}

	perClass := make([]ClassMetrics, len(labels))
	for i, l := range labels {
		var truePos, actualTotal, predictedTotal int
		truePos = matrix[i][i]
		for j := range labels {
			actualTotal += matrix[i][j]
			predictedTotal += matrix[j][i]
		}

		m := ClassMetrics{Label: l, Support: actualTotal}
		if predictedTotal > 0 {
			m.Precision = float64(truePos) / float64(predictedTotal)
		}
		if actualTotal > 0 {
			m.Recall = float64(truePos) / float64(actualTotal)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		perClass[i] = m
	}

	return &Evaluation{
		Accuracy: float64(correct) / float64(len(actual)),
		Total:    len(actual),
		Correct:  correct,
		Labels:   labels,
		Matrix:   matrix,
		PerClass: perClass,
	}, nil
}

// MacroAvg averages precision, recall, and F1 over classes, each class
// weighted equally.
func (e *Evaluation) MacroAvg() (precision, recall, f1 float64) {
	if len(e.PerClass) == 0 {
		return 0, 0, 0
	}
	for _, m := range e.PerClass {
		precision += m.Precision
		recall += m.Recall
		f1 += m.F1
	}
	n := float64(len(e.PerClass))
	return precision / n, recall / n, f1 / n
}

// WeightedAvg averages precision, recall, and F1 over classes weighted by
// support.
func (e *Evaluation) WeightedAvg() (precision, recall, f1 float64) {
	var total float64
	for _, m := range e.PerClass {
		w := float64(m.Support)
		precision += m.Precision * w
		recall += m.Recall * w
		f1 += m.F1 * w
		total += w
	}
	if total == 0 {
		return 0, 0, 0
	}
	return precision / total, recall / total, f1 / total
}

// ClassificationReport renders a per-class precision/recall/F1 table with
// macro and weighted averages.
func (e *Evaluation) ClassificationReport() string {
	width := 12
	for _, m := range e.PerClass {
		if len(m.Label) > width {
			width = len(m.Label)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s  precision  recall  f1-score  support\n\n", width, "")
	for _, m := range e.PerClass {
		fmt.Fprintf(&b, "%*s  %9.2f  %6.2f  %8.2f  %7d\n",
			width, m.Label, m.Precision, m.Recall, m.F1, m.Support)
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "%*s  %9s  %6s  %8.2f  %7d\n",
		width, "accuracy", "", "", e.Accuracy, e.Total)
	mp, mr, mf := e.MacroAvg()
	fmt.Fprintf(&b, "%*s  %9.2f  %6.2f  %8.2f  %7d\n",
		width, "macro avg", mp, mr, mf, e.Total)
	wp, wr, wf := e.WeightedAvg()
	fmt.Fprintf(&b, "%*s  %9.2f  %6.2f  %8.2f  %7d\n",
		width, "weighted avg", wp, wr, wf, e.Total)

	return b.String()
}

// ConfusionTable renders the confusion matrix with actual classes as rows
// and predicted classes as columns.
func (e *Evaluation) ConfusionTable() string {
	width := 8
	for _, l := range e.Labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s", width, "")
	for _, l := range e.Labels {
		fmt.Fprintf(&b, "  %*s", width, l)
	}
	b.WriteByte('\n')
	for i, l := range e.Labels {
		fmt.Fprintf(&b, "%*s", width, l)
		for j := range e.Labels {
			fmt.Fprintf(&b, "  %*d", width, e.Matrix[i][j])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
