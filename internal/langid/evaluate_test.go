package langid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePredictions(t *testing.T) {
	t.Run("perfect predictions", func(t *testing.T) {
		actual := []string{"English", "French", "English"}

		eval, err := EvaluatePredictions(actual, actual)
		require.NoError(t, err)

		assert.Equal(t, 1.0, eval.Accuracy)
		assert.Equal(t, 3, eval.Correct)
		assert.Equal(t, []string{"English", "French"}, eval.Labels)
	})

	t.Run("confusion matrix rows are actual", func(t *testing.T) {
		actual := []string{"English", "English", "French", "French"}
		predicted := []string{"English", "French", "French", "French"}

		eval, err := EvaluatePredictions(actual, predicted)
		require.NoError(t, err)

		// One English sample predicted as French.
		assert.Equal(t, 1, eval.Matrix[0][0])
		assert.Equal(t, 1, eval.Matrix[0][1])
		assert.Equal(t, 0, eval.Matrix[1][0])
		assert.Equal(t, 2, eval.Matrix[1][1])
		assert.InDelta(t, 0.75, eval.Accuracy, 1e-9)
	})

	t.Run("per class metrics", func(t *testing.T) {
		actual := []string{"English", "English", "French", "French"}
		predicted := []string{"English", "French", "French", "French"}

		eval, err := EvaluatePredictions(actual, predicted)
		require.NoError(t, err)

		english := eval.PerClass[0]
		assert.Equal(t, "English", english.Label)
		assert.InDelta(t, 1.0, english.Precision, 1e-9)
		assert.InDelta(t, 0.5, english.Recall, 1e-9)
		assert.Equal(t, 2, english.Support)

		french := eval.PerClass[1]
		assert.InDelta(t, 2.0/3.0, french.Precision, 1e-9)
		assert.InDelta(t, 1.0, french.Recall, 1e-9)
	})

	t.Run("predicted label absent from actual", func(t *testing.T) {
		actual := []string{"English", "English"}
		predicted := []string{"English", "Unknown"}

		eval, err := EvaluatePredictions(actual, predicted)
		require.NoError(t, err)

		assert.Contains(t, eval.Labels, "Unknown")
		assert.InDelta(t, 0.5, eval.Accuracy, 1e-9)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := EvaluatePredictions([]string{"English"}, []string{"English", "French"})
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("empty test set", func(t *testing.T) {
		_, err := EvaluatePredictions(nil, nil)
		assert.Error(t, err)
	})
}

func TestEvaluation_Averages(t *testing.T) {
	actual := []string{"English", "English", "English", "French"}
	predicted := []string{"English", "English", "French", "French"}

	eval, err := EvaluatePredictions(actual, predicted)
	require.NoError(t, err)

	// English: p=1, r=2/3; French: p=1/2, r=1.
	mp, mr, _ := eval.MacroAvg()
	assert.InDelta(t, 0.75, mp, 1e-9)
	assert.InDelta(t, (2.0/3.0+1.0)/2, mr, 1e-9)

	wp, wr, _ := eval.WeightedAvg()
	assert.InDelta(t, (1.0*3+0.5*1)/4, wp, 1e-9)
	assert.InDelta(t, (2.0/3.0*3+1.0*1)/4, wr, 1e-9)
}

func TestEvaluation_Rendering(t *testing.T) {
	actual := []string{"English", "French", "French"}
	predicted := []string{"English", "French", "English"}

	eval, err := EvaluatePredictions(actual, predicted)
	require.NoError(t, err)

	report := eval.ClassificationReport()
	assert.Contains(t, report, "precision")
	assert.Contains(t, report, "English")
	assert.Contains(t, report, "macro avg")
	assert.Contains(t, report, "weighted avg")

	table := eval.ConfusionTable()
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	// Header plus one row per class.
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "English")
	assert.Contains(t, lines[0], "French")
}
